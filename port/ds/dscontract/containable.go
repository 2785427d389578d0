package dscontract

import (
	"fmt"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/sortedlist/port/contract"
	"go.llib.dev/sortedlist/port/ds"
	"go.llib.dev/sortedlist/port/option"
)

type SubjectContainable[T any] interface {
	ds.Containable[T]
	ds.Appendable[T]
}

func Containable[T any, Subject SubjectContainable[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	s.Describe("#Contains", func(s *testcase.Spec) {
		var (
			element = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) bool {
			return subject.Get(t).Contains(element.Get(t))
		})

		s.When("element is present", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(element.Get(t))
			})

			s.Then("it will contain the value", func(t *testcase.T) {
				assert.True(t, act(t))
			})
		})

		s.When("element is present among other values", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Random.Repeat(1, 3, func() {
					subject.Get(t).Append(c.makeElem(t))
				})
				subject.Get(t).Append(element.Get(t))
				t.Random.Repeat(1, 3, func() {
					subject.Get(t).Append(c.makeElem(t))
				})
			})

			s.Then("it will contain the value", func(t *testcase.T) {
				assert.True(t, act(t))
			})
		})

		s.When("element is absent", func(s *testcase.Spec) {
			// nothing to do, it should be absent by default

			s.Then("it will NOT contain the checked value", func(t *testcase.T) {
				assert.False(t, act(t))
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("Containable[%s]", typeName[T]()))
}
