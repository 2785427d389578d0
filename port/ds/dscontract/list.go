package dscontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/sortedlist/port/contract"
	"go.llib.dev/sortedlist/port/ds"
	"go.llib.dev/sortedlist/port/option"
)

type SubjectLenAppendable[T any] interface {
	ds.Appendable[T]
	ds.Len
}

func LenAppendable[T any, Subject SubjectLenAppendable[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	s.Test("append affects length", func(t *testcase.T) {
		subject := mk(t)

		exp := 0
		assert.Equal(t, exp, subject.Len())

		t.Random.Repeat(3, 7, func() {
			subject.Append(c.makeElem(t))
			exp++
			assert.Equal(t, exp, subject.Len())
		})
	})

	s.Test("append many at once increase the length by the sum of appended values", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		baseLen := list.Len()
		list.Append(expected...)
		assert.Equal(t, len(expected)+baseLen, list.Len())
	})

	s.Test("append without values is a no-op", func(t *testcase.T) {
		list := mk(t)
		list.Append()
		assert.Equal(t, 0, list.Len())
	})

	return s.AsSuite(fmt.Sprintf("Len[%s] (appendable)", typeName[T]()))
}

type SubjectList[T any] interface {
	ds.List[T]
	ds.Len
}

// List checks the content of a list without making assumptions about the order of its values.
func List[T any, Subject SubjectList[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)

		list.Append()
		assert.Equal(t, 0, list.Len())

		var expLen int
		for _, v := range expected {
			assert.Equal(t, expLen, list.Len())
			list.Append(v)
			expLen++
		}

		assert.ContainsExactly(t, expected, iterkit.Collect(list.Values()))
	})

	s.Test("Append many", func(t *testcase.T) {
		var (
			list         = mk(t)
			expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		)
		list.Append(expected...)
		assert.Equal(t, len(expected), list.Len())
		assert.ContainsExactly(t, expected, iterkit.Collect(list.Values()))

		if cts, ok := any(list).(ds.SliceConveratble[T]); ok {
			assert.ContainsExactly(t, expected, cts.ToSlice())
		}
	})

	s.Test("values can be collected from the iterator", func(t *testcase.T) {
		list := mk(t)
		t.Random.Repeat(3, 7, func() {
			list.Append(c.makeElem(t))
		})
		var vs []T
		for v := range list.Values() {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
		assert.Equal(t, list.Len(), len(vs))
	})

	s.Test("iteration can be stopped early", func(t *testcase.T) {
		list := mk(t)
		list.Append(random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })...)
		var n int
		for range list.Values() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	s.Context("implements LenAppendable", LenAppendable[T](mk, c).Spec)

	return s.AsSuite(fmt.Sprintf("List[%s]", typeName[T]()))
}

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c *ListConfig[T]) Init() {
	c.MakeElem = randomElem[T]
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	return makeElem(tb, c.MakeElem)
}
