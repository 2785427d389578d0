package dscontract

import (
	"fmt"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/sortedlist/port/contract"
	"go.llib.dev/sortedlist/port/ds"
	"go.llib.dev/sortedlist/port/option"
)

// SortedList verifies a ds.SortedList implementation.
// compare must describe the same total order the implementation uses.
func SortedList[T any, Subject ds.SortedList[T]](mk contract.Make[Subject], compare func(a, b T) int, opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	var (
		subject = let.Var(s, func(t *testcase.T) Subject {
			return mk(t)
		})
		values = let.Var(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) }, random.UniqueValues)
		})
	)
	sorted := func(vs []T) []T {
		out := slices.Clone(vs)
		slices.SortStableFunc(out, compare)
		return out
	}
	givenValuesAdded := func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})
	}

	s.Test("values are kept ordered regardless of the insertion order", func(t *testcase.T) {
		list := subject.Get(t)
		for _, v := range values.Get(t) {
			list.Add(v)
		}
		exp := sorted(values.Get(t))
		assert.Equal(t, exp, list.ToSlice())
		assert.Equal(t, exp, iterkit.Collect(list.Values()))
	})

	s.Test("the same values added in a different order result in the same content", func(t *testcase.T) {
		var (
			a  = mk(t)
			b  = mk(t)
			vs = values.Get(t)
		)
		a.Append(vs...)
		reversed := slices.Clone(vs)
		slices.Reverse(reversed)
		b.Append(reversed...)
		assert.Equal(t, a.ToSlice(), b.ToSlice())
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := func(t *testcase.T) (T, error) {
			return subject.Get(t).Get(index.Get(t))
		}

		s.When("the list has values", func(s *testcase.Spec) {
			givenValuesAdded(s)

			s.Then("every index returns the value of the ordered position", func(t *testcase.T) {
				for i, exp := range sorted(values.Get(t)) {
					got, err := subject.Get(t).Get(i)
					assert.NoError(t, err)
					assert.Equal(t, exp, got)

					got, ok := subject.Get(t).Lookup(i)
					assert.True(t, ok)
					assert.Equal(t, exp, got)
				}
			})

			s.And("the index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-10, -1)
				})

				s.Then("out of bounds error is returned", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, ds.ErrIndexOutOfBounds)
				})

				s.Then("lookup reports the value as missing", func(t *testcase.T) {
					_, ok := subject.Get(t).Lookup(index.Get(t))
					assert.False(t, ok)
				})
			})

			s.And("the index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return subject.Get(t).Len()
				})

				s.Then("out of bounds error is returned", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, ds.ErrIndexOutOfBounds)
				})

				s.Then("lookup reports the value as missing", func(t *testcase.T) {
					_, ok := subject.Get(t).Lookup(index.Get(t))
					assert.False(t, ok)
				})
			})
		})

		s.When("the list is empty", func(s *testcase.Spec) {
			index.LetValue(s, 0)

			s.Then("out of bounds error is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, ds.ErrIndexOutOfBounds)
			})
		})
	})

	s.Describe("#RemoveAt", func(s *testcase.Spec) {
		givenValuesAdded(s)

		index := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntN(len(values.Get(t)))
		})
		act := func(t *testcase.T) (T, error) {
			return subject.Get(t).RemoveAt(index.Get(t))
		}

		s.Then("the value at the index is removed and returned", func(t *testcase.T) {
			exp := sorted(values.Get(t))
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, exp[index.Get(t)], got)

			exp = slices.Delete(exp, index.Get(t), index.Get(t)+1)
			assert.Equal(t, exp, subject.Get(t).ToSlice())
			assert.Equal(t, len(exp), subject.Get(t).Len())
		})

		s.When("the index is out of bounds", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return len(values.Get(t)) + t.Random.IntBetween(0, 3)
			})

			s.Then("out of bounds error is returned and the list is left intact", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, ds.ErrIndexOutOfBounds)
				assert.Equal(t, sorted(values.Get(t)), subject.Get(t).ToSlice())
			})
		})

		s.When("the index is negative", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(-10, -1)
			})

			s.Then("out of bounds error is returned and the list is left intact", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, ds.ErrIndexOutOfBounds)
				assert.Equal(t, sorted(values.Get(t)), subject.Get(t).ToSlice())
				assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
			})
		})
	})

	s.Describe("#RemoveFirst", func(s *testcase.Spec) {
		s.When("the list is empty", func(s *testcase.Spec) {
			s.Then("empty error is returned", func(t *testcase.T) {
				_, err := subject.Get(t).RemoveFirst()
				assert.ErrorIs(t, err, ds.ErrEmpty)
			})
		})

		s.When("the list has values", func(s *testcase.Spec) {
			givenValuesAdded(s)

			s.Then("values come out from the smallest to the largest", func(t *testcase.T) {
				var got []T
				for range values.Get(t) {
					v, err := subject.Get(t).RemoveFirst()
					assert.NoError(t, err)
					got = append(got, v)
				}
				assert.Equal(t, sorted(values.Get(t)), got)
				assert.Equal(t, 0, subject.Get(t).Len())

				_, err := subject.Get(t).RemoveFirst()
				assert.ErrorIs(t, err, ds.ErrEmpty)
			})
		})
	})

	s.Describe("#RemoveLast", func(s *testcase.Spec) {
		s.When("the list is empty", func(s *testcase.Spec) {
			s.Then("empty error is returned", func(t *testcase.T) {
				_, err := subject.Get(t).RemoveLast()
				assert.ErrorIs(t, err, ds.ErrEmpty)
			})
		})

		s.When("the list has values", func(s *testcase.Spec) {
			givenValuesAdded(s)

			s.Then("values come out from the largest to the smallest", func(t *testcase.T) {
				var got []T
				for range values.Get(t) {
					v, err := subject.Get(t).RemoveLast()
					assert.NoError(t, err)
					got = append(got, v)
				}
				exp := sorted(values.Get(t))
				slices.Reverse(exp)
				assert.Equal(t, exp, got)
				assert.Equal(t, 0, subject.Get(t).Len())
			})
		})
	})

	s.Describe("#IndexOf and #LastIndexOf", func(s *testcase.Spec) {
		givenValuesAdded(s)

		duplicated := let.Var(s, func(t *testcase.T) T {
			return random.Pick(t.Random, values.Get(t)...)
		})

		s.Before(func(t *testcase.T) {
			subject.Get(t).Add(duplicated.Get(t))
		})

		s.Then("the first and the last positions of equal values are reported", func(t *testcase.T) {
			exp := sorted(append(slices.Clone(values.Get(t)), duplicated.Get(t)))
			first := slices.IndexFunc(exp, func(v T) bool { return compare(v, duplicated.Get(t)) == 0 })
			assert.True(t, 0 <= first)

			assert.Equal(t, first, subject.Get(t).IndexOf(duplicated.Get(t)))
			assert.Equal(t, first+1, subject.Get(t).LastIndexOf(duplicated.Get(t)))
			assert.True(t, subject.Get(t).Contains(duplicated.Get(t)))
		})

		s.Then("absent values are reported with -1", func(t *testcase.T) {
			absent := random.Unique(func() T { return c.makeElem(t) }, values.Get(t)...)
			assert.Equal(t, -1, subject.Get(t).IndexOf(absent))
			assert.Equal(t, -1, subject.Get(t).LastIndexOf(absent))
			assert.False(t, subject.Get(t).Contains(absent))
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		givenValuesAdded(s)

		s.Then("the list becomes empty", func(t *testcase.T) {
			subject.Get(t).Clear()
			assert.Equal(t, 0, subject.Get(t).Len())
			assert.Empty(t, subject.Get(t).ToSlice())
			assert.Empty(t, iterkit.Collect(subject.Get(t).Values()))
		})

		s.Then("clearing is idempotent", func(t *testcase.T) {
			subject.Get(t).Clear()
			subject.Get(t).Clear()
			assert.Equal(t, 0, subject.Get(t).Len())
		})

		s.Then("the list is usable after clearing", func(t *testcase.T) {
			subject.Get(t).Clear()
			subject.Get(t).Append(values.Get(t)...)
			assert.Equal(t, sorted(values.Get(t)), subject.Get(t).ToSlice())
		})
	})

	s.Describe("#ToSlice", func(s *testcase.Spec) {
		givenValuesAdded(s)

		s.Then("the returned slice is not shared with the list", func(t *testcase.T) {
			snapshot := subject.Get(t).ToSlice()
			snapshot[0] = c.makeElem(t)
			slices.Reverse(snapshot)
			assert.Equal(t, sorted(values.Get(t)), subject.Get(t).ToSlice())
		})

		s.Then("later changes to the list don't affect an earlier snapshot", func(t *testcase.T) {
			snapshot := subject.Get(t).ToSlice()
			subject.Get(t).Add(c.makeElem(t))
			_, err := subject.Get(t).RemoveFirst()
			assert.NoError(t, err)
			assert.Equal(t, sorted(values.Get(t)), snapshot)
		})
	})

	s.Context("implements List", List[T](mk, c).Spec)
	s.Context("implements Containable", Containable[T](mk, c).Spec)

	return s.AsSuite(fmt.Sprintf("SortedList[%s]", typeName[T]()))
}
