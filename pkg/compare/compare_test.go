package compare_test

import (
	"math"
	"slices"
	"testing"

	"go.llib.dev/sortedlist/pkg/compare"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestOrdered(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		A = let.Int(s)
		B = let.Int(s)
	)
	act := let.Act(func(t *testcase.T) int {
		cmp := compare.Ordered(A.Get(t), B.Get(t))
		t.OnFail(func() {
			t.Log("cmp:", cmp)
		})
		return cmp
	})

	s.Before(func(t *testcase.T) {
		t.OnFail(func() {
			t.Log("A:", A.Get(t))
			t.Log("B:", B.Get(t))
		})
	})

	s.Then("comparison result returned", func(t *testcase.T) {
		assert.True(t, slices.Contains([]int{-1, 0, 1}, act(t)))
	})

	s.When("A is equal to B", func(s *testcase.Spec) {
		A.LetValue(s, 42)
		B.LetValue(s, 42)

		s.Then("cmp is 0", func(t *testcase.T) {
			assert.Equal(t, 0, act(t))
		})

		s.Then("equality will be true", func(t *testcase.T) {
			assert.True(t, compare.IsEqual(act(t)))
		})

		s.Then("less will be false", func(t *testcase.T) {
			assert.False(t, compare.IsLess(act(t)))
		})

		s.Then("less or equal will be true", func(t *testcase.T) {
			assert.True(t, compare.IsLessOrEqual(act(t)))
		})

		s.Then("more or equal will be true", func(t *testcase.T) {
			assert.True(t, compare.IsMoreOrEqual(act(t)))
		})
	})

	s.When("A is less than B", func(s *testcase.Spec) {
		A.LetValue(s, 24)
		B.LetValue(s, 42)

		s.Then("cmp is -1", func(t *testcase.T) {
			assert.Equal(t, -1, act(t))
		})

		s.Then("less will be true", func(t *testcase.T) {
			assert.True(t, compare.IsLess(act(t)))
		})

		s.Then("more will be false", func(t *testcase.T) {
			assert.False(t, compare.IsMore(act(t)))
		})

		s.Then("more or equal will be false", func(t *testcase.T) {
			assert.False(t, compare.IsMoreOrEqual(act(t)))
		})
	})

	s.When("A is greater than B", func(s *testcase.Spec) {
		A.LetValue(s, 42)
		B.LetValue(s, 24)

		s.Then("cmp is 1", func(t *testcase.T) {
			assert.Equal(t, 1, act(t))
		})

		s.Then("more will be true", func(t *testcase.T) {
			assert.True(t, compare.IsMore(act(t)))
		})

		s.Then("less or equal will be false", func(t *testcase.T) {
			assert.False(t, compare.IsLessOrEqual(act(t)))
		})
	})
}

func TestOrdered_float(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 0, compare.Ordered(nan, nan))
	assert.Equal(t, -1, compare.Ordered(nan, math.Inf(-1)))
	assert.Equal(t, 1, compare.Ordered(0.0, nan))
	assert.Equal(t, 0, compare.Ordered(math.Copysign(0, -1), 0.0))
}

func TestOrdered_strings(t *testing.T) {
	assert.Equal(t, -1, compare.Ordered("a", "b"))
	assert.Equal(t, 0, compare.Ordered("b", "b"))
	assert.Equal(t, 1, compare.Ordered("b", "a"))
}

type version struct{ Major, Minor int }

func (v version) Compare(oth version) int {
	if v.Major != oth.Major {
		return (v.Major - oth.Major) * 10
	}
	return (v.Minor - oth.Minor) * 10
}

func TestSelf(t *testing.T) {
	assert.Equal(t, -1, compare.Self(version{1, 2}, version{1, 3}))
	assert.Equal(t, 0, compare.Self(version{1, 2}, version{1, 2}))
	assert.Equal(t, 1, compare.Self(version{2, 0}, version{1, 9}))
}
