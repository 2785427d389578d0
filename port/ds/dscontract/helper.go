package dscontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/testcase"
)

func makeElem[T any](tb testing.TB, fn func(testing.TB) T) T {
	if fn != nil {
		return fn(tb)
	}
	return randomElem[T](tb)
}

func randomElem[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}

func typeName[T any]() string {
	return reflectkit.TypeOf[T]().String()
}
