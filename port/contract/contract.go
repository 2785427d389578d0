package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a role interface specification also known as "contract".
//
// Any expectation a consumer has towards a datastruct should be defined in a contract,
// so different implementations of the same role interface can be verified with the same suite.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements of an implementation.
	Test(*testing.T)
	// Benchmark measures the performance aspects that matter for the consumer.
	Benchmark(*testing.B)
}
