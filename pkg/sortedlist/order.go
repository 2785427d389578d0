package sortedlist

import (
	"cmp"
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"go.llib.dev/sortedlist/pkg/compare"
)

// Order binds a total order, an equality and a hash function to T.
// The implementations are zero sized types,
// so the order of a Sequence is fixed by its type and can't be swapped at runtime.
//
// Equal must agree with Compare returning 0,
// and equal values must have the same Hash.
type Order[T any] interface {
	Compare(a, b T) int
	Equal(a, b T) bool
	Hash(v T) uint64
}

// Element is a value that orders and hashes itself.
type Element[T any] interface {
	compare.Interface[T]
	Hash() uint64
}

// Natural is the order of the built-in ordered types.
// Floating point values follow cmp.Compare, so NaN is the smallest value and equals to itself.
type Natural[T cmp.Ordered] struct{}

func (Natural[T]) Compare(a, b T) int { return compare.Ordered(a, b) }

func (o Natural[T]) Equal(a, b T) bool { return compare.IsEqual(o.Compare(a, b)) }

func (Natural[T]) Hash(v T) uint64 { return hashOrdered(v) }

// Self is the order of types that implement Element.
type Self[T Element[T]] struct{}

func (Self[T]) Compare(a, b T) int { return compare.Self(a, b) }

func (Self[T]) Equal(a, b T) bool { return compare.IsEqual(compare.Self(a, b)) }

func (Self[T]) Hash(v T) uint64 { return v.Hash() }

func hashOrdered[T cmp.Ordered](v T) uint64 {
	rv := reflect.ValueOf(v)
	var buf [8]byte
	switch rv.Kind() {
	case reflect.String:
		return xxhash.Sum64String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(buf[:], rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case f == 0: // -0 and +0 are equal
			f = 0
		case math.IsNaN(f):
			f = math.NaN()
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	}
	return xxhash.Sum64(buf[:])
}
