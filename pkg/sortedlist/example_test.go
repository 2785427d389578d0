package sortedlist_test

import (
	"errors"
	"fmt"
	"slices"

	"go.llib.dev/sortedlist/pkg/sortedlist"
)

func ExampleNew() {
	l := sortedlist.New(3, 1, 2)
	fmt.Println(l)
	// Output: [1 2 3]
}

func ExampleSequence_Add() {
	var l sortedlist.List[string]
	l.Add("charlie")
	l.Add("alpha")
	l.Add("bravo")

	for v := range l.Values() {
		fmt.Println(v)
	}
	// Output:
	// alpha
	// bravo
	// charlie
}

func ExampleSequence_AddAll() {
	l := sortedlist.New(1, 2)
	l.AddAll(slices.Values(l.ToSlice()))
	fmt.Println(l)
	// Output: [1 1 2 2]
}

func ExampleSequence_Get() {
	l := sortedlist.New(10, 30, 20)

	v, err := l.Get(1)
	_ = err // nil
	_ = v   // 20

	_, err = l.Get(3)
	var ierr *sortedlist.IndexError
	_ = errors.As(err, &ierr)                          // true
	_ = errors.Is(err, sortedlist.ErrIndexOutOfBounds) // true
}

func ExampleSequence_RemoveAt() {
	l := sortedlist.New(1, 2, 3)
	v, _ := l.RemoveAt(1)
	fmt.Println(v, l)
	// Output: 2 [1 3]
}

func ExampleSequence_Iterator() {
	l := sortedlist.New(5, 3, 4)

	it := l.Iterator()
	defer it.Close()
	for it.Next() {
		fmt.Println(it.Value())
	}
	if err := it.Err(); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 3
	// 4
	// 5
}

func ExampleSequence_Hash() {
	a := sortedlist.New(1, 2, 3)
	b := sortedlist.New(3, 2, 1)
	fmt.Println(a.Equal(b), a.Hash() == b.Hash())
	// Output: true true
}

type priority struct {
	Level int
	Name  string
}

func (p priority) Compare(oth priority) int { return p.Level - oth.Level }

func (p priority) Hash() uint64 { return uint64(p.Level) }

func ExampleNewOf() {
	l := sortedlist.NewOf(
		priority{Level: 3, Name: "low"},
		priority{Level: 1, Name: "high"},
	)
	first, _ := l.First()
	fmt.Println(first.Name)
	// Output: high
}
