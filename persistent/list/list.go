package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/folds/maybe"
)

// List is a persistent singly-linked list. An empty instance is usable as an
// empty list, i.e. this is legal:
//
//     l := list.List[int]{}.Cons(42)
//
// returning a list of a single element 42. Lists are values; copying a List
// copies a reference to the underlying chain of cells, which is never mutated.
type List[T any] struct {
	head *cell[T]
}

// cell is a single link of a list. Cells are shared freely between list
// incarnations and are never written to after creation.
type cell[T any] struct {
	item T
	rest *cell[T]
}

// ErrEmptyList is returned by operations which require a nonempty list but
// received an empty one.
var ErrEmptyList = errors.New("list: operation requires a nonempty list")

// ErrOutOfRange is returned by Drop when the drop count exceeds the length of
// the list.
var ErrOutOfRange = errors.New("list: drop count exceeds length of list")

// --- Construction ----------------------------------------------------------

// Empty returns the empty list. It is equivalent to the zero value List[T]{}.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with item in front of rest. rest is left unchanged
// and its cells are shared with the new incarnation.
func Cons[T any](item T, rest List[T]) List[T] {
	return List[T]{head: &cell[T]{item: item, rest: rest.head}}
}

// Cons returns a new list with item in front of l.
func (l List[T]) Cons(item T) List[T] {
	return Cons(item, l)
}

// From builds a list from items, preserving their order:
//
//     list.From(1, 2, 3)   ⟹   [1,2,3]
//
// From() without arguments returns the empty list.
func From[T any](items ...T) List[T] {
	var l List[T]
	for i := len(items) - 1; i >= 0; i-- {
		l = Cons(items[i], l)
	}
	return l
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff l has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Head returns the first element of l, or ErrEmptyList for the empty list.
func (l List[T]) Head() (T, error) {
	if l.head == nil {
		var none T
		return none, ErrEmptyList
	}
	return l.head.item, nil
}

// Tail returns l without its first element, or ErrEmptyList for the empty
// list. Tail does not allocate; the returned list shares all cells with l.
func (l List[T]) Tail() (List[T], error) {
	if l.head == nil {
		return List[T]{}, ErrEmptyList
	}
	return List[T]{head: l.head.rest}, nil
}

// SetHead returns a copy of l with the first element replaced by item, or
// ErrEmptyList for the empty list. l is left unchanged; only a single new
// cell is allocated.
func (l List[T]) SetHead(item T) (List[T], error) {
	if l.head == nil {
		return List[T]{}, ErrEmptyList
	}
	return List[T]{head: &cell[T]{item: item, rest: l.head.rest}}, nil
}

// First returns the first element of l, if any.
func (l List[T]) First() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.item)
}

// Last returns the last element of l, if any.
func (l List[T]) Last() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	c := l.head
	for c.rest != nil {
		c = c.rest
	}
	return maybe.Just(c.item)
}

// Len returns the number of elements in l.
func (l List[T]) Len() int {
	return FoldLeft(l, 0, func(n int, _ T) int {
		return n + 1
	})
}

// Equal compares two lists element-wise. Equality is structural: two lists are
// equal iff they hold the same elements in the same order, regardless of cell
// sharing.
func Equal[T comparable](a, b List[T]) bool {
	ca, cb := a.head, b.head
	for ca != nil && cb != nil {
		if ca.item != cb.item {
			return false
		}
		ca, cb = ca.rest, cb.rest
	}
	return ca == nil && cb == nil
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for c := l.head; c != nil; c = c.rest {
		if c != l.head {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", c.item))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
