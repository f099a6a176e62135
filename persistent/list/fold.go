package list

import (
	"github.com/npillmayer/folds"
)

// FoldLeft reduces l to a single value by combining an accumulator with each
// element in turn, front to back, strictly left-associative:
//
//     FoldLeft([a,b,c], z, f)   ⟹   f(f(f(z,a),b),c)
//
// FoldLeft runs as a loop and is safe for lists of any length; the other
// operations of this package which need to traverse long lists are built on
// top of it.
func FoldLeft[T, B any](l List[T], zero B, f func(B, T) B) B {
	acc := zero
	for c := l.head; c != nil; c = c.rest {
		acc = f(acc, c.item)
	}
	return acc
}

// FoldRight reduces l to a single value by combining each element with the
// already-reduced remainder, strictly right-associative:
//
//     FoldRight([a,b,c], z, f)   ⟹   f(a, f(b, f(c, z)))
//
// The innermost combination f(c, z) is evaluated first, i.e. evaluation
// proceeds from the end of the list backwards. FoldRight does not recurse on
// the cell chain: it reverses l once and then folds left with the flipped
// combinator, which yields exactly the combination order above with constant
// stack usage.
func FoldRight[T, B any](l List[T], zero B, f func(T, B) B) B {
	return FoldLeft(l.Reverse(), zero, folds.Flip(f))
}

// Reverse returns l with its elements in reverse order. Single pass; the
// result shares no cells with l.
func (l List[T]) Reverse() List[T] {
	return FoldLeft(l, Empty[T](), func(acc List[T], item T) List[T] {
		return Cons(item, acc)
	})
}
