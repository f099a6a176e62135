package list

// The operations in this file are derived from the two fold primitives
// wherever possible, keeping the algebra closed. None of them touches an
// existing cell: "modifications" allocate new prefix cells and share the
// remaining structure with their input.

// Numeric is the constraint for element types Sum and Product operate on.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Sum adds up the elements of l, right to left. Sum of the empty list is 0.
func Sum[T Numeric](l List[T]) T {
	var zero T
	return FoldRight(l, zero, func(item, acc T) T {
		return item + acc
	})
}

// SumLeft adds up the elements of l, front to back. Addition is associative,
// so SumLeft agrees with Sum on every finite list.
func SumLeft[T Numeric](l List[T]) T {
	var zero T
	return FoldLeft(l, zero, func(acc, item T) T {
		return acc + item
	})
}

// Product multiplies the elements of l. Product of the empty list is 1.
// A zero element settles the product without looking at the remainder of the
// list, so Product is written as an explicit short-circuiting walk rather
// than a fold.
func Product[T Numeric](l List[T]) T {
	acc := T(1)
	for c := l.head; c != nil; c = c.rest {
		if c.item == 0 {
			tracer().Debugf("product hit a zero element, short-circuiting")
			return 0
		}
		acc *= c.item
	}
	return acc
}

// Append returns the concatenation of a and b. Only a's cells are rebuilt;
// b is reused unchanged as the suffix of the result.
func Append[T any](a, b List[T]) List[T] {
	return FoldRight(a, b, Cons[T])
}

// Append returns the concatenation of l and other.
func (l List[T]) Append(other List[T]) List[T] {
	return Append(l, other)
}

// Concat flattens a list of lists, preserving the order of the outer list.
func Concat[T any](ls List[List[T]]) List[T] {
	return FoldRight(ls, Empty[T](), Append[T])
}

// Map returns the list of f applied to each element of l, preserving order
// and length.
func Map[T, S any](l List[T], f func(T) S) List[S] {
	return FoldRight(l, Empty[S](), func(item T, acc List[S]) List[S] {
		return Cons(f(item), acc)
	})
}

// Map returns the list of f applied to each element of l. For mapping to a
// different element type use the package-level Map.
func (l List[T]) Map(f func(T) T) List[T] {
	return Map(l, f)
}

// Filter returns the elements of l for which pred holds, in their original
// relative order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	return FoldRight(l, Empty[T](), func(item T, acc List[T]) List[T] {
		if pred(item) {
			return Cons(item, acc)
		}
		return acc
	})
}

// FlatMap maps each element of l to a list and flattens the results: the
// elements of f(first) precede the elements of f(second), and so on. The
// mapping pass runs exactly once.
func FlatMap[T, S any](l List[T], f func(T) List[S]) List[S] {
	return Concat(Map(l, f))
}

// Drop returns l without its first n elements, sharing all remaining cells
// with l. n <= 0 returns l unchanged; ErrOutOfRange is returned when n
// exceeds the length of l.
func (l List[T]) Drop(n int) (List[T], error) {
	if n <= 0 {
		return l, nil
	}
	c := l.head
	for i := 0; i < n; i++ {
		if c == nil {
			tracer().Debugf("drop(%d) ran off the end of the list", n)
			return List[T]{}, ErrOutOfRange
		}
		c = c.rest
	}
	return List[T]{head: c}, nil
}

// DropWhile returns l without its longest prefix of elements satisfying pred,
// sharing all remaining cells with l.
func (l List[T]) DropWhile(pred func(T) bool) List[T] {
	c := l.head
	for c != nil && pred(c.item) {
		c = c.rest
	}
	return List[T]{head: c}
}

// Init returns l without its last element, or ErrEmptyList for the empty
// list. Persistence forbids truncating in place, so the whole prefix is
// rebuilt (two passes over l).
func (l List[T]) Init() (List[T], error) {
	if l.head == nil {
		return List[T]{}, ErrEmptyList
	}
	rev := l.Reverse()
	assertThat(rev.head != nil, "reverse of a nonempty list is never empty")
	tracer().Debugf("init rebuilds a prefix of %d cells", l.Len()-1)
	return List[T]{head: rev.head.rest}.Reverse(), nil
}
