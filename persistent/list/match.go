package list

// A list is one of exactly two variants: the empty list, or a first element
// in front of a remainder. Matcher makes this sum type available for
// exhaustive case analysis, in the same switch-case idiom as maybe.Matcher:
//
//     var head int
//     var rest list.List[int]
//     switch m := l.Match(); m {
//     case m.Cons(&head, &rest):
//         …
//     case m.Empty():
//         …
//     }
//
// Exactly one case matches for every list.
type Matcher[T any] interface {
	Empty() Matcher[T]
	Cons(*T, *List[T]) Matcher[T]
}

// Match returns a Matcher for case analysis on l.
func (l List[T]) Match() Matcher[T] {
	return matcher[T]{l: l}
}

type matcher[T any] struct {
	l List[T]
}

func (m matcher[T]) Empty() Matcher[T] {
	if m.l.head == nil {
		return m
	}
	return nil
}

func (m matcher[T]) Cons(item *T, rest *List[T]) Matcher[T] {
	if m.l.head != nil {
		*item = m.l.head.item
		*rest = List[T]{head: m.l.head.rest}
		return m
	}
	return nil
}
