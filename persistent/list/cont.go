package list

import (
	"github.com/npillmayer/folds"
)

// The two folds can simulate each other without giving up their associativity
// by folding over continuations instead of values: the accumulator is a
// function func(B) B standing for "the rest of the reduction". Each step wraps
// the continuation built so far, deferring its application; applying the final
// continuation to the zero value then replays the combinations in the opposite
// fold's order. Composition order, not evaluation order, determines the
// associativity of the result.

// FoldLeftViaRight computes exactly FoldLeft(l, zero, f), but traverses l with
// FoldRight.
func FoldLeftViaRight[T, B any](l List[T], zero B, f func(B, T) B) B {
	cont := FoldRight(l, folds.Identity[B], func(item T, g func(B) B) func(B) B {
		step := func(acc B) B { return f(acc, item) }
		return folds.Compose(step, g)
	})
	return cont(zero)
}

// FoldRightViaLeft computes exactly FoldRight(l, zero, f), but traverses l
// with FoldLeft, i.e. in a constant-stack loop.
func FoldRightViaLeft[T, B any](l List[T], zero B, f func(T, B) B) B {
	cont := FoldLeft(l, folds.Identity[B], func(g func(B) B, item T) func(B) B {
		step := func(acc B) B { return f(item, acc) }
		return folds.Compose(step, g)
	})
	return cont(zero)
}
