/*
Package list implements a persistent (immutable) singly-linked list, together
with a small algebra of fold-based operations.

Every "modifying" operation returns a new list, leaving the original unchanged.
Under the hood the new incarnation shares as much cell structure with the
original as possible: Cons allocates a single cell in front of an existing
chain, Tail is a pointer step, and Append rebuilds only the prefix while the
suffix is reused as-is. Sharing is invisible to clients, as no operation in the
algebra is identity-sensitive.

Almost every operation of the package is derived from one of two fold
primitives, FoldLeft and FoldRight, keeping the algebra closed. The two folds
are mutually expressible by folding over continuations instead of values; see
FoldLeftViaRight and FoldRightViaLeft.

Immutable lists are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'folds.list'.
func tracer() tracing.Trace {
	return tracing.Select("folds.list")
}
