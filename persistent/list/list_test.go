package list

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	l := Empty[int]()
	if !l.IsEmpty() {
		t.Error("expected Empty() to be empty, isn't")
	}
	if l.Len() != 0 {
		t.Errorf("expected Empty() to have length 0, has %d", l.Len())
	}
	var zero List[int]
	if !zero.IsEmpty() {
		t.Error("expected zero value List to be empty, isn't")
	}
}

func TestConsAndFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	l := Cons(1, Cons(2, Cons(3, Empty[int]())))
	if l.Len() != 3 {
		t.Errorf("expected cons'ed list to have length 3, has %d", l.Len())
	}
	m := From(1, 2, 3)
	if !Equal(l, m) {
		t.Logf("l = %s, m = %s", l, m)
		t.Error("expected From(1,2,3) to equal Cons(1,Cons(2,Cons(3,[]))), doesn't")
	}
	if From[int]().Len() != 0 {
		t.Error("expected From() without arguments to be the empty list, isn't")
	}
}

func TestFromPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	l := From("a", "b", "c")
	if l.String() != "[a,b,c]" {
		t.Logf("l = %s", l)
		t.Error("expected From to preserve input order, doesn't")
	}
}

func TestHeadTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	l := From(1, 2, 3)
	h, err := l.Head()
	if err != nil || h != 1 {
		t.Logf("head = %v, err = %v", h, err)
		t.Error("expected head of [1,2,3] to be 1, isn't")
	}
	rest, err := l.Tail()
	if err != nil || !Equal(rest, From(2, 3)) {
		t.Logf("tail = %s, err = %v", rest, err)
		t.Error("expected tail of [1,2,3] to be [2,3], isn't")
	}
	if _, err := Empty[int]().Tail(); !errors.Is(err, ErrEmptyList) {
		t.Logf("err = %v", err)
		t.Error("expected tail of empty list to fail with ErrEmptyList, didn't")
	}
	if _, err := Empty[int]().Head(); !errors.Is(err, ErrEmptyList) {
		t.Logf("err = %v", err)
		t.Error("expected head of empty list to fail with ErrEmptyList, didn't")
	}
}

func TestSetHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	l := From(1, 2, 3)
	m, err := l.SetHead(9)
	if err != nil {
		t.Fatalf("expected SetHead on a nonempty list to succeed, failed: %v", err)
	}
	if !Equal(m, From(9, 2, 3)) {
		t.Logf("m = %s", m)
		t.Error("expected SetHead(9) to produce [9,2,3], didn't")
	}
	if !Equal(l, From(1, 2, 3)) {
		t.Logf("l = %s", l)
		t.Error("expected original list to be untouched by SetHead, isn't")
	}
	if _, err := Empty[int]().SetHead(9); !errors.Is(err, ErrEmptyList) {
		t.Logf("err = %v", err)
		t.Error("expected SetHead on empty list to fail with ErrEmptyList, didn't")
	}
}

func TestStructuralSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	suffix := From(2, 3)
	l := Cons(1, suffix)
	rest, _ := l.Tail()
	if rest.head != suffix.head {
		t.Error("expected tail of cons'ed list to share cells with the suffix, doesn't")
	}
	m, _ := l.SetHead(9)
	if m.head.rest != l.head.rest {
		t.Error("expected SetHead to share the whole remainder, doesn't")
	}
	appended := Append(From(0), suffix)
	tail2, _ := appended.Tail()
	if tail2.head != suffix.head {
		t.Error("expected Append to reuse its second argument unchanged, doesn't")
	}
}

func TestFirstLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	l := From(1, 2, 3)
	if first := l.First().WithDefault(-1); first != 1 {
		t.Logf("first = %d", first)
		t.Error("expected First of [1,2,3] to be Just(1), isn't")
	}
	if last := l.Last().WithDefault(-1); last != 3 {
		t.Logf("last = %d", last)
		t.Error("expected Last of [1,2,3] to be Just(3), isn't")
	}
	var v int
	switch m := Empty[int]().First().Match(); m {
	case m.Just(&v):
		t.Error("expected First of empty list to be Nothing, is Just")
	case m.Nothing():
	}
}

func TestMatcher(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds.list")
	defer teardown()
	//
	var head int
	var rest List[int]
	switch m := From(7, 8).Match(); m {
	case m.Cons(&head, &rest):
		if head != 7 {
			t.Errorf("expected matched head to be 7, is %d", head)
		}
		if !Equal(rest, From(8)) {
			t.Errorf("expected matched rest to be [8], is %s", rest)
		}
	case m.Empty():
		t.Error("expected [7,8] to match the Cons case, didn't")
	}
	switch m := Empty[int]().Match(); m {
	case m.Cons(&head, &rest):
		t.Error("expected empty list to match the Empty case, didn't")
	case m.Empty():
	}
}

func TestListString(t *testing.T) {
	l := From(1, 2, 3)
	if l.String() != "[1,2,3]" {
		t.Errorf("expected [1,2,3] as string output, is %s", l.String())
	}
	if Empty[int]().String() != "[]" {
		t.Errorf("expected [] as string output for empty list, is %s", Empty[int]().String())
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Empty[int](), Empty[int]()) {
		t.Error("expected empty lists to be equal, aren't")
	}
	if Equal(From(1, 2), From(1, 2, 3)) {
		t.Error("expected lists of different length to differ, don't")
	}
	if Equal(From(1, 2, 4), From(1, 2, 3)) {
		t.Error("expected [1,2,4] and [1,2,3] to differ, don't")
	}
}
