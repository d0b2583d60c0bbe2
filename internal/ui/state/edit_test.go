package state

import "testing"

func TestInsertAndDeleteEditText(t *testing.T) {
	buf := NewEditBuffer("")

	if !buf.Insert('a') || !buf.Insert('b') {
		t.Fatal("expected insert to succeed")
	}
	if buf.Value() != "ab" || buf.Cursor() != 2 {
		t.Fatalf("unexpected buffer state %q/%d", buf.Value(), buf.Cursor())
	}

	buf.MoveLeft()
	if !buf.Insert('z') {
		t.Fatal("expected insert in middle to succeed")
	}
	if buf.Value() != "azb" || buf.Cursor() != 2 {
		t.Fatalf("expected insert into middle, got %q/%d", buf.Value(), buf.Cursor())
	}

	if !buf.DeleteBackward() {
		t.Fatal("expected backspace to succeed")
	}
	if buf.Value() != "ab" || buf.Cursor() != 1 {
		t.Fatalf("expected rune before cursor removed, got %q/%d", buf.Value(), buf.Cursor())
	}

	if !buf.DeleteForward() {
		t.Fatal("expected delete to succeed")
	}
	if buf.Value() != "a" || buf.Cursor() != 1 {
		t.Fatalf("expected rune at cursor removed, got %q/%d", buf.Value(), buf.Cursor())
	}
}

func TestEditBoundaryOperationsAreNoOps(t *testing.T) {
	buf := NewEditBuffer("abc")
	if buf.DeleteBackward() {
		t.Fatal("expected backspace at start to fail")
	}
	if buf.Value() != "abc" || buf.Cursor() != 0 {
		t.Fatalf("expected buffer unchanged, got %q/%d", buf.Value(), buf.Cursor())
	}
	if buf.MoveLeft() || buf.MoveStart() {
		t.Fatal("expected no movement left of start")
	}

	if !buf.MoveEnd() {
		t.Fatal("expected move to end")
	}
	if buf.DeleteForward() {
		t.Fatal("expected delete at end to fail")
	}
	if buf.MoveRight() || buf.MoveEnd() {
		t.Fatal("expected no movement right of end")
	}
	if buf.Value() != "abc" || buf.Cursor() != 3 {
		t.Fatalf("expected buffer unchanged, got %q/%d", buf.Value(), buf.Cursor())
	}

	if !buf.DeleteBackward() || buf.Value() != "ab" || buf.Cursor() != 2 {
		t.Fatalf("expected last rune removed by backspace at end, got %q/%d", buf.Value(), buf.Cursor())
	}
}

func TestEditCountsRunes(t *testing.T) {
	buf := NewEditBuffer("héllo")
	if buf.Len() != 5 {
		t.Fatalf("expected 5 runes, got %d", buf.Len())
	}
	buf.MoveRight()
	buf.MoveRight()
	if !buf.DeleteBackward() || buf.Value() != "hllo" {
		t.Fatalf("expected multibyte rune removed, got %q", buf.Value())
	}
}

func TestEditViewSplit(t *testing.T) {
	cases := []struct {
		view               EditView
		before, at, after string
	}{
		{EditView{Text: "abc", Cursor: 0}, "", "a", "bc"},
		{EditView{Text: "abc", Cursor: 1}, "a", "b", "c"},
		{EditView{Text: "abc", Cursor: 3}, "abc", "", ""},
		{EditView{Text: "", Cursor: 0}, "", "", ""},
		{EditView{Text: "ab", Cursor: 9}, "ab", "", ""},
	}
	for _, tc := range cases {
		before, at, after := tc.view.Split()
		if before != tc.before || at != tc.at || after != tc.after {
			t.Fatalf("split %+v: got %q/%q/%q", tc.view, before, at, after)
		}
	}
}
