package toklang

import (
	"errors"
	"strings"
	"testing"
)

func TestPosError(t *testing.T) {
	source := NewSource("calc.tok", "1 + \"oops")
	_, err := ScanAll(source)
	if err == nil {
		t.Fatal("should error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "calc.tok:1:5") {
		t.Fatalf("got %q", msg)
	}
	// caret points at the opening quote
	if !strings.Contains(msg, "1 + \"oops\n    ^") {
		t.Fatalf("got %q", msg)
	}
}

func TestWithPos(t *testing.T) {
	if WithPos(nil, Pos{}) != nil {
		t.Fatal("nil should stay nil")
	}

	inner := errors.New("inner")
	err := WithPos(inner, Pos{Line: 1, Column: 1})
	if !errors.Is(err, inner) {
		t.Fatal("should unwrap")
	}
	// wrapping twice keeps the first position
	if err2 := WithPos(err, Pos{Line: 9, Column: 9}); err2 != err {
		t.Fatal("should not rewrap")
	}
}

func TestPosErrorNoSource(t *testing.T) {
	err := WithPos(errors.New("boom"), Pos{Line: 3, Column: 4})
	if err.Error() != "boom" {
		t.Fatalf("got %q", err.Error())
	}
}
