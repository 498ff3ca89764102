package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("%s should be true", str)
		}
	}
	for _, str := range []string{"false", "F", "no", "N", "whatever", ""} {
		if StrToBool(str) {
			t.Fatalf("%s should be false", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "a", "b"); v != "a" {
		t.Fatalf("got %q", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %d", v)
	}
	if v := FirstNonZero[int](); v != 0 {
		t.Fatalf("got %d", v)
	}
}
