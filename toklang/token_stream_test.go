package toklang

import "testing"

func TestSliceTokenStream(t *testing.T) {
	tokens, err := ScanAll(NewSource("test", "1 + 2"))
	if err != nil {
		t.Fatal(err)
	}

	var stream TokenStream = NewSliceTokenStream(tokens)
	for i := range tokens {
		token, err := stream.Current()
		if err != nil {
			t.Fatal(err)
		}
		if token.Kind != tokens[i].Kind {
			t.Fatalf("step %d: got %v", i, token.Kind)
		}
		stream.Consume()
	}

	// safe to over-read
	for i := 0; i < 3; i++ {
		token, err := stream.Current()
		if err != nil {
			t.Fatal(err)
		}
		if token.Kind != TokenEOF {
			t.Fatalf("expected EOF, got %v", token.Kind)
		}
		stream.Consume()
	}
}

func TestScannerIsTokenStream(t *testing.T) {
	var stream TokenStream = NewScanner(NewSource("test", "x"))
	token, err := stream.Current()
	if err != nil {
		t.Fatal(err)
	}
	if token.Kind != TokenIdentifier {
		t.Fatalf("got %v", token.Kind)
	}
}
