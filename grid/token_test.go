package grid

import (
	"reflect"
	"testing"
)

func TestTokenizeSplitsOnWhitespaceRuns(t *testing.T) {
	got := Tokenize("  0\tA \n\n 0  ")
	want := []string{"0", "A", "0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize: got %v, want %v", got, want)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t \n"} {
		if got := Tokenize(raw); len(got) != 0 {
			t.Fatalf("Tokenize(%q): expected no tokens, got %v", raw, got)
		}
	}
}

func TestTokenizeNeverEmitsEmptyTokens(t *testing.T) {
	for _, tok := range Tokenize("a  b\t\tc\n\nd") {
		if tok == "" {
			t.Fatalf("Tokenize emitted an empty token")
		}
	}
}
