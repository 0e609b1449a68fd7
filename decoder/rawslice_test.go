package decoder_test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/nounish/govscope/decoder"
)

func word(hexWord string) string {
	return strings.Repeat("0", 64-len(hexWord)) + hexWord
}

func TestSliceCalldataStripsSelectorByAlignment(t *testing.T) {
	params := word("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") + word("2a")

	bare := decoder.SliceCalldata("0x" + params)
	prefixed := decoder.SliceCalldata("0xa9059cbb" + params)

	if bare.Count() != 2 || prefixed.Count() != 2 {
		t.Fatalf("want 2 words each, got %d and %d", bare.Count(), prefixed.Count())
	}
	a1, _ := bare.Address(0)
	a2, _ := prefixed.Address(0)
	if a1 != a2 {
		t.Errorf("selector stripping changed the address: %s vs %s", a1, a2)
	}
	v, ok := prefixed.Big(1)
	if !ok || v.Int64() != 42 {
		t.Errorf("word 1: want 42, got %v (ok=%t)", v, ok)
	}
}

func TestWordsAccessorsAreTotal(t *testing.T) {
	w := decoder.SliceCalldata("0x" + word("1"))

	if _, ok := w.Address(5); ok {
		t.Error("out-of-range Address should report !ok")
	}
	if _, ok := w.Big(-1); ok {
		t.Error("negative index should report !ok")
	}
	if _, ok := w.String(0); ok {
		// word 0 holds 1, pointing the string head into the length word itself
		t.Error("string offset past the data should report !ok")
	}

	empty := decoder.SliceCalldata("not hex at all")
	if empty.Count() != 0 {
		t.Errorf("invalid hex: want 0 words, got %d", empty.Count())
	}
}

func TestWordsBool(t *testing.T) {
	w := decoder.SliceCalldata("0x" + word("0") + word("1"))
	if v, ok := w.Bool(0); !ok || v {
		t.Errorf("word 0: want false, got %t (ok=%t)", v, ok)
	}
	if v, ok := w.Bool(1); !ok || !v {
		t.Errorf("word 1: want true, got %t (ok=%t)", v, ok)
	}
}

func TestWordsDynamicString(t *testing.T) {
	payload := "nouns.eth"
	padded := hex.EncodeToString([]byte(payload))
	for len(padded)%64 != 0 {
		padded += "0"
	}
	// one head word pointing at offset 32, then length + payload
	data := "0x" + word("20") + fmt.Sprintf("%064x", len(payload)) + padded

	w := decoder.SliceCalldata(data)
	got, ok := w.String(0)
	if !ok {
		t.Fatal("expected string decode to succeed")
	}
	if got != payload {
		t.Errorf("want %q, got %q", payload, got)
	}
}

func TestWordsStringStripsNULs(t *testing.T) {
	// length claims the full padded word, so the payload carries its padding
	data := "0x" + word("20") + word("20") + hex.EncodeToString([]byte("abc")) + strings.Repeat("00", 29)

	w := decoder.SliceCalldata(data)
	got, ok := w.String(0)
	if !ok {
		t.Fatal("expected string decode to succeed")
	}
	if got != "abc" {
		t.Errorf("want abc with padding stripped, got %q", got)
	}
}
