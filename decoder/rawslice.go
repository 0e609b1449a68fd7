package decoder

import (
	"encoding/hex"
	"math/big"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Words gives fixed-offset access to the 32-byte-aligned parameter slots of a
// calldata blob without any ABI knowledge. It backs the fallback decode paths
// for well-known function shapes (ERC20 transfer/approve, setApprovalForAll,
// the ENS reverse-registrar setName) when no schema is registered for the
// target contract.
//
// All accessors are total: an out-of-range index returns ok=false instead of
// panicking, and keeps these paths semantically aligned with the schema-driven
// decoder for the same signatures.
type Words struct {
	data []byte
}

// SliceCalldata hex-decodes calldata into word-addressable form. A leading
// 4-byte selector is detected by alignment (parameter data is always a
// multiple of 32 bytes) and stripped. Invalid hex yields an empty Words.
func SliceCalldata(calldata string) Words {
	raw := strings.TrimPrefix(strings.TrimSpace(calldata), "0x")
	if len(raw)%2 != 0 {
		return Words{}
	}
	data, err := hex.DecodeString(raw)
	if err != nil {
		return Words{}
	}
	if len(data)%32 == 4 {
		data = data[4:]
	}
	return Words{data: data}
}

// Count returns the number of complete 32-byte words available.
func (w Words) Count() int {
	return len(w.data) / 32
}

func (w Words) word(i int) ([]byte, bool) {
	if i < 0 || (i+1)*32 > len(w.data) {
		return nil, false
	}
	return w.data[i*32 : (i+1)*32], true
}

// Address reads word i as a right-aligned 20-byte address, returned in
// checksummed hex form.
func (w Words) Address(i int) (string, bool) {
	word, ok := w.word(i)
	if !ok {
		return "", false
	}
	return ethcommon.BytesToAddress(word[12:]).Hex(), true
}

// Big reads word i as an unsigned big-endian integer.
func (w Words) Big(i int) (*big.Int, bool) {
	word, ok := w.word(i)
	if !ok {
		return nil, false
	}
	return new(big.Int).SetBytes(word), true
}

// Bool reads word i as a boolean: any nonzero word is true.
func (w Words) Bool(i int) (bool, bool) {
	v, ok := w.Big(i)
	if !ok {
		return false, false
	}
	return v.Sign() != 0, true
}

// String reads word i as the head slot of a dynamically-encoded string: the
// word holds a byte offset (from the start of the parameter area) to a length
// word followed by the UTF-8 payload. NUL bytes are stripped from the result.
func (w Words) String(i int) (string, bool) {
	offBig, ok := w.Big(i)
	if !ok || !offBig.IsInt64() {
		return "", false
	}
	off := offBig.Int64()
	if off < 0 || off+32 > int64(len(w.data)) {
		return "", false
	}
	lenBig := new(big.Int).SetBytes(w.data[off : off+32])
	if !lenBig.IsInt64() {
		return "", false
	}
	n := lenBig.Int64()
	if n < 0 || off+32+n > int64(len(w.data)) {
		return "", false
	}
	payload := w.data[off+32 : off+32+n]
	return strings.ReplaceAll(string(payload), "\x00", ""), true
}
