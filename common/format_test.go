package common_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/nounish/govscope/common"
)

func TestFormatEth(t *testing.T) {
	cases := []struct {
		wei  *big.Int
		want string
	}{
		{nil, "0 ETH"},
		{big.NewInt(0), "0 ETH"},
		{big.NewInt(12000), "12000 wei"},
		{big.NewInt(99_999_999_999_999), "99999999999999 wei"},
		{big.NewInt(100_000_000_000_000), "0.000100 ETH"}, // 1e14, first non-wei rung
		{common.EthToWei(0.5), "0.500000 ETH"},
		{common.EthToWei(1), "1.0000 ETH"},
		{common.EthToWei(15), "15.0000 ETH"},
		{common.EthToWei(1234.5), "1,234.5000 ETH"},
	}
	for _, c := range cases {
		if got := common.FormatEth(c.wei); got != c.want {
			t.Errorf("FormatEth(%v): want %q, got %q", c.wei, c.want, got)
		}
	}
}

func TestFormatTokenAmountStablecoinsAsDollars(t *testing.T) {
	if got := common.FormatTokenAmount(big.NewInt(1_000_000), 6, "USDC"); got != "$1.00" {
		t.Errorf("1 USDC: want $1.00, got %q", got)
	}
	if got := common.FormatTokenAmount(big.NewInt(2_500_000_000), 6, "USDC"); got != "$2,500.00" {
		t.Errorf("2500 USDC: want $2,500.00, got %q", got)
	}
	if got := common.FormatTokenAmount(big.NewInt(123_456_789), 6, "usdt"); got != "$123.46" {
		t.Errorf("USDT symbol should match case-insensitively, got %q", got)
	}
}

func TestFormatTokenAmountOtherTokens(t *testing.T) {
	weth := new(big.Int).Mul(big.NewInt(3), big.NewInt(1e18))
	if got := common.FormatTokenAmount(weth, 18, "WETH"); got != "3 WETH" {
		t.Errorf("3 WETH: got %q", got)
	}
	if got := common.FormatTokenAmount(big.NewInt(5000), 0, ""); got != "5,000" {
		t.Errorf("bare integer: want 5,000, got %q", got)
	}
	if got := common.FormatTokenAmount(nil, 18, "WETH"); got != "0" {
		t.Errorf("nil amount: want 0, got %q", got)
	}
	if got := common.FormatTokenAmount(big.NewInt(123), 99, "X"); got != "123" {
		t.Errorf("insane decimals should degrade to the raw integer, got %q", got)
	}
}

func TestFormatBPS(t *testing.T) {
	cases := []struct {
		bps  int64
		want string
	}{
		{250, "2.50%"},
		{25, "0.25%"},
		{10000, "100.00%"},
		{0, "0.00%"},
	}
	for _, c := range cases {
		if got := common.FormatBPS(big.NewInt(c.bps)); got != c.want {
			t.Errorf("FormatBPS(%d): want %q, got %q", c.bps, c.want, got)
		}
	}
	if got := common.FormatBPS(nil); got != "0.00%" {
		t.Errorf("FormatBPS(nil): want 0.00%%, got %q", got)
	}
}

func TestFormatBlockDuration(t *testing.T) {
	cases := []struct {
		blocks int64
		want   string
	}{
		{7200, "~1 days 0 hours"},   // exactly one day of 12s blocks
		{36000, "~5 days 0 hours"},  // a typical voting period
		{300, "~1 hours 0 minutes"}, // one hour
		{100, "~0 hours 20 minutes"},
		{0, "~0 hours 0 minutes"},
	}
	for _, c := range cases {
		if got := common.FormatBlockDuration(big.NewInt(c.blocks)); got != c.want {
			t.Errorf("FormatBlockDuration(%d): want %q, got %q", c.blocks, c.want, got)
		}
	}

	huge, _ := new(big.Int).SetString("123456789123456789123456789", 10)
	if got := common.FormatBlockDuration(huge); !strings.HasSuffix(got, " blocks") {
		t.Errorf("overflowing block count should render raw, got %q", got)
	}
}

func TestFormatSecondsAsHours(t *testing.T) {
	if got := common.FormatSecondsAsHours(big.NewInt(172800)); got != "48 hours" {
		t.Errorf("172800s: want 48 hours, got %q", got)
	}
	if got := common.FormatSecondsAsHours(big.NewInt(5400)); got != "1.5 hours" {
		t.Errorf("5400s: want 1.5 hours, got %q", got)
	}
	if got := common.FormatSecondsAsHours(nil); got != "0 hours" {
		t.Errorf("nil: want 0 hours, got %q", got)
	}
}

func TestGroupDigits(t *testing.T) {
	cases := map[string]string{
		"123":                     "123",
		"1234":                    "1,234",
		"1234567":                 "1,234,567",
		"-1234567":                "-1,234,567",
		"1234.5678":               "1,234.5678",
		"12345678901234567890123": "12,345,678,901,234,567,890,123",
		"0xdeadbeef":              "0xdeadbeef", // non-numeric input passes through
		"":                        "",
	}
	for in, want := range cases {
		if got := common.GroupDigits(in); got != want {
			t.Errorf("GroupDigits(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestEthToWei(t *testing.T) {
	if got := common.EthToWei(1); got.Cmp(big.NewInt(1e18)) != 0 {
		t.Errorf("1 ETH: want 1e18 wei, got %s", got)
	}
	if got := common.EthToWei(0.5); got.Cmp(big.NewInt(5e17)) != 0 {
		t.Errorf("0.5 ETH: want 5e17 wei, got %s", got)
	}
}
