package common

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display formatting for decoded governance values. All functions here are
// total: out-of-range or nonsensical input degrades to a raw string rather
// than panicking, because the interpreter must always produce a result.

const secondsPerBlock = 12 // assumed mainnet block time

var (
	weiDisplayCeiling = big.NewInt(1e14) // below this, amounts render in wei
	oneEth            = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	printer = message.NewPrinter(language.English)

	// Six-decimal stablecoins render as dollar amounts.
	currencySymbols = map[string]bool{
		"USDC": true,
		"USDT": true,
	}
)

// FormatEth renders a wei amount as a human-readable ETH string.
//
// Precision ladder:
//   - zero            -> "0 ETH"
//   - < 0.0001 ETH    -> raw wei ("12000 wei")
//   - < 1 ETH         -> 6 decimal places
//   - otherwise       -> 4 decimal places
func FormatEth(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0 ETH"
	}
	abs := new(big.Int).Abs(wei)
	if abs.Cmp(weiDisplayCeiling) < 0 {
		return wei.String() + " wei"
	}
	d := decimal.NewFromBigInt(wei, -18)
	if abs.Cmp(oneEth) < 0 {
		return d.StringFixed(6) + " ETH"
	}
	return GroupDigits(d.StringFixed(4)) + " ETH"
}

// FormatTokenAmount renders a raw token amount using the token's decimals and
// symbol. Six-decimal stablecoins (USDC, USDT) render as dollar amounts with
// two decimal places; everything else renders with the symbol as a suffix.
func FormatTokenAmount(raw *big.Int, decimals int64, symbol string) string {
	if raw == nil {
		return "0"
	}
	if decimals < 0 || decimals > 77 {
		// not a sane ERC20 decimal count, show the raw integer
		return raw.String()
	}
	d := decimal.NewFromBigInt(raw, -int32(decimals))
	if decimals == 6 && currencySymbols[strings.ToUpper(symbol)] {
		return "$" + GroupDigits(d.StringFixed(2))
	}
	if symbol == "" {
		return GroupDigits(d.String())
	}
	return GroupDigits(d.String()) + " " + symbol
}

// FormatBPS renders a basis-point value as a percentage. 1 BPS = 0.01%, so
// FormatBPS(250) = "2.50%".
func FormatBPS(bps *big.Int) string {
	if bps == nil {
		return "0.00%"
	}
	return decimal.NewFromBigInt(bps, -2).StringFixed(2) + "%"
}

// FormatBlockDuration renders a block count as an approximate wall-clock
// duration assuming 12-second blocks: days and hours when the span is a day
// or more, hours and minutes otherwise.
func FormatBlockDuration(blocks *big.Int) string {
	if blocks == nil || blocks.Sign() < 0 {
		return "0 blocks"
	}
	if !blocks.IsUint64() || blocks.Uint64() > (1<<62)/secondsPerBlock {
		return GroupDigits(blocks.String()) + " blocks"
	}
	secs := blocks.Uint64() * secondsPerBlock
	if secs >= 24*3600 {
		days := secs / (24 * 3600)
		hours := (secs % (24 * 3600)) / 3600
		return fmt.Sprintf("~%d days %d hours", days, hours)
	}
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	return fmt.Sprintf("~%d hours %d minutes", hours, minutes)
}

// FormatSecondsAsHours renders a duration given in seconds as hours, used for
// timelock delays where hours are the natural review unit.
func FormatSecondsAsHours(seconds *big.Int) string {
	if seconds == nil {
		return "0 hours"
	}
	d := decimal.NewFromBigInt(seconds, 0).Div(decimal.NewFromInt(3600)).Round(2)
	return d.String() + " hours"
}

// GroupDigits inserts thousands separators into the integer part of a decimal
// number string. Non-numeric input is returned unchanged.
func GroupDigits(num string) string {
	intPart := num
	rest := ""
	if i := strings.IndexAny(num, "."); i >= 0 {
		intPart, rest = num[:i], num[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	digits := strings.TrimPrefix(intPart, "-")
	if len(digits) <= 3 {
		return num
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return num
		}
	}
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		grouped := printer.Sprintf("%d", n)
		if neg {
			grouped = "-" + grouped
		}
		return grouped + rest
	}
	// too large for int64, group by hand
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	grouped := strings.Join(parts, ",")
	if neg {
		grouped = "-" + grouped
	}
	return grouped + rest
}
