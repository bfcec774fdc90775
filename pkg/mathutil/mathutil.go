package mathutil

import (
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"
)

// TenThousands is the divisor for amounts expressed in basis points.
var TenThousands = uint64(10000)

func init() {
	decimal.DivisionPrecision = 8
}

// CheckedAdd returns x + y and whether the sum fits in 64 bits.
func CheckedAdd(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	return sum, carry == 0
}

// CheckedSub returns x - y and whether the subtraction did not wrap.
func CheckedSub(x, y uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(x, y, 0)
	return diff, borrow == 0
}

// MulDiv returns floor(x * y / d), widening the multiply to 128 bits so
// that it never wraps. The boolean is false when d is zero or the
// quotient does not fit in 64 bits.
func MulDiv(x, y, d uint64) (uint64, bool) {
	if d == 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(x, y)
	if hi >= d {
		return 0, false
	}
	quo, _ := bits.Div64(hi, lo, d)
	return quo, true
}

// BpsFee returns floor(amount * bps / 10000), the cut taken on an amount
// for a fee expressed in basis points (ie. 25 = 0.25%).
func BpsFee(amount uint64, bps uint32) (uint64, bool) {
	return MulDiv(amount, uint64(bps), TenThousands)
}

// UintToDecimal converts an unsigned 64-bit amount to a decimal without
// passing through a signed integer.
func UintToDecimal(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// Ratio returns num / den as a decimal, zero when den is zero.
func Ratio(num, den uint64) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return UintToDecimal(num).Div(UintToDecimal(den))
}
