package format

import "github.com/shopspring/decimal"

// Product prices are stored as integer VND and shown to clients in USD.
var vndPerUSD = decimal.NewFromInt(24000)

// USD converts a stored VND amount to the display price, rounded to 2
// decimals. Conversion happens at every read boundary, never at write time.
func USD(vnd int64) float64 {
	return decimal.NewFromInt(vnd).DivRound(vndPerUSD, 2).InexactFloat64()
}
