package utils

import (
	"fmt"
	"math"
)

// RoundMoney rounds to cents.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders "AED 150.00".
func FormatAmount(currency string, v float64) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", RoundMoney(v))
	}
	return fmt.Sprintf("%s %.2f", currency, RoundMoney(v))
}
