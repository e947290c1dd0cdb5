// Package format renders amounts for documents handed to external renderers.
// The estimation core never rounds; only these helpers do.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Euro returns an amount in French notation with a euro sign (e.g., "-1 234,56 €").
func Euro(amount float64) string {
	return Number(amount, 2) + " €"
}

// Ariary returns an amount in whole Ariary (e.g., "4 600 000 Ar").
func Ariary(amount float64) string {
	return Number(amount, 0) + " Ar"
}

// Percent returns a percentage with two decimals (e.g., "34,78 %").
func Percent(value float64) string {
	return Number(value, 2) + " %"
}

// Surface returns a surface in square meters (e.g., "1 250,00 m²").
func Surface(value float64) string {
	return Number(value, 2) + " m²"
}

// Number returns value with space thousands separators and a decimal comma.
func Number(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	formatted := fmt.Sprintf("%.*f", decimals, math.Abs(value))
	sign := ""
	if value < 0 && strings.Trim(formatted, "0.") != "" {
		sign = "-"
	}

	parts := strings.SplitN(formatted, ".", 2)
	intPart := groupThousands(parts[0])
	if len(parts) == 2 {
		return sign + intPart + "," + parts[1]
	}
	return sign + intPart
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(' ')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
