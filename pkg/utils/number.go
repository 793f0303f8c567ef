package utils

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Percentage retorna 100*part/total com uma casa decimal. Com total zero retorna "0.0".
func Percentage(part, total int64) string {
	if total <= 0 {
		return "0.0"
	}
	return FormatOneDecimal(float64(part) / float64(total) * 100)
}

// RoundWithOneDecimalPlace arredonda meios para cima (6.25 => 6.3)
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Round(f*10) / 10
}

// FormatOneDecimal formata f com exatamente uma casa decimal, arredondando meios para cima
func FormatOneDecimal(f float64) string {
	return strconv.FormatFloat(RoundWithOneDecimalPlace(f), 'f', 1, 64)
}

// FormatCount formata um contador com separador de milhar (1,234,567)
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}
