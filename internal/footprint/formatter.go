package footprint

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with precision decimals and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision == 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)
	intPart, frac, found := strings.Cut(formatted, ".")
	if !found {
		return formatted
	}

	negative := strings.HasPrefix(intPart, "-")
	var n int64
	if _, err := fmt.Sscan(strings.TrimPrefix(intPart, "-"), &n); err != nil {
		return formatted
	}
	sign := ""
	if negative {
		sign = "-"
	}
	return sign + printer.Sprintf("%d", n) + "." + frac
}

// FormatData renders a megabyte volume, switching to GB at 1024 MB.
// Example: FormatData(1440) returns "1.41 GB"; FormatData(60) returns "60 MB".
func FormatData(mb float64) string {
	if mb >= MBPerGB {
		return fmt.Sprintf("%.2f GB", mb/MBPerGB)
	}
	return fmt.Sprintf("%.0f MB", mb)
}

// FormatKg renders a CO2 mass in kilograms with two decimals.
func FormatKg(kg float64) string {
	return FormatFloat(kg, 2) + " kg"
}
