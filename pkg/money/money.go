// Package money formats amounts kept in minor units (cents).
// Arithmetic on int64 cents is exact, so line totals and order totals
// never accumulate floating-point drift.
package money

import "fmt"

// Format renders cents as a plain decimal string, e.g. 22997 -> "229.97".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
