package carbon

import (
	"fmt"
	"math"
)

// CO2PerKm returns kg CO2eq per kilometer for a footprint in kg over a trip
// length in meters. Missing or non-positive inputs yield 0.
func CO2PerKm(footprintKg, lengthM float64) float64 {
	if footprintKg == 0 || lengthM <= 0 || math.IsNaN(footprintKg) || math.IsNaN(lengthM) {
		return 0
	}
	return footprintKg / (lengthM / 1000)
}

// FormatCarbonValue renders kg CO2eq for display: grams below 1 kg, one
// decimal below 10 kg, whole kilograms above. unit is appended as is,
// e.g. "/km".
func FormatCarbonValue(kg float64, unit string) string {
	if kg < 1 {
		grams := kg * 1000
		if grams < 1 {
			return "< 1 g CO₂eq" + unit
		}
		return fmt.Sprintf("%.0fg CO₂eq%s", math.Round(grams), unit)
	}
	if kg < 10 {
		return fmt.Sprintf("%.1fkg CO₂eq%s", math.Round(kg*10)/10, unit)
	}
	return fmt.Sprintf("%.0fkg CO₂eq%s", math.Round(kg), unit)
}
