package carbon

import "tripcore.trainlog.org/internal/models"

// DieselShares maps ISO country codes to the share of rail kilometers run
// with diesel traction. The "default" key applies to unlisted countries.
type DieselShares map[string]float64

// DefaultShareKey is the fallback entry of DieselShares.
const DefaultShareKey = "default"

// For returns the diesel share for a country, falling back to the default
// entry, then to 0.
func (s DieselShares) For(countryCode string) float64 {
	if share, ok := s[countryCode]; ok {
		return share
	}
	return s[DefaultShareKey]
}

// SplitKm returns the electric and diesel kilometers of a country distance.
// Distances already split by traction are used as is; simple ones are split
// by dieselShare.
func SplitKm(d models.CountryDistance, dieselShare float64) (electricKm, dieselKm float64) {
	if elec, nonElec, ok := d.Split(); ok {
		return elec / 1000, nonElec / 1000
	}
	totalKm := d.Total() / 1000
	dieselKm = totalKm * dieselShare
	return totalKm - dieselKm, dieselKm
}

// SplitCountries sums SplitKm over every country of a trip.
func SplitCountries(countries map[string]models.CountryDistance, shares DieselShares) (electricKm, dieselKm float64) {
	for cc, d := range countries {
		e, dsl := SplitKm(d, shares.For(cc))
		electricKm += e
		dieselKm += dsl
	}
	return electricKm, dieselKm
}
