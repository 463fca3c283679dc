package models

import (
	"encoding/json"
	"fmt"
)

// TractionKind discriminates CountryDistance values.
type TractionKind int

const (
	// TractionUnknown carries a single length with no electrification data.
	TractionUnknown TractionKind = iota
	// TractionSplit carries electrified and non-electrified lengths.
	TractionSplit
)

// CountryDistance is the length of a trip inside one country, in meters.
// It is either Simple or SplitByTraction; use Kind to tell them apart.
type CountryDistance struct {
	kind           TractionKind
	meters         float64
	electrified    float64
	nonElectrified float64
}

// Simple returns a distance without electrification data.
func Simple(meters float64) CountryDistance {
	return CountryDistance{kind: TractionUnknown, meters: meters}
}

// SplitByTraction returns a distance split by electrification.
func SplitByTraction(electrified, nonElectrified float64) CountryDistance {
	return CountryDistance{kind: TractionSplit, electrified: electrified, nonElectrified: nonElectrified}
}

func (d CountryDistance) Kind() TractionKind { return d.kind }

// Total returns the whole length regardless of kind.
func (d CountryDistance) Total() float64 {
	if d.kind == TractionSplit {
		return d.electrified + d.nonElectrified
	}
	return d.meters
}

// Split returns the electrified and non-electrified lengths. ok is false for
// Simple distances.
func (d CountryDistance) Split() (electrified, nonElectrified float64, ok bool) {
	if d.kind != TractionSplit {
		return 0, 0, false
	}
	return d.electrified, d.nonElectrified, true
}

// MarshalJSON writes a bare number for Simple distances and
// {"elec": .., "nonelec": ..} for split ones.
func (d CountryDistance) MarshalJSON() ([]byte, error) {
	if d.kind == TractionSplit {
		return json.Marshal(struct {
			Elec    float64 `json:"elec"`
			NonElec float64 `json:"nonelec"`
		}{d.electrified, d.nonElectrified})
	}
	return json.Marshal(d.meters)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *CountryDistance) UnmarshalJSON(b []byte) error {
	var meters float64
	if err := json.Unmarshal(b, &meters); err == nil {
		*d = Simple(meters)
		return nil
	}
	var split struct {
		Elec    *float64 `json:"elec"`
		NonElec *float64 `json:"nonelec"`
	}
	if err := json.Unmarshal(b, &split); err != nil {
		return fmt.Errorf("invalid country distance: %w", err)
	}
	var e, n float64
	if split.Elec != nil {
		e = *split.Elec
	}
	if split.NonElec != nil {
		n = *split.NonElec
	}
	*d = SplitByTraction(e, n)
	return nil
}
