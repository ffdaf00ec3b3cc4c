package formdata

import (
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"math"
	"strconv"
)

// NormalizedDuration is the canonical form of a hours/minutes/seconds
// triple: total minutes, rounded to 2 decimal places.
type NormalizedDuration struct {
	ValueMinutes float64 `json:"valueMinutes"`
	Unit         string  `json:"unit"`
}

// NormalizeDuration canonicalizes a duration triple to total minutes.
// Empty and non-numeric entries contribute nothing; unknown unit labels are
// skipped rather than rejected since the vocabulary is externally supplied.
// The result is nil when no entry carried a parseable value at all, which
// keeps "nothing recorded" distinct from an explicit zero-minute entry.
func NormalizeDuration(entries []models.DurationEntry) *NormalizedDuration {
	if len(entries) == 0 {
		return nil
	}

	total := 0.0
	recorded := false
	for _, entry := range entries {
		if entry.Value == "" {
			continue
		}
		value, err := strconv.ParseFloat(entry.Value, 64)
		if err != nil {
			continue
		}
		switch entry.Unit {
		case constvars.DurationUnitHours:
			total += value * 60
		case constvars.DurationUnitMinutes:
			total += value
		case constvars.DurationUnitSeconds:
			total += value / 60
		default:
			continue
		}
		recorded = true
	}

	if !recorded {
		return nil
	}

	return &NormalizedDuration{
		ValueMinutes: math.Round(total*100) / 100,
		Unit:         constvars.FhirMinutesUnit,
	}
}
