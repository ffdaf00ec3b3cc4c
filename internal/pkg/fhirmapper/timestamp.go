package fhirmapper

import (
	"glucolog-service/internal/pkg/constvars"
	"time"
)

// ResolveEffectiveTime resolves the resource timestamp with a three-tier
// fallback: measurement date+time, then date at start of day, then the
// record's insertion time, then now. A record is never rejected for a
// malformed timestamp; the measured value matters more than timestamp
// precision in a self-reported log.
func ResolveEffectiveTime(date, timeOfDay string, createdAt time.Time) string {
	if date != "" && timeOfDay != "" {
		for _, layout := range []string{
			constvars.FormDateLayout + " " + constvars.FormTimeLayout + ":05",
			constvars.FormDateLayout + " " + constvars.FormTimeLayout,
		} {
			if parsed, err := time.Parse(layout, date+" "+timeOfDay); err == nil {
				return parsed.UTC().Format(constvars.FhirEffectiveTimestampLayout)
			}
		}
	}
	if date != "" {
		if parsed, err := time.Parse(constvars.FormDateLayout, date); err == nil {
			return parsed.UTC().Format(constvars.FhirEffectiveTimestampLayout)
		}
	}
	if !createdAt.IsZero() {
		return createdAt.UTC().Format(constvars.FhirEffectiveTimestampLayout)
	}
	return time.Now().UTC().Format(constvars.FhirEffectiveTimestampLayout)
}
