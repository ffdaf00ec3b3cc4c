package fhirmapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IdentifierSystem tags the identifiers this service generates.
const IdentifierSystem = "urn:glucolog:record"

// GenerateResourceID builds a best-effort unique identifier from a type
// tag, the subject id, a millisecond timestamp and a random suffix. It only
// needs to avoid collisions within one patient's record stream; it is not a
// security token.
func GenerateResourceID(typeTag, subjectID string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%s-%d-%s", typeTag, subjectID, time.Now().UnixMilli(), suffix)
}
