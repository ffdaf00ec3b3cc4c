package responses

// Registration echoes the extraction outcome: the error map is always
// returned so the form can highlight individual fields, and ProfileID is
// set only when the record was valid and persisted.
type Registration struct {
	ProfileID string            `json:"profile_id,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	Valid     bool              `json:"valid"`
	Errors    map[string]string `json:"errors,omitempty"`
}
