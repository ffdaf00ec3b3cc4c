package responses

type FHIRStatus struct {
	Reachable bool   `json:"reachable"`
	CheckedAt string `json:"checked_at"`
	Message   string `json:"message,omitempty"`
}
