package pressroom

// Run statuses reported by the facility.
const (
	RunStatusQueued    = "queued"
	RunStatusAccepted  = "accepted"
	RunStatusRejected  = "rejected"
	RunStatusPrinting  = "printing"
	RunStatusCompleted = "completed"
)

// SubmitResponse is the facility's answer to a batch submission.
type SubmitResponse struct {
	RunRef  string `json:"run_ref"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// StatusResponse is the facility's answer to a status check.
type StatusResponse struct {
	RunRef  string `json:"run_ref"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Ok reports whether a submission was taken by the facility.
func (r *SubmitResponse) Ok() bool {
	return r.Status == RunStatusQueued || r.Status == RunStatusAccepted
}
