package pressroom

// SubmitRequest represents a gang-run submission to the facility.
type SubmitRequest struct {
	FacilityID  string `json:"facility_id"`
	BatchNumber string `json:"batch_number"`
	SizeName    string `json:"size_name"`
	PaperStock  string `json:"paper_stock"`
	Quantity    int    `json:"quantity"`
	Sign        string `json:"sign"`
}

// StatusRequest represents a run status check.
type StatusRequest struct {
	FacilityID string `json:"facility_id"`
	RunRef     string `json:"run_ref"`
	Sign       string `json:"sign"`
}
