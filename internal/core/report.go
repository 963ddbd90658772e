package core

const (
	IdentifierBIC  = "bic"
	IdentifierIBAN = "iban"
)

// ValidationCheck is the outcome of validating one raw identifier.
type ValidationCheck struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type BatchReport struct {
	Type         string            `json:"type"`
	Total        int               `json:"total"`
	ValidCount   int               `json:"valid"`
	InvalidCount int               `json:"invalid"`
	Results      []ValidationCheck `json:"results"`
}

// Add records a check and keeps the counters in step.
func (r *BatchReport) Add(c ValidationCheck) {
	r.Results = append(r.Results, c)
	r.Total++
	if c.Valid {
		r.ValidCount++
	} else {
		r.InvalidCount++
	}
}
