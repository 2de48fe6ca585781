package models

// SendFailure records a failed send for a single recipient
type SendFailure struct {
	ClientID int    `json:"client_id"`
	Email    string `json:"email"`
	Error    string `json:"error"`
}

// DispatchReport summarizes one dispatch over a recipient list
type DispatchReport struct {
	Attempted int           `json:"attempted"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Failures  []SendFailure `json:"failures,omitempty"`
}
