package dto

// TemplateFailure reports one template the recurrence run could not process.
// The rest of the batch proceeds regardless.
type TemplateFailure struct {
	TemplateID string `json:"templateID"`
	Error      string `json:"error"`
}

// RecurrenceRunResponse summarizes one catch-up run over due templates.
type RecurrenceRunResponse struct {
	Created  int               `json:"created"`
	Failures []TemplateFailure `json:"failures,omitempty"`
}
