package dto

// SubmissionResult is what a form gets back after submit: either the id of
// the saved record, or field errors and/or one notification.
type SubmissionResult struct {
	ID           int64             `json:"id,omitempty"`
	Redirect     string            `json:"redirect,omitempty"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
	Notification string            `json:"notification,omitempty"`
}

func (r *SubmissionResult) OK() bool {
	return len(r.FieldErrors) == 0 && r.Notification == ""
}
