package types

// ApplicationRequest is what a lead submits from the inner circle form.
// The json names are the wire contract with the lead endpoint.
type ApplicationRequest struct {
	FullName  string `json:"fullName" validate:"trimmed_min=2"`
	Phone     string `json:"phone" validate:"trimmed_min=8"`
	Email     string `json:"email" validate:"loose_email"`
	CanAttend bool   `json:"canAttend" validate:"required"`
}

type SubmissionStatus string

const (
	SubmissionIdle    SubmissionStatus = "idle"
	SubmissionSending SubmissionStatus = "sending"
	SubmissionSent    SubmissionStatus = "sent"
	SubmissionError   SubmissionStatus = "error"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

// ApplyFormInput is the decoded body of a POST to the apply form.
type ApplyFormInput struct {
	FullName  string `form:"full_name"`
	Phone     string `form:"phone"`
	Email     string `form:"email"`
	CanAttend bool   `form:"can_attend"`
	Action    string `form:"action"`
}
