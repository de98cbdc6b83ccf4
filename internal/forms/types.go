package forms

import "time"

// Kind names the form a submission came from.
type Kind string

const (
	KindConsultation Kind = "consultation"
	KindNewsletter   Kind = "newsletter"
	KindGiveaway     Kind = "giveaway"
)

// Kinds lists every form.
func Kinds() []Kind {
	return []Kind{KindConsultation, KindNewsletter, KindGiveaway}
}

// Section is the landing page section holding the form.
func (k Kind) Section() string {
	switch k {
	case KindNewsletter:
		return "blog"
	case KindConsultation, KindGiveaway:
		return "home"
	}
	return ""
}

// Status tracks what happened to a submission after capture.
type Status string

const (
	StatusReceived  Status = "received"
	StatusProcessed Status = "processed"
	StatusFailed    Status = "failed"
)

// Consultation is the payload of the consultation request form.
type Consultation struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Phone   string `json:"phone" validate:"omitempty,max=40"`
	Service string `json:"service" validate:"omitempty,oneof=individual couples group workshop other"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Signup is the payload of the newsletter and free book forms.
type Signup struct {
	Email string `json:"email" validate:"required,email,max=320"`
}

// Submission is a captured form post.
type Submission struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Name        string     `json:"name,omitempty"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Service     string     `json:"service,omitempty"`
	Message     string     `json:"message,omitempty"`
	RemoteAddr  string     `json:"-"`
	Status      Status     `json:"status"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// ListFilter controls which submissions are returned by List.
type ListFilter struct {
	Kind   Kind
	Status Status
	Since  time.Time
	Limit  int
}
