// internal/domain/models/contact.go
package models

// ContactMessagesTable is the table contact form submissions are written to.
const ContactMessagesTable = "contact_messages"

// ContactSubject is the topic picked on the contact form.
type ContactSubject string

const (
	ContactSubjectGeneral     ContactSubject = "general"
	ContactSubjectVolunteer   ContactSubject = "volunteer"
	ContactSubjectSponsorship ContactSubject = "sponsorship"
	ContactSubjectPartnership ContactSubject = "partnership"
)

// ContactSubjectOption pairs a subject value with its form label.
type ContactSubjectOption struct {
	Value ContactSubject
	Label string
}

// ContactSubjectOptions lists the subjects in form order.
var ContactSubjectOptions = []ContactSubjectOption{
	{Value: ContactSubjectGeneral, Label: "General Inquiry"},
	{Value: ContactSubjectVolunteer, Label: "Volunteering"},
	{Value: ContactSubjectSponsorship, Label: "Sponsorship"},
	{Value: ContactSubjectPartnership, Label: "Partnership"},
}

// AllContactSubjectValues returns the subject values as strings.
func AllContactSubjectValues() []string {
	out := make([]string, len(ContactSubjectOptions))
	for i, o := range ContactSubjectOptions {
		out[i] = string(o.Value)
	}
	return out
}

// IsValidContactSubject checks if s is one of the known subjects.
func IsValidContactSubject(s string) bool {
	for _, o := range ContactSubjectOptions {
		if string(o.Value) == s {
			return true
		}
	}
	return false
}

// ContactMessage is a write-only contact form submission.
type ContactMessage struct {
	Name    string         `json:"name" bson:"name"`
	Email   string         `json:"email" bson:"email"`
	Subject ContactSubject `json:"subject" bson:"subject"`
	Message string         `json:"message" bson:"message"`
}
