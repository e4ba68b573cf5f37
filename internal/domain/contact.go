package domain

import "time"

// ContactMessage is a single contact-form submission.
type ContactMessage struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}
