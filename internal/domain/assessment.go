package domain

import "time"

// VisaCategory is one of the visa options an applicant can express interest in.
type VisaCategory string

const (
	VisaO1     VisaCategory = "O-1"
	VisaEB1A   VisaCategory = "EB-1A"
	VisaEB2NIW VisaCategory = "EB-2 NIW"
	VisaUnsure VisaCategory = "I don't know"
)

// VisaCategories lists the selectable categories in form order.
var VisaCategories = []VisaCategory{VisaO1, VisaEB1A, VisaEB2NIW, VisaUnsure}

// Valid reports whether c is a known category.
func (c VisaCategory) Valid() bool {
	for _, known := range VisaCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Resume is an optional file attached to an assessment request.
type Resume struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     []byte
}

// AssessmentRequest is a public intake submission asking for a case assessment.
type AssessmentRequest struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Country      string
	LinkedIn     string
	VisaInterest []VisaCategory
	HelpText     string
	Resume       *Resume
	SubmittedAt  time.Time
}
