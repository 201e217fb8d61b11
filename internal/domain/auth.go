package domain

import "time"

// SubjectType differentiates token holders.
type SubjectType string

const (
	SubjectTypeAdmin SubjectType = "ADMIN"
)

// Admin is the dashboard operator allowed to sign in.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
}

// Token represents issued authentication token metadata.
type Token struct {
	ID        string
	SubjectID string
	Subject   SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}
