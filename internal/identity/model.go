package identity

import "time"

// User represents a registered account keyed by email.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials carries a signin request.
type Credentials struct {
	Email    string
	Password string
}

// Outcome distinguishes how a signin resolved.
type Outcome int

const (
	// OutcomeAuthenticated means the email was known and the password matched.
	OutcomeAuthenticated Outcome = iota
	// OutcomeRegistered means the email was unseen and a new account was created.
	OutcomeRegistered
)
