package domain

import "time"

// Session is one established console login. The session ID travels in the
// JWT "sid" claim; revoking the row invalidates the token immediately.
type Session struct {
	ID        string
	AdminID   string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionToken is the signed credential handed back to the client after a
// successful login or MFA completion.
type SessionToken struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
}

// MFAChallenge is a pending second factor during login. Only the hash of
// the opaque challenge token is stored.
type MFAChallenge struct {
	TokenHash string
	AdminID   string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}
