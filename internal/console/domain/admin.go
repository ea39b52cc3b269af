package domain

import "time"

// Admin is a console operator account. Admins are local to the console
// database and unrelated to the platform users the console displays.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string     // argon2id encoded
	MFAEnabled   *time.Time // set when TOTP has been verified (nullable)
	MFASecret    *string    // TOTP secret, base32 encoded (nullable)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MFAEnrollment is returned when an admin starts TOTP enrollment. The
// secret is only revealed here; verification activates it.
type MFAEnrollment struct {
	Secret  string `json:"secret"`
	URL     string `json:"url"` // otpauth:// provisioning URL
	Issuer  string `json:"issuer"`
	Account string `json:"account"`
}
