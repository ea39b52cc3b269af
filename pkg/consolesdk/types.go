package consolesdk

// ErrorResponse represents a standard console error response.
// This is used internally for parsing HTTP error responses.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// SessionResponse is returned from POST /v1/session on successful login.
type SessionResponse struct {
	// AccessToken is the JWT used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

// WhoAmIResponse describes the authenticated admin.
type WhoAmIResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	MFAEnabled bool   `json:"mfa_enabled"`
}

// HealthResponse is returned from the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each critical dependency. Only the
// readiness probe fills this in.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// MFAEnrollResponse carries the provisioning details for a new TOTP secret.
// The secret is only returned once, at enrollment.
type MFAEnrollResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"` // otpauth:// provisioning URI
}

// User mirrors the console's user projection. Field names match the JSON the
// service emits, which in turn matches the upstream dataset shape.
type User struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Username     string `json:"username"`

	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	DateJoined string `json:"dateJoined"`
	Status     string `json:"status"`
	Avatar     string `json:"avatar"`

	FullName string `json:"fullName"`
	UserTier int    `json:"userTier"`

	AccountBalance string `json:"accountBalance"`
	AccountBank    string `json:"accountBank"`
	AccountNumber  string `json:"accountNumber"`

	PersonalInfo           PersonalInfo           `json:"personalInfo"`
	EducationAndEmployment EducationAndEmployment `json:"educationAndEmployment"`
	Socials                Socials                `json:"socials"`
	Guarantors             []Guarantor            `json:"guarantors"`
}

// PersonalInfo is the personal-details group of a user record.
type PersonalInfo struct {
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	EmailAddress    string `json:"emailAddress"`
	BVN             string `json:"bvn"`
	Gender          string `json:"gender"`
	MaritalStatus   string `json:"maritalStatus"`
	Children        string `json:"children"`
	TypeOfResidence string `json:"typeOfResidence"`
}

// EducationAndEmployment is the education/employment group of a user record.
type EducationAndEmployment struct {
	LevelOfEducation     string `json:"levelOfEducation"`
	EmploymentStatus     string `json:"employmentStatus"`
	SectorOfEmployment   string `json:"sectorOfEmployment"`
	DurationOfEmployment string `json:"durationOfEmployment"`
	OfficeEmail          string `json:"officeEmail"`
	MonthlyIncome        string `json:"monthlyIncome"`
	LoanRepayment        string `json:"loanRepayment"`
}

// Socials holds the social media handles of a user.
type Socials struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// Guarantor is one guarantor entry on a user record.
type Guarantor struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailAddress string `json:"emailAddress"`
	Relationship string `json:"relationship"`
}

// PageInfo describes the pagination metadata on a user listing.
type PageInfo struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// UsersPage is one page of the user listing.
type UsersPage struct {
	Users      []User   `json:"users"`
	Pagination PageInfo `json:"pagination"`
}

// UserStats are the dashboard stat-card numbers.
type UserStats struct {
	TotalUsers       int `json:"totalUsers"`
	ActiveUsers      int `json:"activeUsers"`
	UsersWithLoans   int `json:"usersWithLoans"`
	UsersWithSavings int `json:"usersWithSavings"`
}

// ListUsersOptions holds the query parameters for listing users. Zero-value
// filter fields are omitted; Page and PageSize default server-side to 1/10.
type ListUsersOptions struct {
	Organization string
	Username     string
	Email        string
	PhoneNumber  string
	Date         string // YYYY-MM-DD
	Status       string

	Page     int
	PageSize int
}
