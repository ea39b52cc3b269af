package domain

// UserStatus is the lifecycle status of a platform user.
type UserStatus string

const (
	UserStatusActive      UserStatus = "Active"
	UserStatusInactive    UserStatus = "Inactive"
	UserStatusPending     UserStatus = "Pending"
	UserStatusBlacklisted UserStatus = "Blacklisted"
)

// PersonalInfo is the personal-details group of a user record. Every field
// is always present post-normalization.
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

// Guarantor is one guarantor entry; records carry 0-2 in practice with no
// uniqueness constraint.
type Guarantor struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailAddress string `json:"emailAddress"`
	Relationship string `json:"relationship"`
}

// User is a read-only projection of one record from the upstream dataset.
// The console never creates or mutates users; ID is the sole lookup key.
// AccountBalance is decimal-as-string, fixed to two decimal places by the
// normalizer.
type User struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Username     string `json:"username"`

	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	DateJoined string     `json:"dateJoined"` // ISO-8601 timestamp
	Status     UserStatus `json:"status"`
	Avatar     string     `json:"avatar"`

	FullName string `json:"fullName"`
	UserTier int    `json:"userTier"` // 1..3

	AccountBalance string `json:"accountBalance"`
	AccountBank    string `json:"accountBank"`
	AccountNumber  string `json:"accountNumber"`

	PersonalInfo           PersonalInfo           `json:"personalInfo"`
	EducationAndEmployment EducationAndEmployment `json:"educationAndEmployment"`
	Socials                Socials                `json:"socials"`
	Guarantors             []Guarantor            `json:"guarantors"`
}

// UserFilters holds optional list criteria. A zero-value field means "no
// constraint on that field"; all present criteria must match (AND).
type UserFilters struct {
	Organization string
	Username     string
	Email        string
	PhoneNumber  string
	Date         string // matched against the date-only prefix of DateJoined
	Status       UserStatus
}

// IsEmpty reports whether no criteria are present.
func (f UserFilters) IsEmpty() bool {
	return f.Organization == "" &&
		f.Username == "" &&
		f.Email == "" &&
		f.PhoneNumber == "" &&
		f.Date == "" &&
		f.Status == ""
}

// UserStats are the dashboard stat-card numbers computed over the full
// (unfiltered) collection.
type UserStats struct {
	TotalUsers       int `json:"totalUsers"`
	ActiveUsers      int `json:"activeUsers"`
	UsersWithLoans   int `json:"usersWithLoans"`
	UsersWithSavings int `json:"usersWithSavings"`
}
