package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novalend/console/internal/console/domain"
)

func TestNormalizeFullRecord(t *testing.T) {
	t.Parallel()

	raw := RawRecord{
		"id":             "ls-0042",
		"organization":   "Lendsqr",
		"username":       "Adedeji",
		"email":          "adedeji@lendsqr.com",
		"phoneNumber":    "08078903721",
		"dateJoined":     "2020-05-15T10:00:00.000Z",
		"status":         "Inactive",
		"fullName":       "Adedeji Grace",
		"userTier":       float64(2),
		"accountBalance": float64(200000.5),
		"accountBank":    "Providus Bank",
		"accountNumber":  "9912345678",
		"personalInfo": map[string]any{
			"fullName":        "Adedeji Grace",
			"phoneNumber":     "08078903721",
			"emailAddress":    "adedeji@lendsqr.com",
			"bvn":             "07060780922",
			"gender":          "Female",
			"maritalStatus":   "Single",
			"children":        "2",
			"typeOfResidence": "Parent's Apartment",
		},
		"educationAndEmployment": map[string]any{
			"levelOfEducation":     "B.Sc",
			"employmentStatus":     "Employed",
			"sectorOfEmployment":   "FinTech",
			"durationOfEmployment": "2 years",
			"officeEmail":          "grace@lendsqr.com",
			"monthlyIncome":        "N200,000.00 - N400,000.00",
			"loanRepayment":        "40000",
		},
		"socials": map[string]any{
			"facebook":  "@grace",
			"twitter":   "@grace",
			"instagram": "@grace",
		},
		"guarantors": []any{
			map[string]any{
				"fullName":     "Debby Ogana",
				"phoneNumber":  "07060780922",
				"emailAddress": "debby@gmail.com",
				"relationship": "Sister",
			},
		},
	}

	users := Normalize([]RawRecord{raw})
	require.Len(t, users, 1)

	u := users[0]
	require.Equal(t, "ls-0042", u.ID)
	require.Equal(t, "Lendsqr", u.Organization)
	require.Equal(t, domain.UserStatus("Inactive"), u.Status)
	require.Equal(t, 2, u.UserTier)
	require.Equal(t, "200000.50", u.AccountBalance)
	require.Equal(t, "Adedeji Grace", u.FullName)
	require.Equal(t, "40000", u.EducationAndEmployment.LoanRepayment)
	require.Len(t, u.Guarantors, 1)
	require.Equal(t, "debby@gmail.com", u.Guarantors[0].EmailAddress)
}

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()

	users := Normalize([]RawRecord{{
		"id":       "u-1",
		"username": "blessing",
	}})
	require.Len(t, users, 1)

	u := users[0]
	require.Equal(t, domain.UserStatusActive, u.Status)
	require.Equal(t, 1, u.UserTier)
	require.Equal(t, "0.00", u.AccountBalance)
	require.Equal(t, "None", u.PersonalInfo.Children)
	require.Equal(t, "N0 - N0", u.EducationAndEmployment.MonthlyIncome)
	require.Equal(t, "0", u.EducationAndEmployment.LoanRepayment)
	require.Equal(t, "blessing@company.com", u.EducationAndEmployment.OfficeEmail)
	require.Empty(t, u.Guarantors)
}

func TestNormalizeBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"missing", nil, "0.00"},
		{"number with one decimal", float64(1000.5), "1000.50"},
		{"whole number", float64(3500), "3500.00"},
		{"numeric string", "1000.5", "1000.50"},
		{"numeric string whole", "200000", "200000.00"},
		{"non-numeric string carries through", "N/A", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeBalance(tt.in))
		})
	}
}

func TestNormalizeTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want int
	}{
		{"missing", nil, 1},
		{"in range", float64(3), 3},
		{"zero clamps up", float64(0), 1},
		{"above range clamps down", float64(7), 3},
		{"numeric string", "2", 2},
		{"garbage string", "gold", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeTier(tt.in))
		})
	}
}

func TestGuarantorEmailSynthesis(t *testing.T) {
	t.Parallel()

	users := Normalize([]RawRecord{{
		"id": "u-2",
		"guarantors": []any{
			map[string]any{"fullName": "Debby  Ogana-Smith"},
			map[string]any{"fullName": ""},
		},
	}})
	require.Len(t, users, 1)
	require.Len(t, users[0].Guarantors, 2)

	require.Equal(t, "debby.ogana.smith@example.com", users[0].Guarantors[0].EmailAddress)
	require.Equal(t, "guarantor@example.com", users[0].Guarantors[1].EmailAddress)
}

func TestPersonalInfoFallsBackToTopLevel(t *testing.T) {
	t.Parallel()

	users := Normalize([]RawRecord{{
		"id":          "u-3",
		"fullName":    "Chika Obi",
		"phoneNumber": "08011112222",
		"email":       "chika@irorun.com",
	}})
	require.Len(t, users, 1)

	pi := users[0].PersonalInfo
	require.Equal(t, "Chika Obi", pi.FullName)
	require.Equal(t, "08011112222", pi.PhoneNumber)
	require.Equal(t, "chika@irorun.com", pi.EmailAddress)
	require.Equal(t, "Chika Obi", users[0].FullName)
}

func TestNormalizeCoercesUnexpectedTypes(t *testing.T) {
	t.Parallel()

	users := Normalize([]RawRecord{{
		"id":           float64(17),
		"organization": true,
		"username":     map[string]any{"nested": "object"},
	}})
	require.Len(t, users, 1)

	require.Equal(t, "17", users[0].ID)
	require.Equal(t, "true", users[0].Organization)
	require.Equal(t, "", users[0].Username)
}
