package dataset

import (
	"strconv"
	"strings"

	"github.com/novalend/console/internal/console/domain"
)

// Synthesized-address domains for records that arrive without emails.
const (
	officeEmailDomain    = "company.com"
	guarantorEmailDomain = "example.com"
)

// Normalize maps loosely-typed records into fully-shaped user records. It
// is pure and total: missing fields get documented defaults, unexpected
// types are coerced via string conversion, and it never fails.
func Normalize(raw []RawRecord) []domain.User {
	users := make([]domain.User, 0, len(raw))
	for _, rec := range raw {
		users = append(users, normalizeOne(rec))
	}
	return users
}

func normalizeOne(rec RawRecord) domain.User {
	username := field(rec, "username", "user")

	personal := normalizePersonal(rec)
	education := normalizeEducation(rec, username)
	socials := normalizeSocials(rec)
	guarantors := normalizeGuarantors(rec)

	// Top-level full name falls back to the personal-info one, which in
	// turn already fell back to the top level. Both end up agreeing.
	fullName := field(rec, "fullName", personal.FullName)

	return domain.User{
		ID:                     field(rec, "id", ""),
		Organization:           field(rec, "organization", ""),
		Username:               field(rec, "username", ""),
		Email:                  field(rec, "email", ""),
		PhoneNumber:            field(rec, "phoneNumber", ""),
		DateJoined:             field(rec, "dateJoined", ""),
		Status:                 domain.UserStatus(field(rec, "status", string(domain.UserStatusActive))),
		Avatar:                 field(rec, "avatar", ""),
		FullName:               fullName,
		UserTier:               normalizeTier(rec["userTier"]),
		AccountBalance:         normalizeBalance(rec["accountBalance"]),
		AccountBank:            field(rec, "accountBank", ""),
		AccountNumber:          field(rec, "accountNumber", ""),
		PersonalInfo:           personal,
		EducationAndEmployment: education,
		Socials:                socials,
		Guarantors:             guarantors,
	}
}

func normalizePersonal(rec RawRecord) domain.PersonalInfo {
	pi := group(rec, "personalInfo")
	return domain.PersonalInfo{
		FullName:        field(pi, "fullName", field(rec, "fullName", "")),
		PhoneNumber:     field(pi, "phoneNumber", field(rec, "phoneNumber", "")),
		EmailAddress:    field(pi, "emailAddress", field(rec, "email", "")),
		BVN:             field(pi, "bvn", ""),
		Gender:          field(pi, "gender", ""),
		MaritalStatus:   field(pi, "maritalStatus", ""),
		Children:        field(pi, "children", "None"),
		TypeOfResidence: field(pi, "typeOfResidence", ""),
	}
}

func normalizeEducation(rec RawRecord, username string) domain.EducationAndEmployment {
	ee := group(rec, "educationAndEmployment")
	return domain.EducationAndEmployment{
		LevelOfEducation:     field(ee, "levelOfEducation", ""),
		EmploymentStatus:     field(ee, "employmentStatus", ""),
		SectorOfEmployment:   field(ee, "sectorOfEmployment", ""),
		DurationOfEmployment: field(ee, "durationOfEmployment", ""),
		OfficeEmail:          field(ee, "officeEmail", username+"@"+officeEmailDomain),
		MonthlyIncome:        field(ee, "monthlyIncome", "N0 - N0"),
		LoanRepayment:        field(ee, "loanRepayment", "0"),
	}
}

func normalizeSocials(rec RawRecord) domain.Socials {
	so := group(rec, "socials")
	return domain.Socials{
		Facebook:  field(so, "facebook", ""),
		Twitter:   field(so, "twitter", ""),
		Instagram: field(so, "instagram", ""),
	}
}

func normalizeGuarantors(rec RawRecord) []domain.Guarantor {
	list, ok := rec["guarantors"].([]any)
	if !ok {
		return []domain.Guarantor{}
	}

	out := make([]domain.Guarantor, 0, len(list))
	for _, item := range list {
		g, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fullName := field(g, "fullName", "")
		out = append(out, domain.Guarantor{
			FullName:     fullName,
			PhoneNumber:  field(g, "phoneNumber", ""),
			EmailAddress: field(g, "emailAddress", emailFromFullName(fullName)),
			Relationship: field(g, "relationship", ""),
		})
	}
	return out
}

// normalizeBalance applies one consistent rule: any value that parses as a
// number is formatted to exactly two decimal places, whether it arrived as
// a JSON number or a numeric string. Non-numeric strings carry through
// unchanged; a missing balance is "0.00".
func normalizeBalance(v any) string {
	switch b := v.(type) {
	case nil:
		return "0.00"
	case float64:
		return strconv.FormatFloat(b, 'f', 2, 64)
	default:
		s := coerceString(b)
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
		return s
	}
}

// normalizeTier coerces the tier to an integer in 1..3, defaulting to 1
// for missing, zero, or non-numeric values.
func normalizeTier(v any) int {
	var tier int
	switch t := v.(type) {
	case float64:
		tier = int(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			tier = int(f)
		}
	}

	if tier < 1 {
		return 1
	}
	if tier > 3 {
		return 3
	}
	return tier
}

// emailFromFullName synthesizes a deterministic address: lowercase, runs
// of non-alphanumerics collapsed to a single dot, dots trimmed at the ends.
func emailFromFullName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "guarantor"
	}

	var b strings.Builder
	lastDot := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDot = false
			continue
		}
		if !lastDot {
			b.WriteByte('.')
			lastDot = true
		}
	}

	local := strings.Trim(b.String(), ".")
	if local == "" {
		local = "guarantor"
	}
	return local + "@" + guarantorEmailDomain
}

// group returns a nested object field, or nil when absent or mistyped.
// field handles nil maps, so callers can use the result directly.
func group(rec RawRecord, key string) map[string]any {
	g, _ := rec[key].(map[string]any)
	return g
}

// field returns the string form of m[key], or def when the key is absent
// or null. Present non-string values are coerced, never rejected.
func field(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	return coerceString(v)
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		// Arrays and objects have no sensible scalar form; empty keeps
		// the normalizer total without inventing data.
		return ""
	}
}
