// internal/validation/password.go
package validation

import "unicode"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// PasswordReport records which password rules failed. Each flag maps to
// exactly one user-facing reason so the API can report every unmet rule,
// not just the first.
type PasswordReport struct {
	TooShort    bool
	NoUppercase bool
	NoLowercase bool
	NoDigit     bool
	NoSpecial   bool
}

// CheckPassword evaluates every rule and returns the full report.
func CheckPassword(password string) PasswordReport {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return PasswordReport{
		TooShort:    len([]rune(password)) < MinPasswordLength,
		NoUppercase: !hasUpper,
		NoLowercase: !hasLower,
		NoDigit:     !hasDigit,
		NoSpecial:   !hasSpecial,
	}
}

// OK reports whether every rule passed.
func (r PasswordReport) OK() bool {
	return !r.TooShort && !r.NoUppercase && !r.NoLowercase && !r.NoDigit && !r.NoSpecial
}

// Reasons returns one message per failed rule, in a stable order.
func (r PasswordReport) Reasons() []string {
	var reasons []string
	if r.TooShort {
		reasons = append(reasons, "Password must be at least 8 characters")
	}
	if r.NoUppercase {
		reasons = append(reasons, "Password must contain at least one uppercase letter")
	}
	if r.NoLowercase {
		reasons = append(reasons, "Password must contain at least one lowercase letter")
	}
	if r.NoDigit {
		reasons = append(reasons, "Password must contain at least one number")
	}
	if r.NoSpecial {
		reasons = append(reasons, "Password must contain at least one special character")
	}
	return reasons
}

// Strength returns a coarse label for UI display. The ladder mirrors the
// rule order: length first, then character classes.
func (r PasswordReport) Strength() string {
	switch {
	case r.TooShort:
		return "Very Weak"
	case r.NoUppercase || r.NoLowercase:
		return "Weak"
	case r.NoDigit:
		return "Fair"
	case r.NoSpecial:
		return "Good"
	default:
		return "Strong"
	}
}
