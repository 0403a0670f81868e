package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
		report   PasswordReport
	}{
		{
			name:     "valid password",
			password: "Passw0rd!",
			ok:       true,
		},
		{
			name:     "too short",
			password: "Pw0!",
			ok:       false,
			report:   PasswordReport{TooShort: true},
		},
		{
			name:     "missing uppercase",
			password: "passw0rd!",
			ok:       false,
			report:   PasswordReport{NoUppercase: true},
		},
		{
			name:     "missing lowercase",
			password: "PASSW0RD!",
			ok:       false,
			report:   PasswordReport{NoLowercase: true},
		},
		{
			name:     "missing digit",
			password: "Password!",
			ok:       false,
			report:   PasswordReport{NoDigit: true},
		},
		{
			name:     "missing special",
			password: "Passw0rd1",
			ok:       false,
			report:   PasswordReport{NoSpecial: true},
		},
		{
			name:     "empty fails everything",
			password: "",
			ok:       false,
			report: PasswordReport{
				TooShort:    true,
				NoUppercase: true,
				NoLowercase: true,
				NoDigit:     true,
				NoSpecial:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CheckPassword(tt.password)
			assert.Equal(t, tt.ok, report.OK())
			if !tt.ok {
				assert.Equal(t, tt.report, report)
			}
		})
	}
}

func TestPasswordReportReasons(t *testing.T) {
	report := CheckPassword("pass")
	reasons := report.Reasons()

	// one message per failed rule, length first
	assert.Len(t, reasons, 4)
	assert.Equal(t, "Password must be at least 8 characters", reasons[0])
	assert.Contains(t, reasons, "Password must contain at least one uppercase letter")
	assert.Contains(t, reasons, "Password must contain at least one number")
	assert.Contains(t, reasons, "Password must contain at least one special character")

	assert.Empty(t, CheckPassword("Passw0rd!").Reasons())
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		strength string
	}{
		{"pass", "Very Weak"},
		{"passwordpassword", "Weak"},
		{"Passwordpass", "Fair"},
		{"Passw0rdpass", "Good"},
		{"Passw0rd!", "Strong"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.strength, CheckPassword(tt.password).Strength(), "password %q", tt.password)
	}
}
