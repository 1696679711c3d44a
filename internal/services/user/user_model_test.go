package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curaious/tasker/internal/validate"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr []string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Email: "jo@example.com", Password: "secret1", Name: "Jo"},
		},
		{
			name:    "everything missing",
			req:     RegisterRequest{},
			wantErr: []string{"email", "password", "name"},
		},
		{
			name:    "bad email",
			req:     RegisterRequest{Email: "not-an-email", Password: "secret1", Name: "Jo"},
			wantErr: []string{"email"},
		},
		{
			name:    "short password",
			req:     RegisterRequest{Email: "jo@example.com", Password: "12345", Name: "Jo"},
			wantErr: []string{"password"},
		},
		{
			// bcrypt errors beyond 72 bytes; that must surface as a field
			// error, not a hashing failure.
			name:    "overlong password",
			req:     RegisterRequest{Email: "jo@example.com", Password: strings.Repeat("x", 73), Name: "Jo"},
			wantErr: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validate.Errors
			require.ErrorAs(t, err, &errs)

			fields := make([]string, len(errs))
			for i, fe := range errs {
				fields[i] = fe.Field
			}
			assert.ElementsMatch(t, tt.wantErr, fields)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "jo@example.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{}).Validate())
	assert.Error(t, (&LoginRequest{Email: "nope", Password: "x"}).Validate())
}
