package waitlist

import (
	"testing"

	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateSignup(t *testing.T) {
	tests := []struct {
		name     string
		req      *CreateSignupRequest
		wantCode string
	}{
		{name: "valid email", req: &CreateSignupRequest{Email: "a@b.com"}, wantCode: ""},
		{name: "valid email with padding", req: &CreateSignupRequest{Email: " Foo@Bar.COM "}, wantCode: ""},
		{name: "valid with subdomain", req: &CreateSignupRequest{Email: "user@mail.example.co"}, wantCode: ""},
		{name: "empty email", req: &CreateSignupRequest{Email: ""}, wantCode: apperrors.CodeMissingEmail},
		{name: "whitespace email", req: &CreateSignupRequest{Email: "   "}, wantCode: apperrors.CodeMissingEmail},
		{name: "no at sign", req: &CreateSignupRequest{Email: "not-an-email"}, wantCode: apperrors.CodeInvalidEmailFormat},
		{name: "missing tld", req: &CreateSignupRequest{Email: "user@host"}, wantCode: apperrors.CodeInvalidEmailFormat},
		{name: "double at sign", req: &CreateSignupRequest{Email: "a@b@c.com"}, wantCode: apperrors.CodeInvalidEmailFormat},
		{name: "space in local part", req: &CreateSignupRequest{Email: "a b@c.com"}, wantCode: apperrors.CodeInvalidEmailFormat},
		{name: "name never validated", req: &CreateSignupRequest{Email: "a@b.com", Name: ""}, wantCode: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateSignup(tt.req)

			if tt.wantCode == "" {
				assert.Nil(t, err)
				return
			}

			assert.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.NotEmpty(t, err.Message)
		})
	}
}
