package middleware_test

import (
	"testing"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestExtractOrgSlug(t *testing.T) {
	base := "sanivita-crm.com"

	tests := []struct {
		name string
		host string
		want string
	}{
		{"plain org subdomain", "sanivita.sanivita-crm.com", "sanivita"},
		{"hyphenated org", "acme-pharma.sanivita-crm.com", "acme-pharma"},
		{"with port", "sanivita.sanivita-crm.com:8080", "sanivita"},
		{"uppercase host", "SANIVITA.Sanivita-CRM.com", "sanivita"},
		{"base domain only", "sanivita-crm.com", ""},
		{"www", "www.sanivita-crm.com", ""},
		{"reserved api", "api.sanivita-crm.com", ""},
		{"reserved admin", "admin.sanivita-crm.com", ""},
		{"reserved staging", "staging.sanivita-crm.com", ""},
		{"unrelated domain", "example.com", ""},
		{"suffix but not subdomain", "evilsanivita-crm.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.ExtractOrgSlug(tt.host, base))
		})
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"abc", "sanivita", "acme-pharma", "org123", "123org", "a1b"}
	for _, s := range valid {
		assert.True(t, middleware.ValidateSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"ab",                // too short
		"-abc",              // leading hyphen
		"abc-",              // trailing hyphen
		"ab--cd",            // consecutive hyphens
		"Acme",              // uppercase
		"acme_pharma",       // underscore
		"acme.pharma",       // dot
		string(make([]byte, 51)), // too long
	}
	for _, s := range invalid {
		assert.False(t, middleware.ValidateSlug(s), "expected %q to be invalid", s)
	}
}
