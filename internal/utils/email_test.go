package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantValid  bool
		wantNormal string
	}{
		{"simple", "rakib@example.com", true, "rakib@example.com"},
		{"uppercase normalized", "Rakib@Example.COM", true, "rakib@example.com"},
		{"surrounding spaces", "  rakib@example.com  ", true, "rakib@example.com"},
		{"subdomain", "a@mail.example.co.uk", true, "a@mail.example.co.uk"},
		{"missing at", "rakib.example.com", false, ""},
		{"missing tld", "rakib@example", false, ""},
		{"embedded space", "ra kib@example.com", false, ""},
		{"empty", "", false, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, normalized := ValidateEmail(tc.input)
			assert.Equal(t, tc.wantValid, valid)
			if tc.wantValid {
				assert.Equal(t, tc.wantNormal, normalized)
			}
		})
	}
}
