package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(" \t\n"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	for _, email := range []string{"ana@example.com", "joao.silva+ponto@empresa.com.br"} {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range []string{"", "ana", "ana@", "@example.com", "ana@example"} {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	tests := map[string]bool{
		"0190b5d4-1c1e-7a3b-8a7e-4c2f0d9e1a11": true,
		"0190B5D4-1C1E-7A3B-8A7E-4C2F0D9E1A11": true,
		"123e4567-e89b-12d3-a456-426614174000": false, // v1
		"0190b5d41c1e7a3b8a7e4c2f0d9e1a11":     false,
		"user-123":                             false,
		"":                                     false,
	}
	for input, want := range tests {
		assert.Equal(t, want, IsValidUUID(input), input)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-02-28")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), date)

	for _, input := range []string{"2026-02-29", "2026-13-01", "28/02/2026", ""} {
		_, ok := IsValidDate(input)
		assert.False(t, ok, input)
	}
}

func TestCPF(t *testing.T) {
	tests := []struct {
		input      string
		normalized string
		valid      bool
	}{
		{"123.456.789-09", "12345678909", true},
		{" 12345678909 ", "12345678909", true},
		{"123.456.789", "123456789", false},
		{"1234567890a", "1234567890a", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeCPF(tt.input)
			assert.Equal(t, tt.normalized, got)
			assert.Equal(t, tt.valid, IsValidCPF(got))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123456789"))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "cpf", Message: "cpf must have 11 digits"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "cpf: cpf must have 11 digits; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"cpf":      "cpf must have 11 digits",
		"password": "password is required",
	}, errs.ToMap())
}
