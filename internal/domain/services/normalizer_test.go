package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNumber(t *testing.T) {
	n := NewNormalizer()

	assert.Equal(t, "919876543210", n.CleanNumber("+91 98765-43210"))
	assert.Equal(t, "123456789012", n.CleanNumber("1234-5678-9012"))
	assert.Equal(t, "", n.CleanNumber("no digits here"))
}

func TestNormalizePhone(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"+919876543210", "9876543210"},
		{"919876543210", "9876543210"},
		{"91 98765 43210", "9876543210"},
		{"9-8-7-6-5-4-3-2-1-0", "9876543210"},
		{"12345", ""},
		{"987654321012345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizePhone(tt.in))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	n := NewNormalizer()

	assert.Equal(t, "https://bit.ly/claim", n.NormalizeURL(" https://bit.ly/claim. "))
	assert.Equal(t, "http://kyc-update.in/verify", n.NormalizeURL("http://kyc-update.in/verify),"))
}

func TestNormalizeName(t *testing.T) {
	n := NewNormalizer()

	assert.Equal(t, "Rahul Kumar", n.NormalizeName("'rahul KUMAR'"))
	assert.Equal(t, "Vijay", n.NormalizeName(`"vijay"`))
}

func TestNormalizeBankName(t *testing.T) {
	n := NewNormalizer()

	assert.Equal(t, "SBI", n.NormalizeBankName("sbi"))
	assert.Equal(t, "HDFC", n.NormalizeBankName("hdfc"))
	assert.Equal(t, "Axis Bank", n.NormalizeBankName("AXIS BANK"))
}

func TestSpelledDigitsToNumerals(t *testing.T) {
	n := NewNormalizer()

	assert.Equal(t, "9876543210", n.SpelledDigitsToNumerals("nine eight seven six five four three two one zero"))
	assert.Equal(t, "987", n.SpelledDigitsToNumerals("Nine-Eight-Seven"))
	assert.Equal(t, "", n.SpelledDigitsToNumerals("nine lakh rupees"))
}
