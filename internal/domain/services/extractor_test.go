package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamintel/pkg/logger"
)

func newTestExtractor(t *testing.T) *IntelExtractor {
	t.Helper()
	return NewIntelExtractor(logger.NewDefault())
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestExtractor(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		record := e.Extract(text)
		require.NotNil(t, record)
		assert.False(t, record.HasIntelligence())
	}
}

func TestExtractPhoneNumbers(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bare ten digit mobile",
			text: "Call me at 9876543210 urgently",
			want: []string{"9876543210"},
		},
		{
			name: "country code prefix normalized away",
			text: "call +91-9876543210 for details",
			want: []string{"9876543210"},
		},
		{
			name: "twelve digit form",
			text: "number is 919876543210 ok",
			want: []string{"9876543210"},
		},
		{
			name: "hyphen separated digits",
			text: "my number 9-8-7-6-5-4-3-2-1-0 call fast",
			want: []string{"9876543210"},
		},
		{
			name: "spelled out digits folded",
			text: "call nine eight seven six five four three two one zero now",
			want: []string{"9876543210"},
		},
		{
			name: "same number twice reported once",
			text: "9876543210 yes 9876543210",
			want: []string{"9876543210"},
		},
		{
			name: "landline shaped number rejected",
			text: "office 0112345678",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := e.Extract(tt.text)
			assert.ElementsMatch(t, tt.want, record.PhoneNumbers)
		})
	}
}

func TestExtractBankAccounts(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain long digit run",
			text: "Transfer to account number 12345678901234 today",
			want: []string{"12345678901234"},
		},
		{
			name: "grouped with hyphens",
			text: "A/C: 1234-5678-9012",
			want: []string{"123456789012"},
		},
		{
			name: "all same digits rejected",
			text: "account 111111111111",
			want: nil,
		},
		{
			name: "too short rejected",
			text: "code 12345678",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := e.Extract(tt.text)
			assert.ElementsMatch(t, tt.want, record.BankAccounts)
		})
	}
}

// A ten-digit mobile number must never double as a bank account, no matter
// how it is labeled in the message.
func TestPhoneNeverBecomesBankAccount(t *testing.T) {
	e := newTestExtractor(t)

	record := e.Extract("Call 9876543210, then deposit to account 9876543210")

	assert.Equal(t, []string{"9876543210"}, record.PhoneNumbers)
	assert.Empty(t, record.BankAccounts)
}

func TestExtractUPIAndEmail(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name       string
		text       string
		wantUPI    []string
		wantEmails []string
	}{
		{
			name:    "known provider handle",
			text:    "Pay to scammer@ybl right away",
			wantUPI: []string{"scammer@ybl"},
		},
		{
			name:       "upi and email in one message",
			text:       "Pay scammer@ybl or mail fraud@gmail.com",
			wantUPI:    []string{"scammer@ybl"},
			wantEmails: []string{"fraud@gmail.com"},
		},
		{
			name:       "email domain never becomes a upi handle",
			text:       "write to support@gmail.com",
			wantEmails: []string{"support@gmail.com"},
		},
		{
			name:    "provider domain address stays a payment handle",
			text:    "contact me@paytm.com for refund",
			wantUPI: []string{"me@paytm"},
		},
		{
			name:    "uppercase handle normalized",
			text:    "send to SCAMMER@PAYTM now",
			wantUPI: []string{"scammer@paytm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := e.Extract(tt.text)
			assert.ElementsMatch(t, tt.wantUPI, record.UpiIDs)
			assert.ElementsMatch(t, tt.wantEmails, record.Emails)
		})
	}
}

func TestExtractPhishingLinks(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "protocol url kept",
			text: "Click http://secure-kyc-update.com/verify now",
			want: []string{"http://secure-kyc-update.com/verify"},
		},
		{
			name: "trailing punctuation trimmed",
			text: "Visit https://bit.ly/claim123.",
			want: []string{"https://bit.ly/claim123"},
		},
		{
			name: "bare domain with path kept",
			text: "go to bit.ly/prize123 fast",
			want: []string{"bit.ly/prize123"},
		},
		{
			name: "bare domain with phishing keyword kept",
			text: "open kyc-verify.in today",
			want: []string{"kyc-verify.in"},
		},
		{
			name: "plain bare domain without path dropped",
			text: "see example.org for info",
			want: nil,
		},
		{
			name: "file name is not a link",
			text: "open the photo.jpg attachment",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := e.Extract(tt.text)
			assert.ElementsMatch(t, tt.want, record.PhishingLinks)
		})
	}
}

// The domain half of an address must never surface as a link.
func TestUPIHandleProducesNoLink(t *testing.T) {
	e := newTestExtractor(t)

	record := e.Extract("send to rahul@paytm and confirm at fraud@gmail.com")

	assert.Equal(t, []string{"rahul@paytm"}, record.UpiIDs)
	assert.Equal(t, []string{"fraud@gmail.com"}, record.Emails)
	assert.Empty(t, record.PhishingLinks)
}

func TestExtractIFSCCodes(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "valid code",
			text: "IFSC SBIN0001234 branch Delhi",
			want: []string{"SBIN0001234"},
		},
		{
			name: "lowercase input uppercased",
			text: "ifsc is hdfc0004321",
			want: []string{"HDFC0004321"},
		},
		{
			name: "missing mandatory zero rejected",
			text: "code ABCD1234567",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := e.Extract(tt.text)
			assert.ElementsMatch(t, tt.want, record.IfscCodes)
		})
	}
}

func TestExtractWhatsappNumbers(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "labeled whatsapp number",
			text: "WhatsApp: +91 98765 43210",
			want: []string{"9876543210"},
		},
		{
			name: "wa.me link",
			text: "message me wa.me/919876543210",
			want: []string{"9876543210"},
		},
		{
			name: "contact on whatsapp",
			text: "contact me on whatsapp 9123456789",
			want: []string{"9123456789"},
		},
		{
			name: "unlabeled number is not whatsapp",
			text: "call 9876543210",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := e.Extract(tt.text)
			assert.ElementsMatch(t, tt.want, record.WhatsappNumbers)
		})
	}
}

// wa.me links are contact routes, not phishing infrastructure.
func TestWaMeLinkIsNotPhishing(t *testing.T) {
	e := newTestExtractor(t)

	record := e.Extract("ping me wa.me/919876543210 ok")

	assert.Contains(t, record.WhatsappNumbers, "9876543210")
	assert.Empty(t, record.PhishingLinks)
}

func TestExtractBeneficiaryNames(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "account holder label",
			text: "Account holder: Rahul Kumar.",
			want: []string{"Rahul Kumar"},
		},
		{
			name: "name will show as",
			text: "the name will show as 'Vijay Sharma' - ignore it",
			want: []string{"Vijay Sharma"},
		},
		{
			name: "my name is",
			text: "my name is Suresh, trust me",
			want: []string{"Suresh"},
		},
		{
			name: "hindi introduction",
			text: "mera naam Ramesh hai",
			want: []string{"Ramesh"},
		},
		{
			name: "common word rejected",
			text: "Beneficiary: bank",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := e.Extract(tt.text)
			assert.ElementsMatch(t, tt.want, record.BeneficiaryNames)
		})
	}
}

func TestExtractBankNames(t *testing.T) {
	e := newTestExtractor(t)

	record := e.Extract("Open an SBI savings book and also try hdfc")

	assert.Contains(t, record.BankNames, "SBI")
	assert.Contains(t, record.BankNames, "HDFC")
}

func TestExtractFromMessages(t *testing.T) {
	e := newTestExtractor(t)

	record := e.ExtractFromMessages([]string{
		"Pay to scammer@ybl",
		"my number is 9876543210",
	})

	assert.Equal(t, []string{"scammer@ybl"}, record.UpiIDs)
	assert.Equal(t, []string{"9876543210"}, record.PhoneNumbers)
}

func TestExtractIsDeterministic(t *testing.T) {
	e := newTestExtractor(t)
	text := "Pay scammer@ybl, A/C 123456789012 IFSC SBIN0001234, call 9876543210, click http://kyc-update.in/verify"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}

func TestReferenceData(t *testing.T) {
	e := newTestExtractor(t)

	data := e.ReferenceData()

	assert.Contains(t, data, "entity_types")
	assert.Contains(t, data, "upi_providers")
	assert.Contains(t, data, "bank_names")
	assert.Contains(t, data, "suspicious_url_keywords")
}
