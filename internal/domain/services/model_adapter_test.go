package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamintel/internal/domain/models"
	"scamintel/pkg/logger"
)

func newTestAdapter(t *testing.T) *ModelAdapter {
	t.Helper()
	return NewModelAdapter(logger.NewDefault())
}

func TestValidateNilCandidates(t *testing.T) {
	a := newTestAdapter(t)

	record := a.Validate(nil)

	require.NotNil(t, record)
	assert.False(t, record.HasIntelligence())
}

func TestValidateStrictTypes(t *testing.T) {
	a := newTestAdapter(t)

	record := a.Validate(&models.ModelCandidates{
		BankAccounts: []string{"1234-5678-9012", "9876543210", "111111111", "short"},
		UpiIDs:       []string{"Scammer@YBL", "someone@gmail.com", "not-a-handle"},
		IfscCodes:    []string{"sbin0001234", "ABCD1234567"},
	})

	// Structurally checkable types pass the same validators as the scan:
	// the phone-shaped account, the all-same run, the non-provider handle
	// and the malformed IFSC are all dropped.
	assert.Equal(t, []string{"123456789012"}, record.BankAccounts)
	assert.Equal(t, []string{"scammer@ybl"}, record.UpiIDs)
	assert.Equal(t, []string{"SBIN0001234"}, record.IfscCodes)
}

func TestValidateLightTypes(t *testing.T) {
	a := newTestAdapter(t)

	record := a.Validate(&models.ModelCandidates{
		PhoneNumbers:     []string{"+91 98765 43210", "12345"},
		WhatsappNumbers:  []string{"919123456789"},
		PhishingLinks:    []string{" http://kyc-update.in/verify. ", "   "},
		Emails:           []string{"Fraud@Gmail.Com", "not-an-email"},
		BeneficiaryNames: []string{"  rahul kumar ", ""},
		BankNames:        []string{"SBI", " "},
		OtherCriticalInfo: []models.OtherIntelItem{
			{Label: "crypto_wallet", Value: "bc1qxyz"},
			{Label: "", Value: ""},
		},
	})

	assert.Equal(t, []string{"9876543210"}, record.PhoneNumbers)
	assert.Equal(t, []string{"9123456789"}, record.WhatsappNumbers)
	assert.Equal(t, []string{"http://kyc-update.in/verify"}, record.PhishingLinks)
	assert.Equal(t, []string{"fraud@gmail.com"}, record.Emails)
	assert.Equal(t, []string{"Rahul Kumar"}, record.BeneficiaryNames)
	assert.Equal(t, []string{"SBI"}, record.BankNames)
	require.Len(t, record.OtherCriticalInfo, 1)
	assert.Equal(t, "crypto_wallet", record.OtherCriticalInfo[0].Label)
}

func TestMergeHybridUnionsAllInputs(t *testing.T) {
	a := newTestAdapter(t)

	pattern := models.NewIntelligenceRecord()
	pattern.Add(models.EntityTypePhoneNumber, "9876543210")
	pattern.Add(models.EntityTypeUpiID, "scammer@ybl")

	prior := models.NewIntelligenceRecord()
	prior.Add(models.EntityTypeBankAccount, "123456789012")
	prior.Add(models.EntityTypeUpiID, "scammer@ybl")

	candidates := &models.ModelCandidates{
		UpiIDs: []string{"fraud@paytm"},
		OtherCriticalInfo: []models.OtherIntelItem{
			{Label: "anydesk_id", Value: "123 456 789"},
		},
	}

	merged := a.MergeHybrid(pattern, candidates, prior)

	assert.ElementsMatch(t, []string{"scammer@ybl", "fraud@paytm"}, merged.UpiIDs)
	assert.Equal(t, []string{"123456789012"}, merged.BankAccounts)
	assert.Equal(t, []string{"9876543210"}, merged.PhoneNumbers)
	assert.Len(t, merged.OtherCriticalInfo, 1)

	// Inputs are never mutated.
	assert.Len(t, prior.UpiIDs, 1)
	assert.Len(t, pattern.UpiIDs, 1)
}

func TestMergeHybridAllNil(t *testing.T) {
	a := newTestAdapter(t)

	merged := a.MergeHybrid(nil, nil, nil)

	require.NotNil(t, merged)
	assert.False(t, merged.HasIntelligence())
}

func TestMergeHybridIsMonotonicOverTurns(t *testing.T) {
	a := newTestAdapter(t)

	turn1 := models.NewIntelligenceRecord()
	turn1.Add(models.EntityTypeBankAccount, "123456789012")

	acc := a.MergeHybrid(turn1, nil, nil)

	turn2 := models.NewIntelligenceRecord()
	turn2.Add(models.EntityTypePhoneNumber, "9876543210")

	acc = a.MergeHybrid(turn2, nil, acc)

	assert.Contains(t, acc.BankAccounts, "123456789012")
	assert.Contains(t, acc.PhoneNumbers, "9876543210")
}
