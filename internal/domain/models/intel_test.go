package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDeduplicates(t *testing.T) {
	r := NewIntelligenceRecord()

	assert.True(t, r.Add(EntityTypePhoneNumber, "9876543210"))
	assert.False(t, r.Add(EntityTypePhoneNumber, "9876543210"))
	assert.True(t, r.Add(EntityTypePhoneNumber, "9123456789"))

	assert.Equal(t, []string{"9876543210", "9123456789"}, r.PhoneNumbers)
}

func TestAddRejectsEmptyAndUnknown(t *testing.T) {
	r := NewIntelligenceRecord()

	assert.False(t, r.Add(EntityTypeUpiID, ""))
	assert.False(t, r.Add(EntityType("crypto_wallet"), "bc1qxyz"))
	assert.False(t, r.HasIntelligence())
}

func TestAddOtherDeduplicatesByLabelAndValue(t *testing.T) {
	r := NewIntelligenceRecord()

	assert.True(t, r.AddOther("crypto_wallet", "bc1qxyz"))
	assert.False(t, r.AddOther("crypto_wallet", "bc1qxyz"))
	assert.True(t, r.AddOther("anydesk_id", "bc1qxyz"))
	assert.False(t, r.AddOther("", ""))

	require.Len(t, r.OtherCriticalInfo, 2)
	assert.Equal(t, "crypto_wallet", r.OtherCriticalInfo[0].Label)
}

func TestMergeIsIdempotent(t *testing.T) {
	r := NewIntelligenceRecord()
	r.Add(EntityTypeBankAccount, "123456789012")
	r.Add(EntityTypeUpiID, "scammer@ybl")
	r.AddOther("telegram_handle", "@fraudster")

	merged := r.Merge(r)

	assert.Equal(t, r.BankAccounts, merged.BankAccounts)
	assert.Equal(t, r.UpiIDs, merged.UpiIDs)
	assert.Equal(t, r.OtherCriticalInfo, merged.OtherCriticalInfo)
	assert.Equal(t, r.EntityCount(), merged.EntityCount())
}

func TestMergeIsCommutativeUpToOrder(t *testing.T) {
	a := NewIntelligenceRecord()
	a.Add(EntityTypePhoneNumber, "9876543210")
	a.Add(EntityTypeIfscCode, "SBIN0001234")

	b := NewIntelligenceRecord()
	b.Add(EntityTypePhoneNumber, "9123456789")
	b.Add(EntityTypePhoneNumber, "9876543210")
	b.Add(EntityTypeBankName, "SBI")

	ab := a.Merge(b)
	ba := b.Merge(a)

	for _, et := range FixedEntityTypes() {
		assert.ElementsMatch(t, ab.Values(et), ba.Values(et), "type %s", et)
	}
}

func TestMergeIsMonotonic(t *testing.T) {
	prior := NewIntelligenceRecord()
	prior.Add(EntityTypeBankAccount, "123456789012")
	prior.Add(EntityTypeEmail, "fraud@gmail.com")

	update := NewIntelligenceRecord()
	update.Add(EntityTypeBankAccount, "987654321098")

	merged := prior.Merge(update)

	// Nothing previously confirmed ever disappears.
	assert.Contains(t, merged.BankAccounts, "123456789012")
	assert.Contains(t, merged.BankAccounts, "987654321098")
	assert.Contains(t, merged.Emails, "fraud@gmail.com")
}

func TestMergeNilIsCopy(t *testing.T) {
	r := NewIntelligenceRecord()
	r.Add(EntityTypePhishingLink, "http://secure-kyc-update.com/verify")

	merged := r.Merge(nil)

	assert.Equal(t, r.PhishingLinks, merged.PhishingLinks)

	// The copy is independent of the original.
	merged.Add(EntityTypePhishingLink, "http://other.example/claim")
	assert.Len(t, r.PhishingLinks, 1)
}

func TestCloneIsDeep(t *testing.T) {
	r := NewIntelligenceRecord()
	r.Add(EntityTypeUpiID, "scammer@ybl")
	r.AddOther("qr_code", "upi://pay?pa=scammer@ybl")

	c := r.Clone()
	c.Add(EntityTypeUpiID, "fraud@paytm")
	c.AddOther("qr_code", "other")

	assert.Len(t, r.UpiIDs, 1)
	assert.Len(t, r.OtherCriticalInfo, 1)
}

func TestCompleteness(t *testing.T) {
	highValue := []EntityType{
		EntityTypeBankAccount,
		EntityTypeUpiID,
		EntityTypePhoneNumber,
		EntityTypePhishingLink,
	}

	r := NewIntelligenceRecord()
	report := r.Completeness(highValue)
	assert.False(t, report.Complete)
	assert.ElementsMatch(t, highValue, report.Missing)

	r.Add(EntityTypeBankAccount, "123456789012")
	r.Add(EntityTypeUpiID, "scammer@ybl")
	report = r.Completeness(highValue)
	assert.False(t, report.Complete)
	assert.ElementsMatch(t, []EntityType{EntityTypePhoneNumber, EntityTypePhishingLink}, report.Missing)

	r.Add(EntityTypePhoneNumber, "9876543210")
	r.Add(EntityTypePhishingLink, "http://bit.ly/claim")
	report = r.Completeness(highValue)
	assert.True(t, report.Complete)
	assert.Empty(t, report.Missing)

	// Pure query: the record is untouched and re-running gives the same answer.
	assert.Equal(t, 4, r.EntityCount())
	assert.Equal(t, report, r.Completeness(highValue))
}

func TestCompletenessEmptyRequiredSet(t *testing.T) {
	r := NewIntelligenceRecord()
	report := r.Completeness(nil)
	assert.True(t, report.Complete)
	assert.Empty(t, report.Missing)
}

func TestParseEntityType(t *testing.T) {
	et, ok := ParseEntityType("upi_id")
	assert.True(t, ok)
	assert.Equal(t, EntityTypeUpiID, et)

	_, ok = ParseEntityType("crypto_wallet")
	assert.False(t, ok)
}
