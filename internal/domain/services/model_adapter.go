package services

import (
	"strings"

	"scamintel/internal/domain/models"
	"scamintel/pkg/logger"
)

// ModelAdapter ingests the semi-structured candidate map produced by an
// external free-form extraction process. Trust is asymmetric: bank accounts,
// UPI handles, and IFSC codes are structurally checkable so they pass the
// same validators as the pattern scan; the remaining types only get a
// non-empty check, because the upstream producer understands conversational
// obfuscation the patterns cannot and over-constraining it would destroy
// that advantage.
type ModelAdapter struct {
	normalizer *Normalizer
	validator  *Validator
	logger     *logger.Logger
}

// NewModelAdapter creates a model-candidate adapter.
func NewModelAdapter(log *logger.Logger) *ModelAdapter {
	n := NewNormalizer()
	return &ModelAdapter{
		normalizer: n,
		validator:  NewValidator(n),
		logger:     log.WithComponent("model-adapter"),
	}
}

// Validate filters a model candidate map into a record. A nil map is a
// normal zero-contribution input, never an error; individual rejects are
// silent drops.
func (a *ModelAdapter) Validate(candidates *models.ModelCandidates) *models.IntelligenceRecord {
	record := models.NewIntelligenceRecord()
	if candidates == nil {
		return record
	}

	for _, raw := range candidates.BankAccounts {
		clean := a.normalizer.CleanNumber(raw)
		if a.validator.IsValidBankAccount(clean) {
			record.Add(models.EntityTypeBankAccount, clean)
		}
	}

	for _, raw := range candidates.UpiIDs {
		norm := a.normalizer.NormalizeUPI(raw)
		if a.validator.IsValidUPI(norm) {
			record.Add(models.EntityTypeUpiID, norm)
		}
	}

	for _, raw := range candidates.IfscCodes {
		norm := a.normalizer.NormalizeIFSC(raw)
		if a.validator.IsValidIFSC(norm) {
			record.Add(models.EntityTypeIfscCode, norm)
		}
	}

	// Light validation from here down: non-empty, plus the cheapest shape
	// checks that cannot reject a legitimately obfuscated find.
	for _, raw := range candidates.PhoneNumbers {
		if norm := a.normalizer.NormalizePhone(raw); norm != "" {
			record.Add(models.EntityTypePhoneNumber, norm)
		}
	}

	for _, raw := range candidates.WhatsappNumbers {
		if norm := a.normalizer.NormalizePhone(raw); norm != "" {
			record.Add(models.EntityTypeWhatsappNumber, norm)
		}
	}

	for _, raw := range candidates.PhishingLinks {
		if norm := a.normalizer.NormalizeURL(raw); norm != "" {
			record.Add(models.EntityTypePhishingLink, norm)
		}
	}

	for _, raw := range candidates.Emails {
		norm := a.normalizer.NormalizeEmail(raw)
		if strings.Contains(norm, "@") && strings.Contains(norm, ".") {
			record.Add(models.EntityTypeEmail, norm)
		}
	}

	for _, raw := range candidates.BeneficiaryNames {
		if name := strings.TrimSpace(raw); name != "" {
			record.Add(models.EntityTypeBeneficiaryName, a.normalizer.NormalizeName(name))
		}
	}

	for _, raw := range candidates.BankNames {
		if bank := strings.TrimSpace(raw); bank != "" {
			record.Add(models.EntityTypeBankName, bank)
		}
	}

	for _, item := range candidates.OtherCriticalInfo {
		label := strings.TrimSpace(item.Label)
		value := strings.TrimSpace(item.Value)
		if label != "" || value != "" {
			record.AddOther(label, value)
		}
	}

	a.logger.Debug().
		Int("bank_accounts", len(record.BankAccounts)).
		Int("upi_ids", len(record.UpiIDs)).
		Int("ifsc_codes", len(record.IfscCodes)).
		Int("other_items", len(record.OtherCriticalInfo)).
		Msg("Model candidates validated")

	return record
}

// MergeHybrid reconciles the pattern-scan record, an optional model
// candidate map, and an optional prior record into one canonical record.
// Union is the only operation, so the result is monotonic over every input.
func (a *ModelAdapter) MergeHybrid(
	patternRecord *models.IntelligenceRecord,
	candidates *models.ModelCandidates,
	prior *models.IntelligenceRecord,
) *models.IntelligenceRecord {
	merged := models.NewIntelligenceRecord()
	if prior != nil {
		merged = merged.Merge(prior)
	}
	if patternRecord != nil {
		merged = merged.Merge(patternRecord)
	}
	if candidates != nil {
		merged = merged.Merge(a.Validate(candidates))
	}
	return merged
}
