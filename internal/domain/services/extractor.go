package services

import (
	"regexp"
	"strings"

	"scamintel/internal/domain/models"
	"scamintel/pkg/logger"
)

// IntelExtractor runs the deterministic scan pipeline: pattern scan,
// normalization, validation, cross-type collision suppression. Extract is a
// pure function over its input; the extractor holds only the read-only
// catalog and is safe for concurrent use.
type IntelExtractor struct {
	catalog    *PatternCatalog
	normalizer *Normalizer
	validator  *Validator
	logger     *logger.Logger
}

// NewIntelExtractor creates an extractor with a freshly compiled catalog.
func NewIntelExtractor(log *logger.Logger) *IntelExtractor {
	n := NewNormalizer()
	return &IntelExtractor{
		catalog:    NewPatternCatalog(),
		normalizer: n,
		validator:  NewValidator(n),
		logger:     log.WithComponent("intel-extractor"),
	}
}

// Extract scans raw adversary text and returns a validated, de-duplicated
// intelligence record. Empty input yields an empty record; nothing errors.
func (e *IntelExtractor) Extract(text string) *models.IntelligenceRecord {
	record := models.NewIntelligenceRecord()
	if strings.TrimSpace(text) == "" {
		return record
	}

	// Spelled-out digit runs fold into a numeral variant of the text so the
	// numeric scans see obfuscated values too.
	sources := []string{text}
	if folded := e.foldSpelledDigits(text); folded != text {
		sources = append(sources, folded)
	}

	// Phones go first: the resulting set suppresses phone-shaped bank
	// account candidates.
	phones := e.extractPhones(sources)
	for _, p := range phones {
		record.Add(models.EntityTypePhoneNumber, p)
	}
	phoneSet := make(map[string]bool, len(phones))
	for _, p := range phones {
		phoneSet[p] = true
	}

	for _, v := range e.extractBankAccounts(sources, phoneSet) {
		record.Add(models.EntityTypeBankAccount, v)
	}
	for _, v := range e.extractUPIIDs(text) {
		record.Add(models.EntityTypeUpiID, v)
	}
	for _, v := range e.extractURLs(text) {
		record.Add(models.EntityTypePhishingLink, v)
	}
	for _, v := range e.extractEmails(text) {
		record.Add(models.EntityTypeEmail, v)
	}
	for _, v := range e.extractBeneficiaryNames(text) {
		record.Add(models.EntityTypeBeneficiaryName, v)
	}
	for _, v := range e.extractBankNames(text) {
		record.Add(models.EntityTypeBankName, v)
	}
	for _, v := range e.extractIFSCCodes(sources) {
		record.Add(models.EntityTypeIfscCode, v)
	}
	for _, v := range e.extractWhatsappNumbers(text) {
		record.Add(models.EntityTypeWhatsappNumber, v)
	}

	e.logger.Debug().
		Int("phone_numbers", len(record.PhoneNumbers)).
		Int("bank_accounts", len(record.BankAccounts)).
		Int("upi_ids", len(record.UpiIDs)).
		Int("phishing_links", len(record.PhishingLinks)).
		Int("emails", len(record.Emails)).
		Int("beneficiary_names", len(record.BeneficiaryNames)).
		Int("bank_names", len(record.BankNames)).
		Int("ifsc_codes", len(record.IfscCodes)).
		Int("whatsapp_numbers", len(record.WhatsappNumbers)).
		Msg("Pattern extraction complete")

	return record
}

// ExtractFromMessages scans a sequence of adversary-authored messages as one
// text. Callers must not include text authored by the defending side.
func (e *IntelExtractor) ExtractFromMessages(messages []string) *models.IntelligenceRecord {
	return e.Extract(strings.Join(messages, " "))
}

// foldSpelledDigits replaces runs of spelled-out digit words with numerals.
func (e *IntelExtractor) foldSpelledDigits(text string) string {
	if !e.catalog.spelledDigitRun.MatchString(text) {
		return text
	}
	return e.catalog.spelledDigitRun.ReplaceAllStringFunc(text, func(run string) string {
		if digits := e.normalizer.SpelledDigitsToNumerals(run); digits != "" {
			return digits
		}
		return run
	})
}

// matchValues applies a pattern and returns the captured group when the
// pattern has one, otherwise the full match.
func matchValues(p *regexp.Regexp, text string) []string {
	matches := p.FindAllStringSubmatch(text, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		if p.NumSubexp() > 0 && len(m) > 1 {
			values = append(values, m[1])
		} else {
			values = append(values, m[0])
		}
	}
	return values
}

func (e *IntelExtractor) extractPhones(sources []string) []string {
	seen := make(map[string]bool)
	var phones []string
	for _, src := range sources {
		for _, pattern := range e.catalog.phonePatterns {
			for _, raw := range matchValues(pattern, src) {
				if !e.validator.IsValidPhone(raw) {
					continue
				}
				norm := e.normalizer.NormalizePhone(raw)
				if norm == "" || seen[norm] {
					continue
				}
				seen[norm] = true
				phones = append(phones, norm)
			}
		}
	}
	return phones
}

func (e *IntelExtractor) extractBankAccounts(sources []string, phoneSet map[string]bool) []string {
	seen := make(map[string]bool)
	var accounts []string
	for _, src := range sources {
		for _, pattern := range e.catalog.bankAccountPatterns {
			for _, raw := range matchValues(pattern, src) {
				clean := e.normalizer.CleanNumber(raw)
				if !e.validator.IsValidBankAccount(clean) {
					continue
				}
				// Collision rule: a 10-digit candidate already recognized
				// as a phone never becomes an account.
				if len(clean) == 10 && clean[0] >= '6' && clean[0] <= '9' && phoneSet[clean] {
					continue
				}
				if seen[clean] {
					continue
				}
				seen[clean] = true
				accounts = append(accounts, clean)
			}
		}
	}
	return accounts
}

func (e *IntelExtractor) extractUPIIDs(text string) []string {
	seen := make(map[string]bool)
	var handles []string

	for _, raw := range matchValues(e.catalog.upiKnownProvider, text) {
		norm := e.normalizer.NormalizeUPI(raw)
		if !seen[norm] {
			seen[norm] = true
			handles = append(handles, norm)
		}
	}

	// Generic address-shaped matches count only when they are not emails
	// and their provider is on the allow-list.
	for _, raw := range matchValues(e.catalog.upiGeneric, text) {
		if e.validator.LooksLikeEmail(raw) {
			continue
		}
		norm := e.normalizer.NormalizeUPI(raw)
		if seen[norm] || !e.validator.IsUPIProviderDomain(norm) {
			continue
		}
		seen[norm] = true
		handles = append(handles, norm)
	}
	return handles
}

func (e *IntelExtractor) extractURLs(text string) []string {
	seen := make(map[string]bool)
	var urls []string

	// Protocol-prefixed links are kept broadly once trailing punctuation is
	// trimmed. Track their spans so the bare-domain scan skips them.
	type span struct{ start, end int }
	var covered []span
	for _, loc := range e.catalog.urlPattern.FindAllStringIndex(text, -1) {
		covered = append(covered, span{loc[0], loc[1]})
		norm := e.normalizer.NormalizeURL(text[loc[0]:loc[1]])
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		urls = append(urls, norm)
	}

	for _, loc := range e.catalog.bareDomainPattern.FindAllStringIndex(text, -1) {
		inside := false
		for _, s := range covered {
			if loc[0] >= s.start && loc[1] <= s.end {
				inside = true
				break
			}
		}
		if inside {
			continue
		}
		// Adjacency to @ marks a UPI/email fragment, not a link.
		if adjacentToAt(text, loc[0], loc[1]) {
			continue
		}
		raw := text[loc[0]:loc[1]]
		norm := e.normalizer.NormalizeURL(raw)
		if norm == "" || seen[norm] {
			continue
		}
		if e.catalog.versionShaped.MatchString(norm) || e.validator.HasFileExtension(norm) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(norm), "wa.me/") {
			continue
		}
		// Bare domains need a path segment or a phishing keyword to count.
		if !strings.Contains(norm, "/") && !e.validator.IsSuspiciousURL(norm) {
			continue
		}
		seen[norm] = true
		urls = append(urls, norm)
	}
	return urls
}

// adjacentToAt reports whether the span is immediately preceded or followed
// by an @ in the source text.
func adjacentToAt(text string, start, end int) bool {
	if start > 0 && text[start-1] == '@' {
		return true
	}
	if end < len(text) && text[end] == '@' {
		return true
	}
	return false
}

func (e *IntelExtractor) extractEmails(text string) []string {
	seen := make(map[string]bool)
	var emails []string
	for _, raw := range matchValues(e.catalog.emailPattern, text) {
		// An address on a UPI provider domain is a payment handle.
		if e.validator.IsUPIProviderDomain(raw) {
			continue
		}
		norm := e.normalizer.NormalizeEmail(raw)
		if !seen[norm] {
			seen[norm] = true
			emails = append(emails, norm)
		}
	}
	return emails
}

func (e *IntelExtractor) extractBeneficiaryNames(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, pattern := range e.catalog.beneficiaryPatterns {
		for _, raw := range matchValues(pattern, text) {
			clean := strings.Trim(strings.TrimSpace(raw), `'"`)
			if !e.validator.IsValidName(clean) {
				continue
			}
			norm := e.normalizer.NormalizeName(clean)
			if !seen[norm] {
				seen[norm] = true
				names = append(names, norm)
			}
		}
	}
	return names
}

func (e *IntelExtractor) extractBankNames(text string) []string {
	seen := make(map[string]bool)
	var banks []string
	for _, raw := range matchValues(e.catalog.bankNamePattern, text) {
		norm := e.normalizer.NormalizeBankName(raw)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		banks = append(banks, norm)
	}
	return banks
}

func (e *IntelExtractor) extractIFSCCodes(sources []string) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, src := range sources {
		for _, raw := range matchValues(e.catalog.ifscPattern, src) {
			norm := e.normalizer.NormalizeIFSC(raw)
			if !e.validator.IsValidIFSC(norm) || seen[norm] {
				continue
			}
			seen[norm] = true
			codes = append(codes, norm)
		}
	}
	return codes
}

func (e *IntelExtractor) extractWhatsappNumbers(text string) []string {
	seen := make(map[string]bool)
	var numbers []string
	for _, pattern := range e.catalog.whatsappPatterns {
		for _, raw := range matchValues(pattern, text) {
			if !e.validator.IsValidPhone(raw) {
				continue
			}
			norm := e.normalizer.NormalizePhone(raw)
			if norm == "" || seen[norm] {
				continue
			}
			seen[norm] = true
			numbers = append(numbers, norm)
		}
	}
	return numbers
}

// ReferenceData exposes the catalog's static tables for the patterns
// endpoint.
func (e *IntelExtractor) ReferenceData() map[string]any {
	return map[string]any{
		"entity_types":            models.FixedEntityTypes(),
		"upi_providers":           e.catalog.UPIProviders(),
		"bank_names":              e.catalog.BankNames(),
		"suspicious_url_keywords": e.catalog.SuspiciousURLKeywords(),
	}
}
