package services

import (
	"regexp"
	"strings"
)

// UPI provider short codes accepted as the domain part of a UPI handle.
// General email domains never qualify, even when shaped like an address.
var upiProviders = []string{
	"ybl", "paytm", "okicici", "oksbi", "okaxis", "okhdfcbank",
	"upi", "ibl", "axl", "apl", "freecharge", "mobikwik", "airtel",
}

// Indian bank gazetteer: abbreviations plus full names. Matching is
// case-insensitive; normalization decides abbreviation vs. title case.
var indianBankNames = []string{
	"SBI", "State Bank of India",
	"PNB", "Punjab National Bank",
	"HDFC", "HDFC Bank",
	"ICICI", "ICICI Bank",
	"Axis", "Axis Bank",
	"Kotak", "Kotak Mahindra Bank",
	"BOB", "Bank of Baroda",
	"BOI", "Bank of India",
	"Canara", "Canara Bank",
	"Union Bank", "Union Bank of India",
	"UCO", "UCO Bank",
	"IDBI", "IDBI Bank",
	"IDFC", "IDFC First Bank",
	"RBL", "RBL Bank",
	"Yes Bank",
	"IndusInd", "IndusInd Bank",
	"Federal", "Federal Bank",
	"Bandhan", "Bandhan Bank",
	"Equitas", "Ujjivan",
	"IOB", "Indian Overseas Bank",
	"PSB", "Punjab and Sind Bank",
	"Indian Bank", "Central Bank of India",
}

// Abbreviations kept uppercase during bank-name normalization.
var bankAbbreviations = map[string]bool{
	"SBI": true, "PNB": true, "BOB": true, "BOI": true, "UCO": true,
	"PSB": true, "IOB": true, "HDFC": true, "ICICI": true, "IDBI": true,
	"RBL": true, "IDFC": true,
}

// Common words that beneficiary-name triggers sometimes capture.
var nameBlocklist = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"bank": true, "account": true, "transfer": true, "send": true, "pay": true,
}

// Keywords that mark a link as likely phishing. Bare-domain candidates
// without a path need one of these to be kept.
var suspiciousURLKeywords = []string{
	"bank", "pay", "kyc", "verify", "update", "secure", "claim",
	"login", "refund", "reward", "prize", "offer",
	"bit.ly", "tinyurl", "t.co", "rb.gy", "cutt.ly",
}

// TLDs that mark an address-shaped string as an email rather than a UPI handle.
var emailTLDs = []string{".com", ".org", ".net", ".in", ".co", ".edu", ".gov"}

// File-extension suffixes that disqualify a bare-domain link candidate.
var fileExtensionSuffixes = []string{
	".jpg", ".jpeg", ".png", ".gif", ".pdf", ".doc", ".docx",
	".xls", ".xlsx", ".txt", ".zip", ".exe", ".apk", ".mp4", ".mp3",
}

// Spelled-out digit words mapped to numerals, lowercase keys.
var digitWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
}

// PatternCatalog holds every compiled scan pattern plus the gazetteers and
// allow-lists the pipeline consults. Built once at startup and never mutated,
// so it is safe to share across concurrent extractions.
type PatternCatalog struct {
	bankAccountPatterns []*regexp.Regexp
	phonePatterns       []*regexp.Regexp
	upiKnownProvider    *regexp.Regexp
	upiGeneric          *regexp.Regexp
	urlPattern          *regexp.Regexp
	bareDomainPattern   *regexp.Regexp
	emailPattern        *regexp.Regexp
	ifscPattern         *regexp.Regexp
	bankNamePattern     *regexp.Regexp
	beneficiaryPatterns []*regexp.Regexp
	whatsappPatterns    []*regexp.Regexp
	spelledDigitRun     *regexp.Regexp
	versionShaped       *regexp.Regexp
}

// NewPatternCatalog compiles the full scan catalog.
func NewPatternCatalog() *PatternCatalog {
	digitWord := `(?:zero|one|two|three|four|five|six|seven|eight|nine)`

	c := &PatternCatalog{}

	// Bank accounts: adversaries fragment digit runs to evade simple
	// detectors, so several overlapping surface forms are scanned and the
	// matches set-unioned. False positives fall out downstream.
	c.bankAccountPatterns = []*regexp.Regexp{
		// Plain 9-18 digit run
		regexp.MustCompile(`\b\d{9,18}\b`),
		// Grouped with spaces/hyphens: XXXX-XXXX-XXXX[-XXXXXX]
		regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{0,6}\b`),
		// Every digit separated: 1-2-3-4-5-6-7-8-9
		regexp.MustCompile(`\b\d(?:[-\s]\d){8,17}\b`),
		// Labeled: "A/C: 123456789", "Account # 123456789"
		regexp.MustCompile(`(?i)(?:a/c|account|acc)[\s:]*#?\s*(\d{9,18})`),
	}

	c.phonePatterns = []*regexp.Regexp{
		// +91 prefix with 10 digits
		regexp.MustCompile(`\+91[-\s]?\d{10}\b`),
		// 12 digits: country code then mobile
		regexp.MustCompile(`\b91[6-9]\d{9}\b`),
		// Bare 10 digits starting 6-9
		regexp.MustCompile(`\b[6-9]\d{9}\b`),
		// Grouped: 987-654-3210 / 987 654 3210
		regexp.MustCompile(`\b[6-9]\d{2}[-\s]?\d{3}[-\s]?\d{4}\b`),
		// Country code then grouped
		regexp.MustCompile(`\b91[-\s]?[6-9]\d{2}[-\s]?\d{3}[-\s]?\d{4}\b`),
		// Every digit separated: 9-8-7-6-5-4-3-2-1-0
		regexp.MustCompile(`\b[6-9](?:[-\s]\d){9}\b`),
	}

	c.upiKnownProvider = regexp.MustCompile(
		`(?i)\b[\w.-]+@(?:` + strings.Join(upiProviders, "|") + `)\b`,
	)
	c.upiGeneric = regexp.MustCompile(`\b[\w.-]{3,}@[a-zA-Z]{2,15}\b`)

	c.urlPattern = regexp.MustCompile(`(?i)https?://[^\s<>"'{}|\\^` + "`" + `\[\]]+`)
	c.bareDomainPattern = regexp.MustCompile(`(?i)\b(?:[a-z0-9-]+\.)+[a-z]{2,}(?:/[^\s<>"']*)?`)

	c.emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	c.ifscPattern = regexp.MustCompile(`(?i)\b[A-Z]{4}0[A-Z0-9]{6}\b`)

	escaped := make([]string, len(indianBankNames))
	for i, name := range indianBankNames {
		escaped[i] = regexp.QuoteMeta(name)
	}
	c.bankNamePattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)

	name := `([A-Za-z]+(?:\s+[A-Za-z]+){0,3})`
	shortName := `([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`
	c.beneficiaryPatterns = []*regexp.Regexp{
		// "name will show as 'Rahul Kumar'"
		regexp.MustCompile(`(?i)name\s+(?:will\s+)?(?:show|display|appear)s?\s+(?:as\s*)?[\s:]*['"]?` + name + `(?:['"]|\s*[-–]|\.|,|$)`),
		// "Account Holder: Rahul Kumar", "Beneficiary name: ..."
		regexp.MustCompile(`(?i)(?:account\s+holder|a/c\s+holder|beneficiary|payee)[\s:]+(?:name)?[\s:]*['"]?` + name + `(?:['"]|\n|\.|,|$)`),
		// "transfer to Rahul Kumar -" / "send money to Rahul Kumar ji"
		regexp.MustCompile(`(?i)(?:transfer|send|pay)\s+(?:money\s+)?to\s+([A-Za-z]+(?:\s+[A-Za-z]+){1,2})(?:\s*[-–]|\s+(?:sir|madam|ji|sahab))`),
		// Signature style: "'Rahul Kumar - KYC Support'"
		regexp.MustCompile(`(?i)['"]` + shortName + `\s*[-–]\s*(?:KYC|Support|Officer|Manager|Executive|Agent|Verification)`),
		// "or just 'Rahul'"
		regexp.MustCompile(`(?i)(?:or\s+)?just\s+['"]` + shortName + `['"]`),
		// "my name is Rahul Kumar"
		regexp.MustCompile(`(?i)\bmy\s+name\s+is\s+` + shortName + `(?:['"]|\s*[-–]|\.|,|$)`),
		// Hindi: "mera naam Rahul Kumar hai"
		regexp.MustCompile(`(?i)\bmera\s+naam\s+` + shortName + `\s+hai\b`),
	}

	c.whatsappPatterns = []*regexp.Regexp{
		// "WhatsApp: +91 98765 43210", "WhatsApp number 9876543210"
		regexp.MustCompile(`(?i)(?:whatsapp|wa|whats\s*app)[:\s]*(?:no\.?|number|num)?[:\s]*(?:\+91[-\s]*|91[-\s]+)?([6-9][-\s\d]{9,14})`),
		// "message me on WhatsApp 98765..."
		regexp.MustCompile(`(?i)(?:message|contact|call|reach)\s+(?:me\s+)?(?:on\s+)?whatsapp[:\s]*(?:\+91[-\s]*|91[-\s]+)?([6-9][-\s\d]{9,14})`),
		// "send screenshot to my WhatsApp 98765..."
		regexp.MustCompile(`(?i)(?:send|share)\s+(?:it\s+|screenshot\s+)?(?:to\s+|on\s+)?(?:my\s+)?whatsapp[:\s]*(?:\+91[-\s]*|91[-\s]+)?([6-9][-\s\d]{9,14})`),
		// wa.me/919876543210
		regexp.MustCompile(`(?i)wa\.me/(?:\+?91)?([6-9]\d{9})`),
	}

	// Run of 6+ spelled-out digit words ("nine eight seven six ...")
	c.spelledDigitRun = regexp.MustCompile(`(?i)\b` + digitWord + `(?:[\s-]+` + digitWord + `){5,}\b`)

	c.versionShaped = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)*$`)

	return c
}

// UPIProviders returns the provider allow-list.
func (c *PatternCatalog) UPIProviders() []string {
	out := make([]string, len(upiProviders))
	copy(out, upiProviders)
	return out
}

// BankNames returns the bank-name gazetteer.
func (c *PatternCatalog) BankNames() []string {
	out := make([]string, len(indianBankNames))
	copy(out, indianBankNames)
	return out
}

// SuspiciousURLKeywords returns the phishing keyword list.
func (c *PatternCatalog) SuspiciousURLKeywords() []string {
	out := make([]string, len(suspiciousURLKeywords))
	copy(out, suspiciousURLKeywords)
	return out
}
