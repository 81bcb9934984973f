package services

import (
	"regexp"
	"strings"
)

var (
	nameShape   = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.'-]+$`)
	upiShape    = regexp.MustCompile(`^[\w.-]+@[a-zA-Z]+$`)
	digitsOnly  = regexp.MustCompile(`^\d+$`)
	nonDigit    = regexp.MustCompile(`\D`)
	ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// Validator holds the per-type acceptance rules. Like the catalog it is
// immutable after construction and safe for concurrent use.
type Validator struct {
	normalizer *Normalizer
}

// NewValidator creates a validator.
func NewValidator(n *Normalizer) *Validator {
	return &Validator{normalizer: n}
}

// IsValidPhone accepts an Indian mobile number in any separator style: once
// reduced to digits it must be phone-shaped, optionally with a 91 country
// code.
func (v *Validator) IsValidPhone(number string) bool {
	return v.LooksLikePhone(nonDigit.ReplaceAllString(number, ""))
}

// LooksLikePhone reports whether a bare digit string has the shape of a
// mobile number: 10 digits starting 6-9, or 11/12 digits with a 91 country
// code followed by 6-9.
func (v *Validator) LooksLikePhone(number string) bool {
	if !digitsOnly.MatchString(number) {
		return false
	}
	switch len(number) {
	case 10:
		return number[0] >= '6' && number[0] <= '9'
	case 11, 12:
		return strings.HasPrefix(number, "91") && number[2] >= '6' && number[2] <= '9'
	default:
		return false
	}
}

// IsValidBankAccount accepts 9-18 digit strings, rejecting all-same-digit
// runs and anything shaped like a phone number.
func (v *Validator) IsValidBankAccount(number string) bool {
	if !digitsOnly.MatchString(number) {
		return false
	}
	if len(number) < 9 || len(number) > 18 {
		return false
	}
	allSame := true
	for i := 1; i < len(number); i++ {
		if number[i] != number[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}
	return !v.LooksLikePhone(number)
}

// IsValidUPI accepts local@provider handles whose provider matches the
// allow-list. General domains are rejected even when address-shaped.
func (v *Validator) IsValidUPI(handle string) bool {
	if !upiShape.MatchString(handle) {
		return false
	}
	return v.IsUPIProviderDomain(handle)
}

// IsUPIProviderDomain reports whether the domain part of an address-shaped
// string is a known payment-provider short code.
func (v *Validator) IsUPIProviderDomain(handle string) bool {
	at := strings.LastIndex(handle, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(handle[at+1:])
	if dot := strings.Index(domain, "."); dot >= 0 {
		domain = domain[:dot]
	}
	for _, p := range upiProviders {
		if domain == p {
			return true
		}
	}
	return false
}

// LooksLikeEmail reports whether an address-shaped string carries a common
// email TLD. Used to keep emails out of the generic UPI scan.
func (v *Validator) LooksLikeEmail(value string) bool {
	lower := strings.ToLower(value)
	for _, tld := range emailTLDs {
		if strings.HasSuffix(lower, tld) {
			return true
		}
	}
	return false
}

// IsValidEmail accepts local@domain.tld shapes whose domain is not a UPI
// provider short code.
func (v *Validator) IsValidEmail(value string) bool {
	if !strings.Contains(value, "@") || !strings.Contains(value, ".") {
		return false
	}
	return !v.IsUPIProviderDomain(value)
}

// IsValidIFSC accepts exactly 11 characters: 4 letters, literal '0', then 6
// alphanumerics. The candidate must already be upper-cased.
func (v *Validator) IsValidIFSC(code string) bool {
	return ifscPattern.MatchString(code)
}

// IsValidName accepts 2-50 character alphabetic names (letters, spaces,
// dots, hyphens, apostrophes) that are not on the common-word blocklist.
func (v *Validator) IsValidName(name string) bool {
	if len(name) < 2 || len(name) > 50 {
		return false
	}
	if !nameShape.MatchString(name) {
		return false
	}
	return !nameBlocklist[strings.ToLower(name)]
}

// IsSuspiciousURL reports whether a link contains a phishing keyword.
func (v *Validator) IsSuspiciousURL(url string) bool {
	lower := strings.ToLower(url)
	for _, kw := range suspiciousURLKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// HasFileExtension reports whether a bare-domain candidate ends in a common
// file extension and is therefore not a link.
func (v *Validator) HasFileExtension(value string) bool {
	lower := strings.ToLower(value)
	for _, ext := range fileExtensionSuffixes {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
