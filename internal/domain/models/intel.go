package models

// EntityType represents the type of an extracted fraud indicator
type EntityType string

const (
	EntityTypeBankAccount     EntityType = "bank_account"
	EntityTypeUpiID           EntityType = "upi_id"
	EntityTypePhoneNumber     EntityType = "phone_number"
	EntityTypePhishingLink    EntityType = "phishing_link"
	EntityTypeEmail           EntityType = "email"
	EntityTypeBeneficiaryName EntityType = "beneficiary_name"
	EntityTypeBankName        EntityType = "bank_name"
	EntityTypeIfscCode        EntityType = "ifsc_code"
	EntityTypeWhatsappNumber  EntityType = "whatsapp_number"
)

// FixedEntityTypes returns the closed set of typed intelligence fields, in
// serialization order. Anything outside this set travels as an OtherIntelItem.
func FixedEntityTypes() []EntityType {
	return []EntityType{
		EntityTypeBankAccount,
		EntityTypeUpiID,
		EntityTypePhoneNumber,
		EntityTypePhishingLink,
		EntityTypeEmail,
		EntityTypeBeneficiaryName,
		EntityTypeBankName,
		EntityTypeIfscCode,
		EntityTypeWhatsappNumber,
	}
}

// ParseEntityType maps a type name to an EntityType, reporting whether the
// name belongs to the fixed set.
func ParseEntityType(name string) (EntityType, bool) {
	t := EntityType(name)
	for _, known := range FixedEntityTypes() {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// ExtractionOrigin identifies which extraction path produced a value
type ExtractionOrigin string

const (
	OriginPattern ExtractionOrigin = "pattern"
	OriginModel   ExtractionOrigin = "model"
	OriginMerged  ExtractionOrigin = "merged"
)

// OtherIntelItem is an ad-hoc intelligence item for data that doesn't fit the
// fixed entity types (crypto wallets, remote-desktop IDs, group invite links).
type OtherIntelItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IntelligenceRecord is the canonical, de-duplicated extraction output: one
// value set per fixed entity type plus the open-ended other items. Each list
// is unique under normalized-string equality and preserves first-seen order.
type IntelligenceRecord struct {
	BankAccounts      []string         `json:"bankAccounts"`
	UpiIDs            []string         `json:"upiIds"`
	PhoneNumbers      []string         `json:"phoneNumbers"`
	PhishingLinks     []string         `json:"phishingLinks"`
	Emails            []string         `json:"emails"`
	BeneficiaryNames  []string         `json:"beneficiaryNames"`
	BankNames         []string         `json:"bankNames"`
	IfscCodes         []string         `json:"ifscCodes"`
	WhatsappNumbers   []string         `json:"whatsappNumbers"`
	OtherCriticalInfo []OtherIntelItem `json:"other_critical_info"`
}

// NewIntelligenceRecord creates an empty record with all sets initialized so
// the JSON serialization always carries every field as a list.
func NewIntelligenceRecord() *IntelligenceRecord {
	return &IntelligenceRecord{
		BankAccounts:      []string{},
		UpiIDs:            []string{},
		PhoneNumbers:      []string{},
		PhishingLinks:     []string{},
		Emails:            []string{},
		BeneficiaryNames:  []string{},
		BankNames:         []string{},
		IfscCodes:         []string{},
		WhatsappNumbers:   []string{},
		OtherCriticalInfo: []OtherIntelItem{},
	}
}

// setFor returns the value set backing an entity type.
func (r *IntelligenceRecord) setFor(t EntityType) *[]string {
	switch t {
	case EntityTypeBankAccount:
		return &r.BankAccounts
	case EntityTypeUpiID:
		return &r.UpiIDs
	case EntityTypePhoneNumber:
		return &r.PhoneNumbers
	case EntityTypePhishingLink:
		return &r.PhishingLinks
	case EntityTypeEmail:
		return &r.Emails
	case EntityTypeBeneficiaryName:
		return &r.BeneficiaryNames
	case EntityTypeBankName:
		return &r.BankNames
	case EntityTypeIfscCode:
		return &r.IfscCodes
	case EntityTypeWhatsappNumber:
		return &r.WhatsappNumbers
	default:
		return nil
	}
}

// Values returns the current value set for an entity type.
func (r *IntelligenceRecord) Values(t EntityType) []string {
	if set := r.setFor(t); set != nil {
		return *set
	}
	return nil
}

// Contains reports whether a value is already present for the given type.
func (r *IntelligenceRecord) Contains(t EntityType, value string) bool {
	set := r.setFor(t)
	if set == nil {
		return false
	}
	for _, v := range *set {
		if v == value {
			return true
		}
	}
	return false
}

// Add inserts a value into a fixed-type set if not already present. Returns
// true when the value was new. Empty values and unknown types are ignored.
func (r *IntelligenceRecord) Add(t EntityType, value string) bool {
	if value == "" {
		return false
	}
	set := r.setFor(t)
	if set == nil {
		return false
	}
	for _, v := range *set {
		if v == value {
			return false
		}
	}
	*set = append(*set, value)
	return true
}

// AddOther appends an other-intel item, deduplicating by exact (label, value)
// equality and preserving first-seen order.
func (r *IntelligenceRecord) AddOther(label, value string) bool {
	if label == "" && value == "" {
		return false
	}
	for _, item := range r.OtherCriticalInfo {
		if item.Label == label && item.Value == value {
			return false
		}
	}
	r.OtherCriticalInfo = append(r.OtherCriticalInfo, OtherIntelItem{Label: label, Value: value})
	return true
}

// Merge unions another record into a fresh copy of this one. Union is the
// only operation: sets never shrink, so merging is monotonic, idempotent, and
// commutative up to ordering. Nil merges to a plain copy.
func (r *IntelligenceRecord) Merge(other *IntelligenceRecord) *IntelligenceRecord {
	merged := r.Clone()
	if other == nil {
		return merged
	}
	for _, t := range FixedEntityTypes() {
		for _, v := range other.Values(t) {
			merged.Add(t, v)
		}
	}
	for _, item := range other.OtherCriticalInfo {
		merged.AddOther(item.Label, item.Value)
	}
	return merged
}

// Clone returns a deep copy of the record.
func (r *IntelligenceRecord) Clone() *IntelligenceRecord {
	c := NewIntelligenceRecord()
	for _, t := range FixedEntityTypes() {
		dst := c.setFor(t)
		*dst = append(*dst, r.Values(t)...)
	}
	c.OtherCriticalInfo = append(c.OtherCriticalInfo, r.OtherCriticalInfo...)
	return c
}

// HasIntelligence reports whether any fixed-type set or other item is non-empty.
func (r *IntelligenceRecord) HasIntelligence() bool {
	for _, t := range FixedEntityTypes() {
		if len(r.Values(t)) > 0 {
			return true
		}
	}
	return len(r.OtherCriticalInfo) > 0
}

// EntityCount returns the total number of values across all fixed-type sets.
func (r *IntelligenceRecord) EntityCount() int {
	n := 0
	for _, t := range FixedEntityTypes() {
		n += len(r.Values(t))
	}
	return n
}

// CompletenessReport is the result of the read-only completeness query.
type CompletenessReport struct {
	Complete bool         `json:"complete"`
	Missing  []EntityType `json:"missing"`
}

// Completeness reports, for a caller-designated set of high-value types,
// whether all are non-empty and which are still missing. Pure query: the
// record is never mutated.
func (r *IntelligenceRecord) Completeness(highValue []EntityType) CompletenessReport {
	report := CompletenessReport{Complete: true, Missing: []EntityType{}}
	for _, t := range highValue {
		if len(r.Values(t)) == 0 {
			report.Complete = false
			report.Missing = append(report.Missing, t)
		}
	}
	return report
}

// ModelCandidates is the semi-structured candidate map produced by an
// external free-form extraction process. Missing keys decode to empty lists;
// a nil *ModelCandidates is a valid zero-contribution input.
type ModelCandidates struct {
	BankAccounts      []string         `json:"bankAccounts"`
	UpiIDs            []string         `json:"upiIds"`
	PhoneNumbers      []string         `json:"phoneNumbers"`
	PhishingLinks     []string         `json:"phishingLinks"`
	Emails            []string         `json:"emails"`
	BeneficiaryNames  []string         `json:"beneficiaryNames"`
	BankNames         []string         `json:"bankNames"`
	IfscCodes         []string         `json:"ifscCodes"`
	WhatsappNumbers   []string         `json:"whatsappNumbers"`
	OtherCriticalInfo []OtherIntelItem `json:"other_critical_info"`
}

// Candidates returns the candidate list for a fixed entity type.
func (m *ModelCandidates) Candidates(t EntityType) []string {
	if m == nil {
		return nil
	}
	switch t {
	case EntityTypeBankAccount:
		return m.BankAccounts
	case EntityTypeUpiID:
		return m.UpiIDs
	case EntityTypePhoneNumber:
		return m.PhoneNumbers
	case EntityTypePhishingLink:
		return m.PhishingLinks
	case EntityTypeEmail:
		return m.Emails
	case EntityTypeBeneficiaryName:
		return m.BeneficiaryNames
	case EntityTypeBankName:
		return m.BankNames
	case EntityTypeIfscCode:
		return m.IfscCodes
	case EntityTypeWhatsappNumber:
		return m.WhatsappNumbers
	default:
		return nil
	}
}
