package models

// ScamType categorizes a detected scam attempt
type ScamType string

const (
	ScamTypeJobOffer      ScamType = "job_offer"      // part-time job, work-from-home, task scams
	ScamTypeBankingFraud  ScamType = "banking_fraud"  // KYC update, account blocked, verification
	ScamTypeLotteryReward ScamType = "lottery_reward" // lottery winner, reward points, cashback
	ScamTypeImpersonation ScamType = "impersonation"  // police, CBI, bank official
	ScamTypeOthers        ScamType = "others"
)

// ScamClassification is the result of deterministic scam detection over
// adversary text.
type ScamClassification struct {
	IsScam           bool     `json:"is_scam"`
	Confidence       float64  `json:"confidence"`
	ScamType         ScamType `json:"scam_type,omitempty"`
	ThreatIndicators []string `json:"threat_indicators"`
}
