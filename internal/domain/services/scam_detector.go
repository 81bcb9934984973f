package services

import (
	"strings"

	"scamintel/internal/domain/models"
	"scamintel/pkg/logger"
)

// ScamDetector classifies adversary text into a scam taxonomy with keyword
// heuristics. Deterministic and I/O-free like the extractor; keyword tables
// are built once and never mutated.
type ScamDetector struct {
	typeKeywords map[models.ScamType][]string
	urgencyWords []string
	fearWords    []string
	actionWords  []string
	logger       *logger.Logger
}

// NewScamDetector creates a scam detector.
func NewScamDetector(log *logger.Logger) *ScamDetector {
	return &ScamDetector{
		typeKeywords: map[models.ScamType][]string{
			models.ScamTypeJobOffer: {
				"part-time", "part time", "work from home", "earn daily",
				"per day", "simple task", "liking videos", "youtube like",
				"telegram task", "online job", "no experience", "daily payout",
			},
			models.ScamTypeBankingFraud: {
				"kyc", "account blocked", "account suspended", "verify your account",
				"update your account", "net banking", "debit card", "credit card",
				"otp", "pan card", "aadhaar", "account will be closed",
			},
			models.ScamTypeLotteryReward: {
				"lottery", "lucky draw", "congratulations you have won", "you have won",
				"winner", "prize", "reward points", "cashback", "claim your",
				"gift voucher", "scratch card",
			},
			models.ScamTypeImpersonation: {
				"police", "cbi", "cyber cell", "income tax", "customs",
				"arrest warrant", "legal action", "bank officer", "rbi",
				"courier department", "fedex parcel", "digital arrest",
			},
		},
		urgencyWords: []string{
			"urgent", "immediately", "right now", "within 24 hours", "today only",
			"last chance", "act now", "expire", "hurry", "final warning",
		},
		fearWords: []string{
			"blocked", "suspended", "arrest", "penalty", "fine", "legal action",
			"fraud detected", "unauthorized", "seized", "case registered",
		},
		actionWords: []string{
			"click", "transfer", "send money", "pay", "deposit", "share otp",
			"install", "download", "call this number", "whatsapp",
		},
		logger: log.WithComponent("scam-detector"),
	}
}

// Classify scores the text against each scam category and the pressure-tactic
// word lists. Empty text yields a non-scam result, never an error.
func (d *ScamDetector) Classify(text string) *models.ScamClassification {
	result := &models.ScamClassification{
		ThreatIndicators: []string{},
	}
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return result
	}

	bestType := models.ScamTypeOthers
	bestScore := 0.0
	for scamType, keywords := range d.typeKeywords {
		score := 0.0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score += 0.25
			}
		}
		if score > bestScore {
			bestScore = score
			bestType = scamType
		}
	}

	pressure := 0.0
	if containsAny(lower, d.urgencyWords) {
		pressure += 0.15
		result.ThreatIndicators = append(result.ThreatIndicators, "urgency_language")
	}
	if containsAny(lower, d.fearWords) {
		pressure += 0.2
		result.ThreatIndicators = append(result.ThreatIndicators, "fear_tactics")
	}
	if containsAny(lower, d.actionWords) {
		pressure += 0.15
		result.ThreatIndicators = append(result.ThreatIndicators, "action_demand")
	}

	confidence := bestScore + pressure
	if confidence > 1.0 {
		confidence = 1.0
	}
	result.Confidence = confidence

	if confidence >= 0.3 {
		result.IsScam = true
		if bestScore > 0 {
			result.ScamType = bestType
		} else {
			result.ScamType = models.ScamTypeOthers
		}
	}

	d.logger.Debug().
		Bool("is_scam", result.IsScam).
		Str("scam_type", string(result.ScamType)).
		Float64("confidence", result.Confidence).
		Msg("Scam classification complete")

	return result
}

// ClassifyWithIntel raises confidence when extraction already surfaced
// payment indicators; a conversation that hands over account details is
// rarely benign.
func (d *ScamDetector) ClassifyWithIntel(text string, record *models.IntelligenceRecord) *models.ScamClassification {
	result := d.Classify(text)
	if record == nil {
		return result
	}
	if len(record.BankAccounts) > 0 || len(record.UpiIDs) > 0 || len(record.PhishingLinks) > 0 {
		result.ThreatIndicators = append(result.ThreatIndicators, "payment_indicators_present")
		result.Confidence += 0.2
		if result.Confidence > 1.0 {
			result.Confidence = 1.0
		}
		if !result.IsScam && result.Confidence >= 0.3 {
			result.IsScam = true
			result.ScamType = models.ScamTypeOthers
		}
	}
	return result
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
