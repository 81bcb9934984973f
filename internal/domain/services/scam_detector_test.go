package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamintel/internal/domain/models"
	"scamintel/pkg/logger"
)

func newTestDetector(t *testing.T) *ScamDetector {
	t.Helper()
	return NewScamDetector(logger.NewDefault())
}

func TestClassify(t *testing.T) {
	d := newTestDetector(t)

	tests := []struct {
		name     string
		text     string
		wantScam bool
		wantType models.ScamType
	}{
		{
			name:     "banking fraud with urgency",
			text:     "Your account blocked! Complete KYC immediately or account will be closed",
			wantScam: true,
			wantType: models.ScamTypeBankingFraud,
		},
		{
			name:     "lottery reward",
			text:     "Congratulations you have won the lucky draw prize of 10 lakh, claim your reward",
			wantScam: true,
			wantType: models.ScamTypeLotteryReward,
		},
		{
			name:     "job offer",
			text:     "Work from home, earn daily 5000, simple task liking videos on youtube",
			wantScam: true,
			wantType: models.ScamTypeJobOffer,
		},
		{
			name:     "impersonation",
			text:     "This is cyber cell police, an arrest warrant is issued, pay fine immediately",
			wantScam: true,
			wantType: models.ScamTypeImpersonation,
		},
		{
			name:     "benign chat",
			text:     "hello, how are you doing today?",
			wantScam: false,
		},
		{
			name:     "empty text",
			text:     "",
			wantScam: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Classify(tt.text)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantScam, result.IsScam)
			if tt.wantScam {
				assert.Equal(t, tt.wantType, result.ScamType)
				assert.GreaterOrEqual(t, result.Confidence, 0.3)
			}
			assert.LessOrEqual(t, result.Confidence, 1.0)
		})
	}
}

func TestClassifyThreatIndicators(t *testing.T) {
	d := newTestDetector(t)

	result := d.Classify("Act now! Your account is blocked, click the link and pay the fine")

	assert.Contains(t, result.ThreatIndicators, "urgency_language")
	assert.Contains(t, result.ThreatIndicators, "fear_tactics")
	assert.Contains(t, result.ThreatIndicators, "action_demand")
}

func TestClassifyWithIntel(t *testing.T) {
	d := newTestDetector(t)

	record := models.NewIntelligenceRecord()
	record.Add(models.EntityTypeUpiID, "scammer@ybl")

	// Text alone is below the threshold; extracted payment details push it over.
	text := "send money here"
	base := d.Classify(text)
	require.False(t, base.IsScam)

	result := d.ClassifyWithIntel(text, record)

	assert.True(t, result.IsScam)
	assert.Contains(t, result.ThreatIndicators, "payment_indicators_present")
	assert.Greater(t, result.Confidence, base.Confidence)
}

func TestClassifyWithIntelNilRecord(t *testing.T) {
	d := newTestDetector(t)

	result := d.ClassifyWithIntel("hello there", nil)

	assert.False(t, result.IsScam)
	assert.NotContains(t, result.ThreatIndicators, "payment_indicators_present")
}
