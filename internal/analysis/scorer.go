package analysis

import "github.com/argumentor/analysis-service/internal/models"

// Per-category normalization divisors. A divisor of n means n indicator
// hits saturate the score at 1.
const (
	coherenceDivisor     = 3.0
	sequenceDivisor      = 3.0
	clarityDivisor       = 2.0
	thesisDivisor        = 2.0
	argumentDivisor      = 4.0
	logicalDivisor       = 3.0
	reasoningSpread      = 3.0
	fallacyDivisor       = 3.0
	evidenceUsageDivisor = 5.0
	varietyDivisor       = 3.0
	questioningDivisor   = 3.0
	perspectiveDivisor   = 3.0
	criticalDivisor      = 5.0
	personalDivisor      = 3.0
	originalitySpread    = 2.0
	dependencyDivisor    = 4.0
)

// Score computes the six-dimension analysis for a single text. It is a
// pure function: identical text always yields identical output, and
// empty text yields an all-zero analysis rather than an error.
func Score(text string) models.Analysis {
	thesisHits := CountIndicatorHits(text, ThesisIndicators)
	evidenceHits := CountIndicatorHits(text, EvidenceIndicators)
	logicalHits := CountIndicatorHits(text, LogicalIndicators)
	fallacyHits := CountIndicatorHits(text, FallacyIndicators)
	questionHits := CountIndicatorHits(text, QuestioningIndicators)
	perspectiveHits := CountIndicatorHits(text, PerspectiveIndicators)
	criticalHits := CountIndicatorHits(text, CriticalIndicators)
	personalHits := CountIndicatorHits(text, PersonalVoiceIndicators)

	a := models.Analysis{
		Structure: models.StructureScores{
			Coherence:    ratio(CountIndicatorHits(text, CoherenceConnectors), coherenceDivisor),
			Organization: ratio(CountIndicatorHits(text, SequenceIndicators), sequenceDivisor),
			Clarity:      ratio(CountIndicatorHits(text, ClarityIndicators), clarityDivisor),
		},
		Content: models.ContentScores{
			HasThesis:        thesisHits > 0,
			ThesisClarity:    ratio(thesisHits, thesisDivisor),
			ArgumentStrength: ratio(thesisHits+logicalHits, argumentDivisor),
		},
		Reasoning: models.ReasoningScores{
			LogicalConnection: ratio(logicalHits, logicalDivisor),
			ReasoningQuality:  clamp01(float64(logicalHits-fallacyHits) / reasoningSpread),
			FallacyRisk:       ratio(fallacyHits, fallacyDivisor),
		},
		Evidence: models.EvidenceScores{
			Count:         evidenceHits,
			Usage:         ratio(evidenceHits, evidenceUsageDivisor),
			SourceVariety: ratio(CountDistinctIndicators(text, EvidenceIndicators), varietyDivisor),
		},
		CriticalThinking: models.CriticalThinkingScores{
			Questioning:          ratio(questionHits, questioningDivisor),
			MultiplePerspectives: ratio(perspectiveHits, perspectiveDivisor),
			OverallLevel:         ratio(questionHits+perspectiveHits+criticalHits, criticalDivisor),
		},
		Originality: models.OriginalityScores{
			PersonalVoice:    ratio(personalHits, personalDivisor),
			OriginalityScore: clamp01((float64(personalHits) - 0.5*float64(evidenceHits)) / originalitySpread),
			SourceDependency: ratio(evidenceHits, dependencyDivisor),
		},
	}

	a.Overall = overall(a)
	return a
}

// overall computes per-dimension means and their mean as Total. The
// negative-sense metrics (fallacy risk, source dependency) are already
// reflected in ReasoningQuality and OriginalityScore, so they are left
// out of the means; this also keeps an empty text at exactly zero.
func overall(a models.Analysis) models.OverallScores {
	o := models.OverallScores{
		Structure: mean(a.Structure.Coherence, a.Structure.Organization, a.Structure.Clarity),
		Content: mean(a.Content.ThesisClarity, a.Content.ArgumentStrength,
			boolScore(a.Content.HasThesis)),
		Reasoning: mean(a.Reasoning.LogicalConnection, a.Reasoning.ReasoningQuality),
		Evidence:  mean(a.Evidence.Usage, a.Evidence.SourceVariety),
		CriticalThinking: mean(a.CriticalThinking.Questioning,
			a.CriticalThinking.MultiplePerspectives, a.CriticalThinking.OverallLevel),
		Originality: mean(a.Originality.PersonalVoice, a.Originality.OriginalityScore),
	}
	o.Total = mean(o.Structure, o.Content, o.Reasoning, o.Evidence,
		o.CriticalThinking, o.Originality)
	return o
}

// ratio normalizes a hit count by its divisor and clamps at 1.
func ratio(count int, divisor float64) float64 {
	return clamp01(float64(count) / divisor)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
