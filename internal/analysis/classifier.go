package analysis

import "github.com/argumentor/analysis-service/internal/models"

// Classification thresholds. Weakness and strength bands are disjoint
// per category (e.g. weak <0.6, strong >0.8); the gap in between is a
// deliberate neutral zone so marginal scores are neither praised nor
// flagged.
const (
	thesisWeakBelow         = 0.6
	thesisStrongAbove       = 0.8
	evidenceWeakBelow       = 2 // raw indicator count
	evidenceStrongAtOrAbove = 3
	dependencyWeakAbove     = 0.7
	originalityStrongAbove  = 0.6
	reasoningWeakBelow      = 0.6
	reasoningStrongAbove    = 0.8
	criticalWeakBelow       = 0.5
)

// Classify applies the fixed rule table to an analysis and returns the
// ordered weakness and strength lists. Every rule is evaluated every
// time; no category can appear in both lists for one analysis.
func Classify(a models.Analysis) ([]models.Weakness, []models.Strength) {
	var weaknesses []models.Weakness
	var strengths []models.Strength

	if a.Content.ThesisClarity < thesisWeakBelow {
		weaknesses = append(weaknesses, models.Weakness{
			Category: models.CategoryThesis,
			Area:     "claridad de la tesis",
			Score:    a.Content.ThesisClarity,
			Priority: models.PriorityHigh,
		})
	} else if a.Content.ThesisClarity > thesisStrongAbove {
		strengths = append(strengths, models.Strength{
			Category: models.CategoryThesis,
			Area:     "claridad de la tesis",
			Score:    a.Content.ThesisClarity,
			Priority: models.PriorityHigh,
		})
	}

	if a.Evidence.Count < evidenceWeakBelow {
		weaknesses = append(weaknesses, models.Weakness{
			Category: models.CategoryEvidence,
			Area:     "uso de evidencia",
			Score:    a.Evidence.Usage,
			Priority: models.PriorityMedium,
		})
	} else if a.Evidence.Count >= evidenceStrongAtOrAbove {
		strengths = append(strengths, models.Strength{
			Category: models.CategoryEvidence,
			Area:     "uso de evidencia",
			Score:    a.Evidence.Usage,
			Priority: models.PriorityMedium,
		})
	}

	if a.Originality.SourceDependency > dependencyWeakAbove {
		weaknesses = append(weaknesses, models.Weakness{
			Category: models.CategoryOriginality,
			Area:     "dependencia de fuentes",
			Score:    a.Originality.SourceDependency,
			Priority: models.PriorityHigh,
		})
	} else if a.Originality.OriginalityScore > originalityStrongAbove {
		strengths = append(strengths, models.Strength{
			Category: models.CategoryOriginality,
			Area:     "voz propia",
			Score:    a.Originality.OriginalityScore,
			Priority: models.PriorityHigh,
		})
	}

	if a.Reasoning.ReasoningQuality < reasoningWeakBelow {
		weaknesses = append(weaknesses, models.Weakness{
			Category: models.CategoryReasoning,
			Area:     "calidad del razonamiento",
			Score:    a.Reasoning.ReasoningQuality,
			Priority: models.PriorityMedium,
		})
	} else if a.Reasoning.ReasoningQuality > reasoningStrongAbove {
		strengths = append(strengths, models.Strength{
			Category: models.CategoryReasoning,
			Area:     "calidad del razonamiento",
			Score:    a.Reasoning.ReasoningQuality,
			Priority: models.PriorityMedium,
		})
	}

	// Critical thinking has no strength band.
	if a.CriticalThinking.OverallLevel < criticalWeakBelow {
		weaknesses = append(weaknesses, models.Weakness{
			Category: models.CategoryCriticalThinking,
			Area:     "pensamiento crítico",
			Score:    a.CriticalThinking.OverallLevel,
			Priority: models.PriorityHigh,
		})
	}

	return weaknesses, strengths
}
