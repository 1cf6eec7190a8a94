package analysis

import (
	"strings"
	"testing"

	"github.com/argumentor/analysis-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allScores(a models.Analysis) map[string]float64 {
	return map[string]float64{
		"structure.coherence":             a.Structure.Coherence,
		"structure.organization":          a.Structure.Organization,
		"structure.clarity":               a.Structure.Clarity,
		"content.thesis_clarity":          a.Content.ThesisClarity,
		"content.argument_strength":       a.Content.ArgumentStrength,
		"reasoning.logical_connection":    a.Reasoning.LogicalConnection,
		"reasoning.reasoning_quality":     a.Reasoning.ReasoningQuality,
		"reasoning.fallacy_risk":          a.Reasoning.FallacyRisk,
		"evidence.usage":                  a.Evidence.Usage,
		"evidence.source_variety":         a.Evidence.SourceVariety,
		"critical.questioning":            a.CriticalThinking.Questioning,
		"critical.multiple_perspectives":  a.CriticalThinking.MultiplePerspectives,
		"critical.overall_level":          a.CriticalThinking.OverallLevel,
		"originality.personal_voice":      a.Originality.PersonalVoice,
		"originality.originality_score":   a.Originality.OriginalityScore,
		"originality.source_dependency":   a.Originality.SourceDependency,
		"overall.structure":               a.Overall.Structure,
		"overall.content":                 a.Overall.Content,
		"overall.reasoning":               a.Overall.Reasoning,
		"overall.evidence":                a.Overall.Evidence,
		"overall.critical_thinking":       a.Overall.CriticalThinking,
		"overall.originality":             a.Overall.Originality,
		"overall.total":                   a.Overall.Total,
	}
}

func TestScore_EmptyText(t *testing.T) {
	a := Score("")

	for name, v := range allScores(a) {
		assert.Zerof(t, v, "expected zero score for %s on empty text", name)
	}
	assert.False(t, a.Content.HasThesis)
	assert.Equal(t, 0, a.Evidence.Count)
}

func TestScore_AllValuesInRange(t *testing.T) {
	texts := []string{
		"",
		"texto sin ningún indicador relevante",
		strings.Repeat("creo que según además porque por ejemplo ", 50),
		strings.Repeat("siempre nunca obviamente ", 100),
		"Creo que el cambio climático es grave. Según un estudio, las temperaturas subieron 2 grados.",
	}

	for _, text := range texts {
		a := Score(text)
		for name, v := range allScores(a) {
			assert.GreaterOrEqualf(t, v, 0.0, "%s below 0 for %q", name, text)
			assert.LessOrEqualf(t, v, 1.0, "%s above 1 for %q", name, text)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	text := "Creo que además, según los datos, por lo tanto esto implica una consecuencia."
	first := Score(text)
	second := Score(text)
	assert.Equal(t, first, second)
}

func TestScore_MonotonicUpToClamp(t *testing.T) {
	// More occurrences of a category's indicator never decrease that
	// category's score.
	prev := 0.0
	for i := 1; i <= 6; i++ {
		text := strings.Repeat("además ", i)
		score := Score(text).Structure.Coherence
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
	assert.Equal(t, 1.0, prev, "coherence should saturate at 1")
}

func TestScore_FallacySuppressesReasoning(t *testing.T) {
	clean := Score("porque ya que debido a esto")
	suppressed := Score("porque ya que debido a esto, siempre y nunca y obviamente")

	assert.Greater(t, clean.Reasoning.ReasoningQuality, suppressed.Reasoning.ReasoningQuality)
	assert.GreaterOrEqual(t, suppressed.Reasoning.ReasoningQuality, 0.0)
}

func TestScore_SpanishSubmission(t *testing.T) {
	// "creo que" is a thesis marker, "según" and "un estudio" are
	// evidence markers.
	text := "Creo que el cambio climático es grave. Según un estudio, las temperaturas subieron 2 grados."
	a := Score(text)

	require.True(t, a.Content.HasThesis)
	assert.Greater(t, a.Content.ThesisClarity, 0.0)
	assert.GreaterOrEqual(t, a.Evidence.Count, 1)
	assert.Greater(t, a.Evidence.Usage, 0.0)

	// Two evidence hits normalize to 0.5 dependency, well under the
	// 0.7 weakness threshold: no source_dependency weakness.
	weaknesses, _ := Classify(a)
	for _, w := range weaknesses {
		assert.NotEqual(t, models.CategoryOriginality, w.Category)
	}
}

func TestCountIndicatorHits(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, 2, CountIndicatorHits("ADEMÁS y además", []string{"además"}))
	})

	t.Run("EmptyText", func(t *testing.T) {
		assert.Equal(t, 0, CountIndicatorHits("", []string{"además"}))
	})

	t.Run("SumsAcrossPhrases", func(t *testing.T) {
		text := "según el estudio, según la fuente, por ejemplo"
		assert.Equal(t, 3, CountIndicatorHits(text, []string{"según", "por ejemplo"}))
	})
}

func TestCountDistinctIndicators(t *testing.T) {
	text := "según según según, por ejemplo"
	assert.Equal(t, 2, CountDistinctIndicators(text, []string{"según", "por ejemplo", "cita"}))
}
