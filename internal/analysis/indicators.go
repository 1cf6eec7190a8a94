// Package analysis implements the argument-quality scoring engine:
// lexical indicator counting, dimension scoring, weakness/strength
// classification, feedback and micro-challenge generation,
// learning-style detection, adaptation selection and per-session
// progress tracking. Everything here is deterministic; the only
// randomness in the package is micro-challenge ID suffixes.
package analysis

import (
	"strings"

	"github.com/argumentor/analysis-service/internal/models"
)

// Indicator tables. Each list maps one semantic category to the fixed
// phrases whose presence contributes to that category's count. The
// learner-facing language is Spanish, matching the submissions the
// engine scores.

// ThesisIndicators mark an explicit position statement.
var ThesisIndicators = []string{
	"creo que",
	"considero que",
	"en mi opinión",
	"mi tesis",
	"sostengo que",
	"pienso que",
	"afirmo que",
	"mi postura",
	"defiendo que",
}

// EvidenceIndicators mark appeals to sources, data or examples.
var EvidenceIndicators = []string{
	"según",
	"de acuerdo con",
	"un estudio",
	"una investigación",
	"los datos",
	"estadística",
	"la fuente",
	"por ejemplo",
	"la evidencia",
	"como señala",
	"cita",
}

// CoherenceConnectors link ideas across sentences.
var CoherenceConnectors = []string{
	"además",
	"sin embargo",
	"por lo tanto",
	"no obstante",
	"asimismo",
	"por otro lado",
	"en consecuencia",
	"de igual manera",
}

// SequenceIndicators mark explicit ordering of the argument.
var SequenceIndicators = []string{
	"en primer lugar",
	"en segundo lugar",
	"primero",
	"segundo",
	"luego",
	"finalmente",
	"en conclusión",
	"para concluir",
}

// ClarityIndicators mark restatement and precision moves.
var ClarityIndicators = []string{
	"es decir",
	"en otras palabras",
	"específicamente",
	"dicho de otro modo",
	"esto significa",
}

// LogicalIndicators mark cause-effect and inferential connections.
var LogicalIndicators = []string{
	"porque",
	"ya que",
	"debido a",
	"por consiguiente",
	"entonces",
	"como resultado",
	"esto implica",
	"se deduce",
	"dado que",
}

// FallacyIndicators are absolutist or overgeneralizing words that
// suppress the reasoning-quality score.
var FallacyIndicators = []string{
	"siempre",
	"nunca",
	"todos saben",
	"nadie puede",
	"obviamente",
	"es evidente que",
	"sin ninguna duda",
	"claramente",
}

// QuestioningIndicators mark interrogative, probing moves.
var QuestioningIndicators = []string{
	"¿",
	"por qué",
	"me pregunto",
	"cuestiono",
	"habría que preguntarse",
}

// PerspectiveIndicators mark engagement with other viewpoints.
var PerspectiveIndicators = []string{
	"perspectiva",
	"punto de vista",
	"alternativa",
	"contraargumento",
	"otra forma de ver",
	"algunos argumentan",
	"se podría objetar",
}

// CriticalIndicators mark analytic depth beyond questioning.
var CriticalIndicators = []string{
	"supuesto",
	"implicación",
	"analizar",
	"evaluar",
	"consecuencia",
	"criterio",
	"matiz",
}

// PersonalVoiceIndicators mark the learner's own contribution.
var PersonalVoiceIndicators = []string{
	"mi experiencia",
	"propongo",
	"sugiero",
	"mi idea",
	"he observado",
	"desde mi punto de vista",
}

// Modality keyword sets for learning-style detection.

var VisualIndicators = []string{
	"ver",
	"imagen",
	"diagrama",
	"gráfico",
	"mapa",
	"color",
	"visual",
	"dibujo",
	"esquema",
	"mirar",
	"video",
}

var AuditoryIndicators = []string{
	"escuchar",
	"oír",
	"sonido",
	"audio",
	"hablar",
	"conversación",
	"música",
	"podcast",
	"discutir",
	"explicación en voz",
}

var ReadingIndicators = []string{
	"leer",
	"escribir",
	"texto",
	"libro",
	"artículo",
	"notas",
	"lista",
	"resumen",
	"documento",
	"apuntes",
}

var KinestheticIndicators = []string{
	"hacer",
	"practicar",
	"construir",
	"experimentar",
	"mover",
	"tocar",
	"manipular",
	"ejercicio",
	"proyecto",
	"actividad",
}

// ModalityIndicators maps each modality to its keyword set.
var ModalityIndicators = map[models.Modality][]string{
	models.ModalityVisual:      VisualIndicators,
	models.ModalityAuditory:    AuditoryIndicators,
	models.ModalityReading:     ReadingIndicators,
	models.ModalityKinesthetic: KinestheticIndicators,
}

// CountIndicatorHits counts case-insensitive substring occurrences of
// every phrase in the list, summed. This is the single counting
// implementation shared by the scorer and the detector.
func CountIndicatorHits(text string, phrases []string) int {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	total := 0
	for _, phrase := range phrases {
		total += strings.Count(lower, strings.ToLower(phrase))
	}
	return total
}

// CountDistinctIndicators counts how many phrases from the list occur
// at least once. Used for source-variety scoring, where repeating one
// marker should not read as a varied evidence base.
func CountDistinctIndicators(text string, phrases []string) int {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	distinct := 0
	for _, phrase := range phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			distinct++
		}
	}
	return distinct
}
