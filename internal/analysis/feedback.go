package analysis

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/argumentor/analysis-service/internal/models"
)

type feedbackTemplate struct {
	Message    string
	Suggestion string
}

// feedbackTemplates maps each weakness category to its canned message
// and remedial suggestion. Exhaustive for the five defined categories.
var feedbackTemplates = map[models.SkillCategory]feedbackTemplate{
	models.CategoryThesis: {
		Message:    "Tu tesis no queda clara. El lector debería poder identificar tu postura desde el inicio.",
		Suggestion: "Comienza con una frase como \"Creo que...\" o \"Mi postura es...\" que exprese tu posición directamente.",
	},
	models.CategoryEvidence: {
		Message:    "Tu argumento necesita más evidencia que lo respalde.",
		Suggestion: "Incorpora al menos dos fuentes, datos o ejemplos concretos usando expresiones como \"según\" o \"por ejemplo\".",
	},
	models.CategoryOriginality: {
		Message:    "Tu texto depende demasiado de fuentes externas y se pierde tu voz propia.",
		Suggestion: "Equilibra las citas con tu propia interpretación: qué propones tú a partir de lo que dicen las fuentes.",
	},
	models.CategoryReasoning: {
		Message:    "Las conexiones lógicas entre tus ideas son débiles o contienen generalizaciones absolutas.",
		Suggestion: "Conecta causas y efectos con \"porque\", \"ya que\" o \"por consiguiente\", y evita absolutos como \"siempre\" o \"nunca\".",
	},
	models.CategoryCriticalThinking: {
		Message:    "Tu texto presenta una sola mirada sin cuestionar supuestos ni considerar otras perspectivas.",
		Suggestion: "Plantea al menos una pregunta sobre tu propio argumento y menciona un posible contraargumento.",
	},
}

// praiseTemplates maps each category to the message used when the
// classifier flags it as a strength.
var praiseTemplates = map[models.SkillCategory]feedbackTemplate{
	models.CategoryThesis: {
		Message:    "Tu tesis es clara y directa; se entiende tu postura desde el principio.",
		Suggestion: "Mantén esa claridad y refuérzala retomando la tesis en la conclusión.",
	},
	models.CategoryEvidence: {
		Message:    "Buen uso de evidencia: tu argumento se apoya en fuentes y ejemplos concretos.",
		Suggestion: "Sigue variando los tipos de evidencia para fortalecer aún más el argumento.",
	},
	models.CategoryOriginality: {
		Message:    "Tu voz propia destaca: aportas ideas e interpretaciones originales.",
		Suggestion: "Contrasta tus ideas con alguna fuente para mostrar que dialogan con el tema.",
	},
	models.CategoryReasoning: {
		Message:    "Tu razonamiento es sólido, con conexiones lógicas bien marcadas.",
		Suggestion: "Prueba a encadenar más de un paso lógico en un mismo argumento.",
	},
}

type challengeTemplate struct {
	Prompt              string
	Skill               string
	Hint                string
	AcceptanceCriterion string
	EstimatedTime       string
}

// challengeTemplates maps weakness categories to a parameterized
// micro-challenge. A weakness whose category has no entry here simply
// produces no challenge; that is not an error.
var challengeTemplates = map[models.SkillCategory]challengeTemplate{
	models.CategoryThesis: {
		Prompt:              "Escribe en una sola oración la idea central que defiendes, empezando con \"Sostengo que\".",
		Skill:               "formulación de tesis",
		Hint:                "Si necesitas más de una oración, tu tesis todavía no está destilada.",
		AcceptanceCriterion: "Una oración que exprese una postura discutible, no un hecho.",
		EstimatedTime:       "5 min",
	},
	models.CategoryEvidence: {
		Prompt:              "Busca dos datos o ejemplos que respalden tu argumento e intégralos usando \"según\" o \"por ejemplo\".",
		Skill:               "uso de evidencia",
		Hint:                "Un dato numérico y un ejemplo concreto suelen ser la combinación más convincente.",
		AcceptanceCriterion: "Dos referencias distintas conectadas explícitamente con la tesis.",
		EstimatedTime:       "10 min",
	},
	models.CategoryOriginality: {
		Prompt:              "Reescribe un párrafo de tu texto expresando la misma idea sin citar ninguna fuente: solo tu interpretación.",
		Skill:               "voz propia",
		Hint:                "Empieza con \"Propongo que\" o \"Desde mi punto de vista\".",
		AcceptanceCriterion: "El párrafo mantiene el contenido pero la conclusión es tuya, no de la fuente.",
		EstimatedTime:       "10 min",
	},
	models.CategoryReasoning: {
		Prompt:              "Toma una de tus afirmaciones y constrúyele una cadena causa-efecto de al menos dos pasos con \"porque\" y \"por consiguiente\".",
		Skill:               "razonamiento lógico",
		Hint:                "Cada paso debe poder cuestionarse por separado; si no, es un solo paso disfrazado.",
		AcceptanceCriterion: "Dos conectores causales explícitos sin generalizaciones absolutas.",
		EstimatedTime:       "8 min",
	},
	models.CategoryCriticalThinking: {
		Prompt:              "Escribe el mejor contraargumento posible contra tu propia tesis y luego respóndelo.",
		Skill:               "pensamiento crítico",
		Hint:                "Imagina que debes convencer a alguien que opina lo contrario.",
		AcceptanceCriterion: "Un contraargumento plausible y una respuesta que no lo ignore.",
		EstimatedTime:       "12 min",
	},
}

// GenerateFeedback produces one feedback item per weakness and one
// praise item per strength via the static template tables. Pure lookup;
// the caller owns persistence of the result.
func GenerateFeedback(weaknesses []models.Weakness, strengths []models.Strength) []models.FeedbackItem {
	items := make([]models.FeedbackItem, 0, len(weaknesses)+len(strengths))
	for _, w := range weaknesses {
		tpl, ok := feedbackTemplates[w.Category]
		if !ok {
			continue
		}
		items = append(items, models.FeedbackItem{
			Category:   w.Category,
			Message:    tpl.Message,
			Suggestion: tpl.Suggestion,
			Priority:   w.Priority,
		})
	}
	for _, s := range strengths {
		tpl, ok := praiseTemplates[s.Category]
		if !ok {
			continue
		}
		items = append(items, models.FeedbackItem{
			Category:   s.Category,
			Message:    tpl.Message,
			Suggestion: tpl.Suggestion,
			Priority:   models.PriorityLow,
		})
	}
	return items
}

// GenerateChallenges produces one micro-challenge per weakness with a
// defined template. Weaknesses without a template are skipped silently.
func GenerateChallenges(weaknesses []models.Weakness) []models.MicroChallenge {
	challenges := make([]models.MicroChallenge, 0, len(weaknesses))
	for _, w := range weaknesses {
		tpl, ok := challengeTemplates[w.Category]
		if !ok {
			continue
		}
		challenges = append(challenges, models.MicroChallenge{
			ID:                  newChallengeID(),
			Category:            w.Category,
			Prompt:              tpl.Prompt,
			Skill:               tpl.Skill,
			Hint:                tpl.Hint,
			AcceptanceCriterion: tpl.AcceptanceCriterion,
			EstimatedTime:       tpl.EstimatedTime,
		})
	}
	return challenges
}

// newChallengeID builds a time-ordered identifier with a random suffix.
// Collisions are negligible; the ID is not meant to be cryptographic.
func newChallengeID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand failing is effectively a broken platform; fall
		// back to a nanosecond-only ID rather than aborting generation.
		return "ch-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return fmt.Sprintf("ch-%s-%s",
		strconv.FormatInt(time.Now().UnixNano(), 36),
		hex.EncodeToString(suffix))
}
