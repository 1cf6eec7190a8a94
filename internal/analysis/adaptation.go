package analysis

import (
	"fmt"

	"github.com/argumentor/analysis-service/internal/models"
)

// Bundle weights. Complementary bundles accompany a low-confidence
// primary; balanced bundles are used when no modality was detected.
const (
	primaryWeight       = 1.0
	complementaryWeight = 0.5
	balancedWeight      = 0.25
)

// activityTemplates holds four activity patterns per modality; %s is
// replaced with the activity topic.
var activityTemplates = map[models.Modality][]string{
	models.ModalityVisual: {
		"Crea un mapa conceptual sobre %s",
		"Dibuja un diagrama que conecte las ideas principales de %s",
		"Busca una infografía sobre %s y anota qué comunica mejor que el texto",
		"Representa con un esquema de colores los argumentos a favor y en contra de %s",
	},
	models.ModalityAuditory: {
		"Explica en voz alta los puntos clave de %s como si dieras una clase",
		"Graba un resumen de dos minutos sobre %s y escúchalo al día siguiente",
		"Debate con un compañero la postura contraria sobre %s",
		"Busca un podcast sobre %s y compara sus argumentos con los tuyos",
	},
	models.ModalityReading: {
		"Escribe un resumen de una página sobre %s",
		"Lee dos artículos con posturas opuestas sobre %s y lista sus argumentos",
		"Redacta una lista de preguntas abiertas sobre %s",
		"Toma apuntes estructurados de la fuente principal sobre %s",
	},
	models.ModalityKinesthetic: {
		"Diseña un experimento simple que ponga a prueba una afirmación de %s",
		"Construye una línea de tiempo física con tarjetas sobre %s",
		"Representa con objetos la relación causa-efecto central de %s",
		"Organiza un juego de roles donde cada persona defienda una postura de %s",
	},
}

// resourceTables holds four suggested resource types per modality.
var resourceTables = map[models.Modality][]string{
	models.ModalityVisual: {
		"videos explicativos con diagramas",
		"infografías y mapas conceptuales",
		"presentaciones con apoyo gráfico",
		"documentales sobre el tema",
	},
	models.ModalityAuditory: {
		"podcasts educativos",
		"audiolibros del tema",
		"grupos de discusión",
		"explicaciones grabadas",
	},
	models.ModalityReading: {
		"artículos académicos introductorios",
		"libros de referencia",
		"guías de estudio escritas",
		"resúmenes y fichas de lectura",
	},
	models.ModalityKinesthetic: {
		"laboratorios y simuladores",
		"talleres prácticos",
		"proyectos de construcción",
		"salidas de campo",
	},
}

// complementaryModalities is the fixed adjacency table used when the
// primary detection has low confidence.
var complementaryModalities = map[models.Modality][]models.Modality{
	models.ModalityVisual:      {models.ModalityReading, models.ModalityKinesthetic},
	models.ModalityAuditory:    {models.ModalityVisual, models.ModalityKinesthetic},
	models.ModalityReading:     {models.ModalityVisual, models.ModalityAuditory},
	models.ModalityKinesthetic: {models.ModalityVisual, models.ModalityAuditory},
}

// SelectAdaptations builds the activity/resource bundles for a detected
// modality and topic.
//
//   - Confident detection: one primary bundle.
//   - Low confidence: the primary plus up to two complementary bundles
//     at reduced weight.
//   - No detection (undetermined): all four bundles, equally weighted.
func SelectAdaptations(modality models.Modality, topic string, lowConfidence bool) []models.AdaptationBundle {
	if modality == models.ModalityUndetermined || modality == "" {
		bundles := make([]models.AdaptationBundle, 0, len(models.Modalities))
		for _, m := range models.Modalities {
			bundles = append(bundles, buildBundle(m, topic, false, balancedWeight))
		}
		return bundles
	}

	bundles := []models.AdaptationBundle{buildBundle(modality, topic, true, primaryWeight)}
	if lowConfidence {
		for _, m := range complementaryModalities[modality] {
			bundles = append(bundles, buildBundle(m, topic, false, complementaryWeight))
		}
	}
	return bundles
}

func buildBundle(m models.Modality, topic string, primary bool, weight float64) models.AdaptationBundle {
	templates := activityTemplates[m]
	activities := make([]string, 0, len(templates))
	for _, tpl := range templates {
		activities = append(activities, fmt.Sprintf(tpl, topic))
	}
	resources := make([]string, len(resourceTables[m]))
	copy(resources, resourceTables[m])

	return models.AdaptationBundle{
		Modality:   m,
		Primary:    primary,
		Weight:     weight,
		Activities: activities,
		Resources:  resources,
	}
}
