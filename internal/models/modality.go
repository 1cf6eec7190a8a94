package models

// Modality is a learning-style category.
type Modality string

const (
	ModalityVisual      Modality = "visual"
	ModalityAuditory    Modality = "auditory"
	ModalityReading     Modality = "reading"
	ModalityKinesthetic Modality = "kinesthetic"

	// ModalityUndetermined is returned when no modality clears the
	// detection confidence floor.
	ModalityUndetermined Modality = "undetermined"
)

// Modalities lists the four detectable modalities in priority order.
// The detector breaks count ties by this order, so it is part of the
// detection contract, not a cosmetic arrangement.
var Modalities = []Modality{
	ModalityVisual,
	ModalityAuditory,
	ModalityReading,
	ModalityKinesthetic,
}

// ModalityScores holds the per-modality keyword hit counts for one
// message. Transient; never persisted.
type ModalityScores struct {
	Visual      int `json:"visual"`
	Auditory    int `json:"auditory"`
	Reading     int `json:"reading"`
	Kinesthetic int `json:"kinesthetic"`
}

// Count returns the hit count for the given modality.
func (s ModalityScores) Count(m Modality) int {
	switch m {
	case ModalityVisual:
		return s.Visual
	case ModalityAuditory:
		return s.Auditory
	case ModalityReading:
		return s.Reading
	case ModalityKinesthetic:
		return s.Kinesthetic
	}
	return 0
}

// AdaptationBundle is a set of suggested activities and resources for
// one modality. Primary bundles carry full weight; complementary and
// balanced bundles carry less.
type AdaptationBundle struct {
	Modality   Modality `json:"modality"`
	Primary    bool     `json:"primary"`
	Weight     float64  `json:"weight"`
	Activities []string `json:"activities"`
	Resources  []string `json:"resources"`
}
