package analysis

import "github.com/argumentor/analysis-service/internal/models"

// detectionFloor is the minimum winning keyword count for a modality
// to be reported. Below it the message carries too little signal and
// the detector answers "undetermined" instead of guessing.
const detectionFloor = 2

// ScoreModalities counts each modality's keyword hits in the message.
func ScoreModalities(message string) models.ModalityScores {
	return models.ModalityScores{
		Visual:      CountIndicatorHits(message, VisualIndicators),
		Auditory:    CountIndicatorHits(message, AuditoryIndicators),
		Reading:     CountIndicatorHits(message, ReadingIndicators),
		Kinesthetic: CountIndicatorHits(message, KinestheticIndicators),
	}
}

// DetectModality returns the dominant learning modality of a message,
// or ModalityUndetermined when the best count is below the floor.
//
// Ties at the maximum resolve to the earliest modality in
// models.Modalities (visual, auditory, reading, kinesthetic); the
// order is a fixed priority list, so detection is deterministic.
func DetectModality(message string) models.Modality {
	scores := ScoreModalities(message)

	best := models.ModalityUndetermined
	bestCount := 0
	for _, m := range models.Modalities {
		if c := scores.Count(m); c > bestCount {
			best = m
			bestCount = c
		}
	}

	if bestCount < detectionFloor {
		return models.ModalityUndetermined
	}
	return best
}
