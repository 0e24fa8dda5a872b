package utils

const (
	// TypedNumberConfidence is reported for a valid number typed in by hand
	TypedNumberConfidence = 85
	// FailedCheckConfidence caps a candidate that looked right but failed
	// its checksum or structure rule
	FailedCheckConfidence = 30

	baseConfidence     = 70
	perKeywordBonus    = 5
	maxKeywordBonus    = 30
	maxConfidenceScore = 100
)

// Score turns an extraction into a 0-100 confidence.
func Score(found, passed bool, keywordMatches int) int {
	if !found {
		return 0
	}
	if !passed {
		return FailedCheckConfidence
	}

	bonus := keywordMatches * perKeywordBonus
	if bonus > maxKeywordBonus {
		bonus = maxKeywordBonus
	}
	if bonus < 0 {
		bonus = 0
	}

	score := baseConfidence + bonus
	if score > maxConfidenceScore {
		score = maxConfidenceScore
	}
	return score
}
