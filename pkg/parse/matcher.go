package parse

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberRe = regexp.MustCompile(`\b(\d+)\b`)

// Confidence grades how trustworthy a fuzzy title match is.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the outcome of comparing an extracted title against catalog
// candidates.
type Match struct {
	Title      string  // matched candidate, "" when confidence is none
	Score      float64 // Jaro-Winkler similarity, 0.0-1.0
	Confidence Confidence
}

// MatchTitle picks the candidate closest to the extracted title.
// Jaro-Winkler favors shared prefixes, which suits media titles, and a
// sequel-number bonus separates "Movie 2" from "Movie 3".
func MatchTitle(extracted string, candidates []string) Match {
	if len(candidates) == 0 {
		return Match{Confidence: ConfidenceNone}
	}

	cleaned := CleanTitle(extracted)
	extractedNums := numberRe.FindAllString(cleaned, -1)

	var best Match
	for _, candidate := range candidates {
		cleanedCandidate := CleanTitle(candidate)
		score := float64(edlib.JaroWinklerSimilarity(cleaned, cleanedCandidate))
		score = sequelAdjust(score, extractedNums, numberRe.FindAllString(cleanedCandidate, -1))
		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Title = ""
	}
	return best
}

// sequelAdjust nudges the similarity score using the sequence numbers in
// both titles: matching numbers earn a capped bonus, absent or mismatched
// numbers a penalty. Titles without numbers pass through unchanged.
func sequelAdjust(score float64, extracted, candidate []string) float64 {
	if len(extracted) == 0 {
		return score
	}
	if len(candidate) == 0 {
		return score * 0.85
	}

	inCandidate := make(map[string]bool, len(candidate))
	for _, n := range candidate {
		inCandidate[n] = true
	}
	for _, n := range extracted {
		if inCandidate[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
