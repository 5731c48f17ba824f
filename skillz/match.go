// skillz/match.go
package skillz

////////////////////////////////////////////////////////////////////////
// Match Scorer
////////////////////////////////////////////////////////////////////////

// Match is the result of comparing a job's required skills against a
// candidate's skills.
type Match struct {
	Score   int      `json:"score"`   // Percentage of required skills covered, 0-100
	Matched []string `json:"matched"` // Required skills the candidate has, sorted
	Missing []string `json:"missing"` // Required skills the candidate lacks, sorted
}

// Compare scores requiredText against candidateText and reports which
// required skills were found.
//
// A job without any stated requirement scores 0: there is nothing for the
// candidate to cover.
func Compare(requiredText, candidateText string) Match {
	required := ParseSkillSet(requiredText)
	candidate := ParseSkillSet(candidateText)

	result := Match{
		Matched: []string{},
		Missing: []string{},
	}
	if required.Len() == 0 {
		return result
	}

	for _, key := range required.Keys() {
		if candidate.Contains(key) {
			result.Matched = append(result.Matched, key)
		} else {
			result.Missing = append(result.Missing, key)
		}
	}

	result.Score = percentage(len(result.Matched), required.Len())
	return result
}

// ComputeMatchScore returns the percentage (0-100, rounded down) of the
// distinct required skills that also appear in the candidate's skills.
// Empty or absent inputs never fail; they score 0.
func ComputeMatchScore(requiredText, candidateText string) int {
	required := ParseSkillSet(requiredText)
	if required.Len() == 0 {
		return 0
	}

	candidate := ParseSkillSet(candidateText)

	matches := 0
	for key := range required {
		if candidate.Contains(key) {
			matches++
		}
	}

	return percentage(matches, required.Len())
}

// percentage computes floor(100*part/whole) in integer arithmetic.
// part never exceeds whole, so the result stays within [0, 100].
func percentage(part, whole int) int {
	return part * 100 / whole
}
