package care

// OutcomeType tags the result of a scoreboard period.
type OutcomeType string

const (
	OutcomeNone   OutcomeType = "none"   // nobody scored
	OutcomeTie    OutcomeType = "tie"    // top score shared
	OutcomeWinner OutcomeType = "winner" // unique top scorer
)

// Outcome is the winner resolution for one score map.
type Outcome struct {
	Type  OutcomeType
	Name  string // set only for OutcomeWinner
	Score int    // set only for OutcomeWinner
}

// ResolveWinner picks the unique top scorer, or reports a tie or no activity.
// Ties deliberately declare no winner instead of breaking arbitrarily; the
// result does not depend on map iteration order.
func ResolveWinner(scores map[string]int) Outcome {
	max := 0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max == 0 {
		return Outcome{Type: OutcomeNone}
	}

	var top string
	count := 0
	for name, s := range scores {
		if s == max {
			top = name
			count++
		}
	}
	if count > 1 {
		return Outcome{Type: OutcomeTie}
	}
	return Outcome{Type: OutcomeWinner, Name: top, Score: max}
}
