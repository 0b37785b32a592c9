package engine

import "math"

// Tier is the coarse suitability bucket for an activity under given weather.
type Tier string

const (
	TierPoor    Tier = "poor"
	TierFair    Tier = "fair"
	TierGood    Tier = "good"
	TierPerfect Tier = "perfect"
	TierUnknown Tier = "unknown"
)

// TierSet holds the four condition-tier clause lists of one activity.
// Clauses within a tier are alternatives: any one matching clause qualifies
// the activity for that tier.
type TierSet struct {
	Poor    []string
	Fair    []string
	Good    []string
	Perfect []string
}

// ScoreResult is the outcome of classifying one activity against one fact
// snapshot. Reasons lists the raw clause strings that matched, for
// explainability. Tier is "unknown" when required facts were missing, never
// a guessed tier.
type ScoreResult struct {
	Tier    Tier     `json:"tier"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// Score bands per tier, inclusive.
var scoreBands = map[Tier][2]int{
	TierPoor:    {0, 25},
	TierFair:    {26, 50},
	TierGood:    {51, 80},
	TierPerfect: {81, 100},
}

// Classify evaluates the four tiers in strict precedence order and returns
// the single best-matching tier with its score.
//
// Poor is evaluated first and acts as a hard veto: poor clauses are authored
// as safety/impossibility constraints and must dominate a coincidentally
// matching good range. Then perfect, good, fair. A tier whose every clause
// evaluates unknown is skipped; if no tier matches at all the result is
// TierUnknown with score 0.
//
// The result is deterministic: same tiers and facts always yield an
// identical ScoreResult.
func Classify(tiers TierSet, facts FactSnapshot) ScoreResult {
	order := []struct {
		tier    Tier
		clauses []string
	}{
		{TierPoor, tiers.Poor},
		{TierPerfect, tiers.Perfect},
		{TierGood, tiers.Good},
		{TierFair, tiers.Fair},
	}

	for _, t := range order {
		matched := evalTier(t.clauses, facts)
		if len(matched) == 0 {
			continue
		}
		return ScoreResult{
			Tier:    t.tier,
			Score:   bandScore(t.tier, len(matched), len(t.clauses)),
			Reasons: matched,
		}
	}

	return ScoreResult{Tier: TierUnknown, Score: 0}
}

// evalTier returns the clauses of one tier that evaluate true. Unparseable
// clauses fail closed and never abort their siblings.
func evalTier(clauses []string, facts FactSnapshot) []string {
	var matched []string
	for _, raw := range clauses {
		pred, _ := ParseClause(raw)
		if pred(facts) == True {
			matched = append(matched, raw)
		}
	}
	return matched
}

// bandScore maps a matched tier into its numeric band. Within a band the
// score scales with the fraction of the tier's clauses that matched: for
// poor, more matching vetoes push the score toward 0; for the other tiers,
// more matching clauses push it toward the top of the band.
func bandScore(tier Tier, matched, total int) int {
	band := scoreBands[tier]
	lo, hi := band[0], band[1]
	if total <= 0 {
		return lo
	}

	frac := float64(matched) / float64(total)
	span := float64(hi - lo)

	if tier == TierPoor {
		return hi - int(math.Round(span*frac))
	}
	return lo + int(math.Round(span*frac))
}
