package scoring

// Risk tiers, ordered from strongest to weakest. Tier boundaries are
// half-open intervals, inclusive on the lower bound.
const (
	TierFortress = "FORTRESS"
	TierStable   = "STABLE"
	TierElevated = "ELEVATED"
	TierHighRisk = "HIGH RISK"
	TierCritical = "CRITICAL"
)

// RiskTier classifies an APEX score into a risk tier.
func RiskTier(score float64) string {
	switch {
	case score >= 90:
		return TierFortress
	case score >= 70:
		return TierStable
	case score >= 50:
		return TierElevated
	case score >= 30:
		return TierHighRisk
	default:
		return TierCritical
	}
}

// LetterGrade converts an APEX score to a letter grade (AAA to D).
// Same inclusive-lower-bound convention as RiskTier, step 10.
func LetterGrade(score float64) string {
	switch {
	case score >= 90:
		return "AAA"
	case score >= 80:
		return "AA"
	case score >= 70:
		return "A"
	case score >= 60:
		return "BBB"
	case score >= 50:
		return "BB"
	case score >= 40:
		return "B"
	case score >= 30:
		return "CCC"
	case score >= 20:
		return "CC"
	case score >= 10:
		return "C"
	default:
		return "D"
	}
}

var gradeDescriptions = map[string]string{
	"AAA": "top-tier investment grade",
	"AA":  "high investment grade",
	"A":   "upper-medium investment grade",
	"BBB": "medium investment grade",
	"BB":  "speculative grade",
	"B":   "highly speculative",
	"CCC": "substantial risk",
	"CC":  "extremely speculative",
	"C":   "near-default",
	"D":   "default imminent",
}

// GradeDescription returns the human-readable description for a letter
// grade, or "undefined" for an unknown grade.
func GradeDescription(grade string) string {
	if desc, ok := gradeDescriptions[grade]; ok {
		return desc
	}
	return "undefined"
}
