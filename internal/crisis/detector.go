package crisis

import "strings"

// RiskLevel classifies how urgent a detected crisis is.
type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

var highRiskKeywords = []string{
	"suicide", "kill myself", "end my life", "hurt myself",
	"want to die", "no point living", "self harm", "cutting",
	"overdose", "jump off", "hang myself",
}

var mediumRiskKeywords = []string{
	"want to die", "no point", "can't go on", "give up",
}

// Detect scans a message for crisis language. Matching is case-insensitive
// substring search; high-risk phrases are checked before medium-risk ones,
// so a phrase on both lists always classifies as high.
func Detect(message string) (bool, RiskLevel) {
	lower := strings.ToLower(message)
	for _, kw := range highRiskKeywords {
		if strings.Contains(lower, kw) {
			return true, RiskHigh
		}
	}
	for _, kw := range mediumRiskKeywords {
		if strings.Contains(lower, kw) {
			return true, RiskMedium
		}
	}
	return false, RiskNone
}
