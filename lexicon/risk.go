package lexicon

import (
	"strings"

	"github.com/poiesic/clausemark/core"
)

// Risk flag word lists, checked in severity order.
var (
	redFlags    = []string{"penalty", "termination", "indemnity", "liability"}
	yellowFlags = []string{"notice", "fee", "fine", "late", "interest"}
)

// AssessRisk scans document text for risk language and returns a
// traffic-light classification. Red flags win over yellow; text containing
// neither is green.
func AssessRisk(text string) core.RiskLevel {
	t := strings.ToLower(text)
	for _, flag := range redFlags {
		if strings.Contains(t, flag) {
			return core.RiskRed
		}
	}
	for _, flag := range yellowFlags {
		if strings.Contains(t, flag) {
			return core.RiskYellow
		}
	}
	return core.RiskGreen
}
