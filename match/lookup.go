package match

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/clausemark/core"
)

// clauseNumber matches references like "clause 3" or "clause #12".
var clauseNumber = regexp.MustCompile(`clause[\s#]*(\d+)`)

// LookupClause resolves a direct clause reference in a query: first a
// clause number (1-based ordinal position), then a clause whose title
// appears verbatim in the query. Returns false when the query carries no
// resolvable reference.
func LookupClause(clauses []core.Clause, q string) (core.Clause, bool) {
	lower := strings.ToLower(q)

	if m := clauseNumber.FindStringSubmatch(lower); m != nil {
		idx, err := strconv.Atoi(m[1])
		if err == nil && idx >= 1 && idx <= len(clauses) {
			return clauses[idx-1], true
		}
	}

	for _, clause := range clauses {
		if clause.Title == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(clause.Title)) {
			return clause, true
		}
	}

	return core.Clause{}, false
}
