package lexicon

import (
	"strings"
	"testing"

	"github.com/poiesic/clausemark/core"
	"github.com/stretchr/testify/assert"
)

func TestSynonyms(t *testing.T) {
	t.Run("excludes the word itself", func(t *testing.T) {
		syns := Synonyms("custody")
		assert.NotEmpty(t, syns)
		assert.NotContains(t, syns, "custody")
	})

	t.Run("replaces underscores with spaces", func(t *testing.T) {
		syns := Synonyms("deadline")
		assert.Contains(t, syns, "due date")
		for _, s := range syns {
			assert.NotContains(t, s, "_")
		}
	})

	t.Run("unknown word returns nil", func(t *testing.T) {
		assert.Nil(t, Synonyms("zyzzyva"))
	})

	t.Run("empty word returns nil", func(t *testing.T) {
		assert.Nil(t, Synonyms(""))
	})
}

func TestVariations(t *testing.T) {
	t.Run("known concept", func(t *testing.T) {
		vars := Variations("custody")
		assert.Contains(t, vars, "guardianship")
		assert.Contains(t, vars, "parental rights")
	})

	t.Run("unknown concept returns nil", func(t *testing.T) {
		assert.Nil(t, Variations("navigation"))
	})
}

func TestConcepts(t *testing.T) {
	concepts := Concepts()
	assert.Len(t, concepts, 10)
	assert.Contains(t, concepts, "intellectual_property")
	assert.Contains(t, concepts, "force_majeure")

	// Every concept's variation list contains lowercase entries only.
	for _, c := range concepts {
		for _, v := range Variations(c) {
			assert.Equal(t, strings.ToLower(v), v, "variation %q of %q not lowercase", v, c)
		}
	}
}

func TestEachConcept(t *testing.T) {
	seen := map[string]int{}
	EachConcept(func(concept string, variations []string) {
		seen[concept] = len(variations)
	})
	assert.Len(t, seen, 10)
	assert.NotZero(t, seen["liability"])
}

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.RiskLevel
	}{
		{
			name: "red flag",
			text: "Late payments incur a penalty of 5% per month.",
			want: core.RiskRed,
		},
		{
			name: "red wins over yellow",
			text: "A late fee applies and termination follows repeated default.",
			want: core.RiskRed,
		},
		{
			name: "yellow flag",
			text: "A written notice must be served 30 days in advance.",
			want: core.RiskYellow,
		},
		{
			name: "green",
			text: "The parties shall cooperate in good faith.",
			want: core.RiskGreen,
		},
		{
			name: "empty text",
			text: "",
			want: core.RiskGreen,
		},
		{
			name: "case insensitive",
			text: "TERMINATION of this agreement",
			want: core.RiskRed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssessRisk(tt.text))
		})
	}
}
