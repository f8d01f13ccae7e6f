package match

import (
	"testing"

	"github.com/poiesic/clausemark/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupClause(t *testing.T) {
	t.Run("by clause number", func(t *testing.T) {
		clause, found := LookupClause(agreementClauses, "What does clause 2 say?")
		require.True(t, found)
		assert.Equal(t, "Payment Terms", clause.Title)
	})

	t.Run("by clause number with hash", func(t *testing.T) {
		clause, found := LookupClause(agreementClauses, "show me clause #3")
		require.True(t, found)
		assert.Equal(t, "Termination", clause.Title)
	})

	t.Run("number out of range", func(t *testing.T) {
		_, found := LookupClause(agreementClauses, "explain clause 10")
		assert.False(t, found)
	})

	t.Run("by title", func(t *testing.T) {
		clause, found := LookupClause(agreementClauses, "where are the payment terms listed")
		require.True(t, found)
		assert.Equal(t, "Payment Terms", clause.Title)
	})

	t.Run("title match is case insensitive", func(t *testing.T) {
		clause, found := LookupClause(agreementClauses, "CONFIDENTIALITY obligations")
		require.True(t, found)
		assert.Equal(t, "Confidentiality", clause.Title)
	})

	t.Run("no reference", func(t *testing.T) {
		_, found := LookupClause(agreementClauses, "who pays for repairs")
		assert.False(t, found)
	})

	t.Run("empty clause list", func(t *testing.T) {
		_, found := LookupClause(nil, "clause 1")
		assert.False(t, found)
	})

	t.Run("untitled clauses skipped", func(t *testing.T) {
		clauses := []core.Clause{{Text: "Body without a title."}}
		_, found := LookupClause(clauses, "anything at all")
		assert.False(t, found)
	})
}
