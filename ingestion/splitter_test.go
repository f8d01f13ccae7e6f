package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/clausemark/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = "1. Payment. All payments are due within 30 days. 2. Termination. Either party may terminate with notice."

func TestSplitClauses(t *testing.T) {
	ctx := context.Background()

	t.Run("well formed response", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(_ context.Context, _ string) (string, error) {
			return `[{"title": "Payment", "text": "All payments are due within 30 days."}, {"title": "Termination", "text": "Either party may terminate with notice."}]`, nil
		}

		clauses, err := SplitClauses(ctx, generator, sampleDocument)
		require.NoError(t, err)
		require.Len(t, clauses, 2)
		assert.Equal(t, "Payment", clauses[0].Title)
		assert.Equal(t, "Termination", clauses[1].Title)
	})

	t.Run("response wrapped in prose", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(_ context.Context, _ string) (string, error) {
			return "Here are the clauses:\n```json\n[{\"title\": \"Payment\", \"text\": \"All payments are due.\"}]\n```", nil
		}

		clauses, err := SplitClauses(ctx, generator, sampleDocument)
		require.NoError(t, err)
		require.Len(t, clauses, 1)
		assert.Equal(t, "Payment", clauses[0].Title)
	})

	t.Run("missing key quote is repaired", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(_ context.Context, _ string) (string, error) {
			return `[{title": "Payment", text": "All payments are due."}]`, nil
		}

		clauses, err := SplitClauses(ctx, generator, sampleDocument)
		require.NoError(t, err)
		require.Len(t, clauses, 1)
		assert.Equal(t, "Payment", clauses[0].Title)
		assert.Equal(t, "All payments are due.", clauses[0].Text)
	})

	t.Run("generation failure degrades to single clause", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(_ context.Context, _ string) (string, error) {
			return "", errors.New("model unavailable")
		}

		clauses, err := SplitClauses(ctx, generator, sampleDocument)
		require.NoError(t, err)
		require.Len(t, clauses, 1)
		assert.Equal(t, "Entire Document", clauses[0].Title)
		assert.Equal(t, sampleDocument, clauses[0].Text)
	})

	t.Run("unparseable response degrades to single clause", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(_ context.Context, _ string) (string, error) {
			return "I could not split this document.", nil
		}

		clauses, err := SplitClauses(ctx, generator, sampleDocument)
		require.NoError(t, err)
		require.Len(t, clauses, 1)
		assert.Equal(t, "Entire Document", clauses[0].Title)
	})

	t.Run("empty entries dropped, blank titles defaulted", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(_ context.Context, _ string) (string, error) {
			return `[{"title": "", "text": "Some clause text."}, {"title": "Empty", "text": "  "}]`, nil
		}

		clauses, err := SplitClauses(ctx, generator, sampleDocument)
		require.NoError(t, err)
		require.Len(t, clauses, 1)
		assert.Equal(t, "Entire Document", clauses[0].Title)
		assert.Equal(t, "Some clause text.", clauses[0].Text)
	})

	t.Run("empty document", func(t *testing.T) {
		clauses, err := SplitClauses(ctx, mock.NewMockGenerator(), "   ")
		require.NoError(t, err)
		assert.Empty(t, clauses)
	})

	t.Run("nil generator", func(t *testing.T) {
		_, err := SplitClauses(ctx, nil, sampleDocument)
		assert.Equal(t, ErrGeneratorRequired, err)
	})
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already valid", `{"title": "Payment"}`, `{"title": "Payment"}`},
		{"missing quote after brace", `{title": "Payment"}`, `{"title": "Payment"}`},
		{"missing quote after comma", `{"a": 1, text": "x"}`, `{"a": 1, "text": "x"}`},
		{"underscore key", `{match_score": 5}`, `{"match_score": 5}`},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}
