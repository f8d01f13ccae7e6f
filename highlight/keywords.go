package highlight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poiesic/clausemark/ai"
)

const keywordPrompt = `Extract 3-5 short literal keywords or phrases from this question about a legal document. The keywords will be searched for verbatim, so use words likely to appear in the document itself.

Question: %s

Respond with ONLY a JSON array of strings, for example: ["custody", "minor children", "visitation"]`

// ExtractKeywords asks the text-generation collaborator for literal search
// keywords for a query. The model is instructed to answer with a JSON array
// of strings; anything surrounding the array is ignored.
func ExtractKeywords(ctx context.Context, generator ai.TextGenerator, q string) ([]string, error) {
	response, err := generator.Generate(ctx, fmt.Sprintf(keywordPrompt, q))
	if err != nil {
		return nil, fmt.Errorf("keyword extraction: %w", err)
	}

	raw, err := extractJSONArray(response)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction: %w", err)
	}

	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return nil, fmt.Errorf("keyword extraction: %w", err)
	}

	out := keywords[:0]
	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			out = append(out, keyword)
		}
	}
	return out, nil
}

// extractJSONArray returns the first top-level JSON array in text. Models
// routinely wrap their answer in prose or markdown fences.
func extractJSONArray(text string) (string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array in response")
	}
	return text[start : end+1], nil
}
