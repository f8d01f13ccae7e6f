// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/clausemark/ai"
	"github.com/poiesic/clausemark/core"
)

const splitPrompt = `Split this legal document into its individual clauses or sections. Give each one a short descriptive title and include its complete text unchanged.

Document:
%s

Respond with ONLY a JSON array of objects with "title" and "text" fields, for example:
[{"title": "Payment Terms", "text": "All payments shall be..."}]`

// fallbackTitle is used when the document cannot be split.
const fallbackTitle = "Entire Document"

// SplitClauses asks the text-generation model to divide document text into
// titled clauses. Empty input yields an empty list. When generation fails
// or the response cannot be parsed, the whole document is returned as a
// single clause so downstream matching still works.
func SplitClauses(ctx context.Context, generator ai.TextGenerator, text string) ([]core.Clause, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if strings.TrimSpace(text) == "" {
		return []core.Clause{}, nil
	}

	response, err := generator.Generate(ctx, fmt.Sprintf(splitPrompt, text))
	if err != nil {
		slog.Warn("clause splitting failed, treating document as one clause", "err", err)
		return []core.Clause{{Title: fallbackTitle, Text: text}}, nil
	}

	clauses, err := parseClauses(response)
	if err != nil || len(clauses) == 0 {
		slog.Warn("could not parse clause response, treating document as one clause", "err", err)
		return []core.Clause{{Title: fallbackTitle, Text: text}}, nil
	}

	return clauses, nil
}

// parseClauses extracts and decodes the JSON clause array from a model
// response, repairing the quoting mistakes small models commonly make.
func parseClauses(response string) ([]core.Clause, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in response")
	}
	raw := response[start : end+1]

	var clauses []core.Clause
	if err := json.Unmarshal([]byte(raw), &clauses); err != nil {
		// Retry once with quoting repair before giving up.
		if err = json.Unmarshal([]byte(repairJSON(raw)), &clauses); err != nil {
			return nil, err
		}
	}

	out := clauses[:0]
	for _, clause := range clauses {
		clause.Title = strings.TrimSpace(clause.Title)
		clause.Text = strings.TrimSpace(clause.Text)
		if clause.Text == "" {
			continue
		}
		if clause.Title == "" {
			clause.Title = fallbackTitle
		}
		out = append(out, clause)
	}
	return out, nil
}

// repairJSON fixes the missing opening quote before object keys, a frequent
// defect in small-model output. Example: `, text":` becomes `, "text":`.
func repairJSON(s string) string {
	result := []rune(s)
	fixed := make([]rune, 0, len(result)+16)

	i := 0
	for i < len(result) {
		ch := result[i]

		if ch != '{' && ch != ',' {
			fixed = append(fixed, ch)
			i++
			continue
		}

		fixed = append(fixed, ch)
		i++
		for i < len(result) && (result[i] == ' ' || result[i] == '\n' || result[i] == '\t') {
			fixed = append(fixed, result[i])
			i++
		}

		if i >= len(result) || result[i] == '"' || !isLetter(result[i]) {
			continue
		}

		keyStart := i
		for i < len(result) && (isLetter(result[i]) || result[i] == '_') {
			i++
		}

		// A bare key followed by ": lost its opening quote.
		if i+1 < len(result) && result[i] == '"' && result[i+1] == ':' {
			fixed = append(fixed, '"')
		}
		fixed = append(fixed, result[keyStart:i]...)
	}

	return string(fixed)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
