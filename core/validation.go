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


package core

import "fmt"

// ValidateClause validates a Clause according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//
// NOT validated:
//   - Title (untitled clauses are legal; matching falls back to text alone)
func ValidateClause(clause *Clause) error {
	if clause == nil {
		return fmt.Errorf("%w: clause is nil", ErrInvalidClause)
	}

	if clause.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClause, ErrEmptyClauseText)
	}

	return nil
}

// ValidateClauses validates an ordered clause list, reporting the first
// malformed entry by position.
func ValidateClauses(clauses []Clause) error {
	for i := range clauses {
		if err := ValidateClause(&clauses[i]); err != nil {
			return fmt.Errorf("clause %d: %w", i, err)
		}
	}
	return nil
}

// ValidateConfidence validates that a Confidence has a known value.
func ValidateConfidence(c Confidence) error {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidConfidence, c)
	}
}

// ValidateIntent validates that an Intent has a known value.
func ValidateIntent(intent Intent) error {
	switch intent {
	case IntentLocation, IntentExplanation, IntentResponsibility,
		IntentTiming, IntentProcess, IntentGeneral:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidIntent, intent)
	}
}
