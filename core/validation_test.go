package core

import (
	"errors"
	"testing"
)

func TestValidateClause(t *testing.T) {
	tests := []struct {
		name    string
		clause  *Clause
		wantErr error
	}{
		{
			name: "valid clause",
			clause: &Clause{
				Title: "Payment Terms",
				Text:  "All payments shall be made within 30 days of invoice date.",
			},
			wantErr: nil,
		},
		{
			name: "valid clause without title",
			clause: &Clause{
				Text: "Either party may terminate this agreement with 60 days written notice.",
			},
			wantErr: nil,
		},
		{
			name:    "nil clause",
			clause:  nil,
			wantErr: ErrInvalidClause,
		},
		{
			name: "empty text",
			clause: &Clause{
				Title: "Termination",
			},
			wantErr: ErrEmptyClauseText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClause(tt.clause)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateClause() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateClause() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateClauses(t *testing.T) {
	valid := []Clause{
		{Title: "Custody", Text: "Primary physical custody of the minor children."},
		{Text: "All disputes shall be resolved through binding arbitration."},
	}
	if err := ValidateClauses(valid); err != nil {
		t.Errorf("ValidateClauses() error = %v, want nil", err)
	}

	bad := []Clause{
		{Title: "Custody", Text: "Primary physical custody."},
		{Title: "Empty"},
	}
	err := ValidateClauses(bad)
	if !errors.Is(err, ErrEmptyClauseText) {
		t.Errorf("ValidateClauses() error = %v, want ErrEmptyClauseText", err)
	}
}

func TestValidateConfidence(t *testing.T) {
	for _, c := range []Confidence{ConfidenceHigh, ConfidenceMedium, ConfidenceLow} {
		if err := ValidateConfidence(c); err != nil {
			t.Errorf("ValidateConfidence(%q) error = %v, want nil", c, err)
		}
	}
	if err := ValidateConfidence("certain"); !errors.Is(err, ErrInvalidConfidence) {
		t.Errorf("ValidateConfidence() error = %v, want ErrInvalidConfidence", err)
	}
}

func TestValidateIntent(t *testing.T) {
	for _, intent := range []Intent{
		IntentLocation, IntentExplanation, IntentResponsibility,
		IntentTiming, IntentProcess, IntentGeneral,
	} {
		if err := ValidateIntent(intent); err != nil {
			t.Errorf("ValidateIntent(%q) error = %v, want nil", intent, err)
		}
	}
	if err := ValidateIntent("navigation"); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("ValidateIntent() error = %v, want ErrInvalidIntent", err)
	}
}
