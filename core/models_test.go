package core

import (
	"testing"
)

func TestKeyFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same key",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "The parties agree that primary physical custody of the minor children shall be awarded to the mother",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k1 := KeyFromContent(tt.content)
			k2 := KeyFromContent(tt.content)

			if k1 != k2 {
				t.Errorf("KeyFromContent() produced different keys for same content: %s vs %s", k1, k2)
			}
			if len(k1) != 64 {
				t.Errorf("KeyFromContent() key length = %d, want 64 hex chars", len(k1))
			}
		})
	}
}

func TestKeyFromContent_Different(t *testing.T) {
	k1 := KeyFromContent("content1")
	k2 := KeyFromContent("content2")

	if k1 == k2 {
		t.Errorf("KeyFromContent() produced same key for different content")
	}
}

func TestTierForConfidence(t *testing.T) {
	tests := []struct {
		name       string
		confidence Confidence
		want       HighlightTier
	}{
		{"high maps to primary", ConfidenceHigh, TierPrimary},
		{"medium maps to secondary", ConfidenceMedium, TierSecondary},
		{"low maps to tertiary", ConfidenceLow, TierTertiary},
		{"unknown maps to tertiary", Confidence("bogus"), TierTertiary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierForConfidence(tt.confidence); got != tt.want {
				t.Errorf("TierForConfidence(%q) = %q, want %q", tt.confidence, got, tt.want)
			}
		})
	}
}
