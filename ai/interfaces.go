package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// scoring. Implementations must be thread-safe for concurrent use and
// read-only after initialization.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// TextGenerator produces generated text from a prompt string. It is the
// boundary to an external language-model service and must be treated as
// unreliable: callers degrade gracefully on error.
// Implementations must be thread-safe for concurrent use.
type TextGenerator interface {
	// Generate sends a prompt to the underlying model and returns the
	// generated text, or an error if the service fails.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// TextGenerator instances, ensuring they share configuration appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the text generation service.
	// The returned TextGenerator is safe for concurrent use.
	Generator() TextGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
