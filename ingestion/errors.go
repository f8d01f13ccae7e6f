package ingestion

import "errors"

var (
	// ErrEngineRequired is returned when constructing a pipeline without a
	// matching engine.
	ErrEngineRequired = errors.New("matching engine is required")

	// ErrGeneratorRequired is returned when splitting clauses without a
	// text generator.
	ErrGeneratorRequired = errors.New("text generator is required")
)
