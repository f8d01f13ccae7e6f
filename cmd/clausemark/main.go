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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/clausemark"
	"github.com/poiesic/clausemark/ai"
	"github.com/poiesic/clausemark/core"
	"github.com/poiesic/clausemark/ingestion"
	"github.com/poiesic/clausemark/lexicon"
	"github.com/poiesic/clausemark/match"
	"github.com/poiesic/clausemark/query"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "clausemark",
		Usage: "Semantic passage matching for legal documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Show the keyword, synonym, and intent analysis of a query",
				ArgsUsage: "<query>",
				Action:    analyzeCommand,
			},
			{
				Name:      "search",
				Usage:     "Rank a document's clauses against a query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "clauses",
						Aliases:  []string{"c"},
						Usage:    "Path to a JSON clause file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of matches to return",
						Value: match.DefaultMaxResults,
					},
				),
			},
			{
				Name:      "segment",
				Usage:     "Rank clauses and split matches into highlightable segments",
				ArgsUsage: "<query>",
				Action:    segmentCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "clauses",
						Aliases:  []string{"c"},
						Usage:    "Path to a JSON clause file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of matches to rank",
						Value: match.DefaultMaxResults,
					},
					&cli.IntFlag{
						Name:  "max-segments",
						Usage: "Maximum number of segments to return",
						Value: match.DefaultMaxSegments,
					},
				),
			},
			{
				Name:   "split",
				Usage:  "Split a document into titled clauses using the text-generation model",
				Action: splitCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "doc",
						Aliases:  []string{"d"},
						Usage:    "Path to a plain-text document",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "prewarm",
						Usage: "Prewarm the embedding cache for the split clauses",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for prewarming",
					},
				),
			},
			{
				Name:   "risk",
				Usage:  "Classify each clause's risk language (red, yellow, green)",
				Action: riskCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "clauses",
						Aliases:  []string{"c"},
						Usage:    "Path to a JSON clause file",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags returns the flags shared by every command that talks to the AI
// services.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Path to the embedding cache directory",
			Value: "./clausemark_cache",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "AI service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "generator-model",
			Usage: "Text generation model name",
			Value: "qwen2.5:3b",
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func analyzeCommand(c *cli.Context) error {
	q := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if q == "" {
		return fmt.Errorf("query is required")
	}

	analysis := query.NewAnalyzer().Analyze(q)
	return printJSON(analysis)
}

func searchCommand(c *cli.Context) error {
	q := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if q == "" {
		return fmt.Errorf("query is required")
	}

	clauses, err := loadClauses(c.String("clauses"))
	if err != nil {
		return err
	}

	matcher, err := newMatcher(c)
	if err != nil {
		return err
	}
	defer matcher.Close()

	results, err := matcher.Engine().Rank(context.Background(), q, clauses, c.Int("max-results"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return printJSON(results)
}

func segmentCommand(c *cli.Context) error {
	q := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if q == "" {
		return fmt.Errorf("query is required")
	}

	clauses, err := loadClauses(c.String("clauses"))
	if err != nil {
		return err
	}

	matcher, err := newMatcher(c)
	if err != nil {
		return err
	}
	defer matcher.Close()

	result, err := matcher.Engine().Highlighting(context.Background(), q, clauses,
		c.Int("max-results"), c.Int("max-segments"))
	if err != nil {
		return fmt.Errorf("segmentation failed: %w", err)
	}
	return printJSON(result)
}

func splitCommand(c *cli.Context) error {
	text, err := os.ReadFile(c.String("doc"))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	matcher, err := newMatcher(c)
	if err != nil {
		return err
	}
	defer matcher.Close()

	ctx := context.Background()
	clauses, err := ingestion.SplitClauses(ctx, matcher.Provider().Generator(), string(text))
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	if c.Bool("prewarm") && len(clauses) > 0 {
		var opts []ingestion.Option
		if size := c.Int("pool-size"); size > 0 {
			opts = append(opts, ingestion.WithPoolSize(size))
		}

		pipeline, err := matcher.NewIngestionPipeline(opts...)
		if err != nil {
			return fmt.Errorf("failed to create prewarming pipeline: %w", err)
		}
		defer pipeline.Release()

		warmed, err := pipeline.Prewarm(ctx, clauses)
		if err != nil {
			return fmt.Errorf("prewarming failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Prewarmed %d of %d clauses\n", warmed, len(clauses))
	}

	return printJSON(clauses)
}

func riskCommand(c *cli.Context) error {
	clauses, err := loadClauses(c.String("clauses"))
	if err != nil {
		return err
	}

	type clauseRisk struct {
		Title string         `json:"title"`
		Risk  core.RiskLevel `json:"risk"`
	}

	report := make([]clauseRisk, len(clauses))
	for i, clause := range clauses {
		report[i] = clauseRisk{
			Title: clause.Title,
			Risk:  lexicon.AssessRisk(clause.Title + " " + clause.Text),
		}
	}
	return printJSON(report)
}

// newMatcher builds the matcher from the command's AI flags.
func newMatcher(c *cli.Context) (*clausemark.Matcher, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
	)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	matcher, err := clausemark.NewMatcher(c.String("cache"), clausemark.WithAIConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize matcher: %w", err)
	}
	return matcher, nil
}

// loadClauses reads a JSON array of {title, text} objects.
func loadClauses(path string) ([]core.Clause, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clause file: %w", err)
	}

	var clauses []core.Clause
	if err := json.Unmarshal(data, &clauses); err != nil {
		return nil, fmt.Errorf("failed to parse clause file: %w", err)
	}
	if err := core.ValidateClauses(clauses); err != nil {
		return nil, err
	}
	return clauses, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
