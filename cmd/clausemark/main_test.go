package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	newContext := func(level string) *cli.Context {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String("log-level", level, "")
		return cli.NewContext(nil, set, nil)
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			assert.NoError(t, setupLogger(newContext(level)), "level %q", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := setupLogger(newContext("verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestLoadClauses(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "clauses.json")
		content := `[{"title": "Payment", "text": "Payments are due in 30 days."}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		clauses, err := loadClauses(path)
		require.NoError(t, err)
		require.Len(t, clauses, 1)
		assert.Equal(t, "Payment", clauses[0].Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadClauses(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read clause file")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "clauses.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

		_, err := loadClauses(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse clause file")
	})

	t.Run("empty clause text rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "clauses.json")
		content := `[{"title": "Broken", "text": ""}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := loadClauses(path)
		assert.Error(t, err)
	})
}

func TestAnalyzeCommand(t *testing.T) {
	app := &cli.App{
		Name: "clausemark",
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				ArgsUsage: "<query>",
				Action:    analyzeCommand,
			},
		},
	}

	t.Run("query required", func(t *testing.T) {
		err := app.Run([]string{"clausemark", "analyze"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query is required")
	})

	t.Run("analyzes a query", func(t *testing.T) {
		err := app.Run([]string{"clausemark", "analyze", "who", "has", "custody"})
		assert.NoError(t, err)
	})
}

func TestSearchCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "clausemark",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "clauses",
						Aliases:  []string{"c"},
						Required: true,
					},
				),
			},
		},
	}

	t.Run("clauses flag is required", func(t *testing.T) {
		err := app.Run([]string{"clausemark", "search", "custody"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "clauses")
	})

	t.Run("host has default value", func(t *testing.T) {
		var hostFlag *cli.StringFlag
		for _, f := range aiFlags() {
			if sf, ok := f.(*cli.StringFlag); ok && sf.Name == "host" {
				hostFlag = sf
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})
}
