// Copyright 2025 PracticePreach
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/practicepreach/preach"
	"github.com/practicepreach/preach/ai"
	"github.com/practicepreach/preach/alignment"
	"github.com/practicepreach/preach/chunk"
	"github.com/practicepreach/preach/config"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/ingestion"
	"github.com/practicepreach/preach/reindex"
	"github.com/practicepreach/preach/retrieval"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "preach",
		Usage: "Compare what parties promise in manifestos with what they say in parliament",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file (default: ./preach.yaml, then ~/.config/preach/config.yaml)",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Load a manifesto/speech corpus file into the store (skipped when already populated)",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the CSV corpus file",
						Required: true,
					},
				},
			},
			{
				Name:   "ask",
				Usage:  "Score one party's speeches against its manifesto for a topic",
				Action: askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "topic",
						Aliases:  []string{"t"},
						Usage:    "Topic preset key or free-form question",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "party",
						Aliases:  []string{"p"},
						Usage:    "Party name (AfD, SPD, CDU/CSU, BÜNDNIS 90/DIE GRÜNEN, Die Linke)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "from",
						Usage:    "Start of the speech window (DD.MM.YYYY or YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "End of the speech window, inclusive (DD.MM.YYYY or YYYY-MM-DD)",
						Required: true,
					},
				},
			},
			{
				Name:   "compare",
				Usage:  "Score several parties on the same topic concurrently",
				Action: compareCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "topic",
						Aliases:  []string{"t"},
						Usage:    "Topic preset key or free-form question (see the topics command)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "parties",
						Usage: "Comma-separated party names (default: all parties)",
					},
					&cli.StringFlag{
						Name:     "from",
						Usage:    "Start of the speech window (DD.MM.YYYY or YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "End of the speech window, inclusive (DD.MM.YYYY or YYYY-MM-DD)",
						Required: true,
					},
				},
			},
			{
				Name:   "topics",
				Usage:  "List the topic presets accepted by ask and compare",
				Action: topicsCommand,
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all stored chunks with the configured embedding model",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N chunks",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "count",
				Usage:  "Print the number of stored chunks",
				Action: countCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) error {
	if err := setupLogger(c); err != nil {
		return err
	}
	return config.LoadEnv()
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

func loadConfig(c *cli.Context) (*config.AppConfig, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

func openDatabase(c *cli.Context, cfg *config.AppConfig) (*preach.Database, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.AI.EmbeddingHost),
		ai.WithChatHost(cfg.AI.ChatHost),
		ai.WithEmbeddingModel(cfg.AI.EmbeddingModel),
		ai.WithChatModel(cfg.AI.ChatModel),
		ai.WithToken(cfg.AI.Token()),
		ai.WithRequestTimeout(cfg.AI.Timeout()),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return preach.NewDatabase(dbPath, preach.WithAIConfig(aiConfig))
}

func parseWindow(c *cli.Context) (time.Time, time.Time, error) {
	start, err := core.ParseSourceDate(c.String("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
	}
	end, err := core.ParseSourceDate(c.String("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date %s is before from date %s", c.String("to"), c.String("from"))
	}
	return start, end, nil
}

func newScorer(db *preach.Database, cfg *config.AppConfig) (*alignment.Scorer, error) {
	retrieverOpts := []retrieval.Option{retrieval.WithLimit(cfg.Retrieval.Limit)}

	var scorerOpts []alignment.Option
	if cfg.Alignment.PoolSize > 0 {
		scorerOpts = append(scorerOpts, alignment.WithPoolSize(cfg.Alignment.PoolSize))
	}

	return db.NewScorer(retrieverOpts, scorerOpts...)
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	chunker := chunk.NewSentenceChunker(cfg.Ingestion.ChunkSize, cfg.Ingestion.ChunkOverlap)

	stored, err := db.EnsureIngested(ctx, c.String("file"),
		ingestion.WithBatchSize(cfg.Ingestion.BatchSize),
		ingestion.WithChunker(chunker),
	)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if stored == 0 {
		fmt.Println("Store already populated, nothing ingested.")
	} else {
		fmt.Printf("Ingested %d chunks.\n", stored)
	}
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	party, err := core.ParseParty(c.String("party"))
	if err != nil {
		return err
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	scorer, err := newScorer(db, cfg)
	if err != nil {
		return err
	}

	result, err := scorer.Score(ctx, core.TopicQuery(c.String("topic")), party, start, end)
	if err != nil {
		return err
	}

	printAlignment(result)
	return nil
}

func compareCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	parties := core.Parties
	if raw := c.String("parties"); raw != "" {
		parties = nil
		for _, name := range strings.Split(raw, ",") {
			party, err := core.ParseParty(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			parties = append(parties, party)
		}
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	scorer, err := newScorer(db, cfg)
	if err != nil {
		return err
	}

	results, err := scorer.ScoreParties(ctx, core.TopicQuery(c.String("topic")), parties, start, end)
	if err != nil {
		return err
	}

	// Stable output order
	ordered := make([]core.Party, 0, len(results))
	for party := range results {
		ordered = append(ordered, party)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	for _, party := range ordered {
		printAlignment(results[party])
		fmt.Println()
	}

	if len(results) < len(parties) {
		fmt.Fprintf(os.Stderr, "warning: %d of %d parties failed to score\n",
			len(parties)-len(results), len(parties))
	}
	return nil
}

func topicsCommand(c *cli.Context) error {
	for _, key := range core.TopicKeys() {
		fmt.Printf("%-15s %s\n", key, core.PoliticalTopics[key])
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	reindexConfig := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reindexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reindexConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reindexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	db, err := openDatabase(c, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", cfg.AI.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.AI.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	if err := db.NewReindexer(reindexConfig, os.Stderr).Run(ctx); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}
	return nil
}

func countCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := db.ChunkRepository().Count(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%d chunks\n", count)
	return nil
}

func printAlignment(a *core.Alignment) {
	fmt.Printf("Party:      %s\n", a.Party)
	fmt.Printf("Similarity: %s\n", a.SimilarityDisplay())
	if a.Label != core.LabelUnknown {
		fmt.Printf("Label:      %s\n", a.Label)
	}
	if a.Narrative != "" {
		fmt.Printf("\n%s\n", a.Narrative)
	}
}
