package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/corpus"
	"github.com/promptdeck/promptdeck/internal/ingest"
)

var (
	flagFetchFeed       string
	flagFetchCategory   string
	flagFetchDifficulty string
	flagFetchMax        int
	flagFetchOut        string
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Build and check corpus files",
}

var corpusFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Build a corpus file from a syndication feed",
	Long: `Fetch a blog feed and convert its items into a corpus JSON file.

The result is a starting point for the content team, not a finished
library: excerpts and read times are derived from the feed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		articles, err := ingest.NewFetcher().Fetch(ctx, flagFetchFeed, ingest.Options{
			Category:   flagFetchCategory,
			Difficulty: corpus.Difficulty(flagFetchDifficulty),
			MaxItems:   flagFetchMax,
		})
		if err != nil {
			return err
		}

		c := corpus.Corpus{
			Categories: []corpus.Category{{ID: flagFetchCategory, Name: flagFetchCategory}},
			Articles:   articles,
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("fetched corpus is invalid: %w", err)
		}

		data, err := json.MarshalIndent(&c, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagFetchOut, data, 0o644); err != nil {
			return fmt.Errorf("writing corpus: %w", err)
		}
		fmt.Printf("Wrote %d article(s) to %s.\n", len(articles), flagFetchOut)
		return nil
	},
}

var corpusValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an externally supplied corpus file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := corpus.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d article(s), %d categorie(s).\n", len(c.Articles), len(c.Categories))
		return nil
	},
}

func init() {
	corpusFetchCmd.Flags().StringVar(&flagFetchFeed, "feed", "", "feed URL (required)")
	corpusFetchCmd.Flags().StringVar(&flagFetchCategory, "category", "tutorials", "category id assigned to fetched articles")
	corpusFetchCmd.Flags().StringVar(&flagFetchDifficulty, "difficulty", "Beginner", "difficulty assigned to fetched articles")
	corpusFetchCmd.Flags().IntVar(&flagFetchMax, "max", 0, "maximum number of items (0 = all)")
	corpusFetchCmd.Flags().StringVar(&flagFetchOut, "out", "corpus.json", "output file")
	corpusFetchCmd.MarkFlagRequired("feed")

	corpusCmd.AddCommand(corpusFetchCmd)
	corpusCmd.AddCommand(corpusValidateCmd)
}
