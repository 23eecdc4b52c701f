package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagTrendingLimit int
	flagRelatedLimit  int
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		limit := flagTrendingLimit
		if limit <= 0 {
			limit = e.cfg.GetTrendingSize()
		}

		for i, t := range e.disc.Trending(limit) {
			fmt.Printf("%d. %s  (%.2f)\n", i+1, t.Title, t.TrendingScore)
			fmt.Printf("   %d views · %d shares · %.0f%% engagement\n",
				t.ViewCount, t.ShareCount, t.EngagementRate*100)
		}
		return nil
	},
}

var relatedCmd = &cobra.Command{
	Use:   "related <article-id>",
	Short: "Show articles related to one article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		ref, ok := e.lib.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown article %q", args[0])
		}

		limit := flagRelatedLimit
		if limit <= 0 {
			limit = e.cfg.GetRelatedSize()
		}

		recs := e.disc.Related(ref, limit)
		if len(recs) == 0 {
			fmt.Println("No related articles.")
			return nil
		}
		for i, r := range recs {
			fmt.Printf("%d. %s  (%.1f)\n", i+1, r.Article.Title, r.Score)
			fmt.Printf("   %s\n", r.Reason)
		}
		return nil
	},
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Show curated article collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		for _, c := range e.disc.Collections() {
			fmt.Printf("%s · %s\n", c.Title, c.Description)
			for _, a := range c.Articles {
				fmt.Printf("  · %s (%s)\n", a.Title, a.Difficulty)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	trendingCmd.Flags().IntVar(&flagTrendingLimit, "limit", 0, "number of articles (default from config)")
	relatedCmd.Flags().IntVar(&flagRelatedLimit, "limit", 0, "number of articles (default from config)")
}
