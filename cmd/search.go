package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/search"
)

var (
	flagSearchCategory   string
	flagSearchDifficulty string
	flagSearchAuthor     string
	flagSearchTags       []string
	flagSearchCode       bool
	flagSearchDownloads  bool
	flagSearchLimit      int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the content library",
	Long: `Search the library with relevance ranking.

Without a query, lists every article passing the filters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		f := search.Filters{
			Category:   flagSearchCategory,
			Difficulty: flagSearchDifficulty,
			Author:     flagSearchAuthor,
			Tags:       flagSearchTags,
		}
		if cmd.Flags().Changed("code") {
			f.HasCodeExamples = &flagSearchCode
		}
		if cmd.Flags().Changed("downloads") {
			f.HasDownloads = &flagSearchDownloads
		}

		resp := e.searcher.Search(strings.Join(args, " "), f)

		if resp.Total == 0 {
			fmt.Println("No matching articles.")
			return nil
		}

		results := resp.Results
		if flagSearchLimit > 0 && len(results) > flagSearchLimit {
			results = results[:flagSearchLimit]
		}

		for i, r := range results {
			fmt.Printf("%d. %s", i+1, r.Article.Title)
			if r.Score > 0 {
				fmt.Printf("  (score %d)", r.Score)
			}
			fmt.Println()
			fmt.Printf("   %s · %s · %s · %s\n",
				e.lib.CategoryName(r.Article.Category), r.Article.Difficulty,
				r.Article.ReadTime, r.Article.Author.Name)
			fmt.Printf("   %s\n", r.Excerpt)
			if len(r.MatchedFields) > 0 {
				fmt.Printf("   matched: %s\n", strings.Join(r.MatchedFields, ", "))
			}
			fmt.Println()
		}

		fmt.Printf("%d result(s) in %v\n", resp.Total, resp.Elapsed)
		if len(resp.Suggestions) > 0 {
			fmt.Printf("suggestions: %s\n", strings.Join(resp.Suggestions, ", "))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchCategory, "category", "all", "filter by category id")
	searchCmd.Flags().StringVar(&flagSearchDifficulty, "difficulty", "all", "filter by difficulty (Beginner, Intermediate, Advanced)")
	searchCmd.Flags().StringVar(&flagSearchAuthor, "author", "", "filter by author name substring")
	searchCmd.Flags().StringArrayVar(&flagSearchTags, "tag", nil, "filter by tag (repeatable, any match)")
	searchCmd.Flags().BoolVar(&flagSearchCode, "code", false, "only articles with (or without) code examples")
	searchCmd.Flags().BoolVar(&flagSearchDownloads, "downloads", false, "only articles with (or without) downloads")
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 0, "truncate output to the top N results")
}
