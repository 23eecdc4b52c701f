package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/bookmarks"
)

var (
	flagReadingCategory   string
	flagReadingDifficulty string
	flagReadingSort       string
	flagExportOut         string
)

var readingCmd = &cobra.Command{
	Use:   "reading",
	Short: "Manage the reading list",
}

var readingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		records := e.store.Filtered(flagReadingCategory, flagReadingDifficulty, flagReadingSort)
		if len(records) == 0 {
			fmt.Println("Reading list is empty.")
			return nil
		}
		printRecords(records)
		return nil
	},
}

var readingAddCmd = &cobra.Command{
	Use:   "add <article-id>",
	Short: "Save an article to the reading list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		a, ok := e.lib.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown article %q", args[0])
		}
		if !e.store.Add(a) {
			fmt.Printf("%s is already saved.\n", a.Title)
			return nil
		}
		fmt.Printf("Saved %s.\n", a.Title)
		return nil
	},
}

var readingRemoveCmd = &cobra.Command{
	Use:   "remove <article-id>",
	Short: "Remove an article from the reading list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		if !e.store.Remove(args[0]) {
			fmt.Printf("%s is not in the reading list.\n", args[0])
			return nil
		}
		fmt.Println("Removed.")
		return nil
	},
}

var readingSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search within the reading list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		records := e.store.Search(strings.Join(args, " "))
		if len(records) == 0 {
			fmt.Println("No matches in the reading list.")
			return nil
		}
		printRecords(records)
		return nil
	},
}

var readingStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading list statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		st := e.store.Stats()
		fmt.Printf("Saved articles: %d\n", st.Total)
		if len(st.ByCategory) > 0 {
			fmt.Println("By category:")
			for cat, n := range st.ByCategory {
				fmt.Printf("  %s: %d\n", e.lib.CategoryName(cat), n)
			}
		}
		if len(st.ByDifficulty) > 0 {
			fmt.Println("By difficulty:")
			for d, n := range st.ByDifficulty {
				fmt.Printf("  %s: %d\n", d, n)
			}
		}
		if len(st.Recent) > 0 {
			fmt.Println("Most recent:")
			for _, r := range st.Recent {
				fmt.Printf("  %s (%s)\n", r.Title, r.BookmarkedAt.Format("Jan 2 15:04"))
			}
		}
		return nil
	},
}

var readingSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the condensed reading list overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		sum := e.store.Summary()
		fmt.Printf("Saved articles: %d\n", sum.Total)
		fmt.Printf("Estimated reading time: %s\n", sum.TotalReadTime)
		fmt.Printf("Categories: %d\n", sum.Categories)
		if !sum.LastBookmarked.IsZero() {
			fmt.Printf("Last saved: %s\n", sum.LastBookmarked.Format("Jan 2, 2006 15:04"))
		}
		return nil
	},
}

var readingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved article",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		n := e.store.Stats().Total
		e.store.Clear()
		fmt.Printf("Cleared %d article(s).\n", n)
		return nil
	},
}

var readingExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the reading list as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		data := e.store.Export()
		if flagExportOut == "" {
			fmt.Println(data)
			return nil
		}
		if err := os.WriteFile(flagExportOut, []byte(data), 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("Exported to %s.\n", flagExportOut)
		return nil
	},
}

var readingImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a JSON export into the reading list",
	Long: `Merge a previously exported reading list.

Entries already present are kept as-is; malformed entries are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEnv()
		if err != nil {
			return err
		}
		defer e.close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}

		before := e.store.Stats().Total
		if !e.store.Import(string(data)) {
			return fmt.Errorf("%s is not a valid reading list export", args[0])
		}
		fmt.Printf("Imported %d new article(s).\n", e.store.Stats().Total-before)
		return nil
	},
}

func printRecords(records []bookmarks.Record) {
	for i, r := range records {
		fmt.Printf("%d. %s\n", i+1, r.Title)
		fmt.Printf("   %s · %s · %s · saved %s\n",
			r.Category, r.Difficulty, r.ReadTime, r.BookmarkedAt.Format("Jan 2"))
	}
}

func init() {
	readingListCmd.Flags().StringVar(&flagReadingCategory, "category", "all", "filter by category id")
	readingListCmd.Flags().StringVar(&flagReadingDifficulty, "difficulty", "all", "filter by difficulty")
	readingListCmd.Flags().StringVar(&flagReadingSort, "sort", bookmarks.SortRecent, "sort order: recent, title, category")
	readingExportCmd.Flags().StringVar(&flagExportOut, "out", "", "write to file instead of stdout")

	readingCmd.AddCommand(readingListCmd)
	readingCmd.AddCommand(readingAddCmd)
	readingCmd.AddCommand(readingRemoveCmd)
	readingCmd.AddCommand(readingSearchCmd)
	readingCmd.AddCommand(readingStatsCmd)
	readingCmd.AddCommand(readingSummaryCmd)
	readingCmd.AddCommand(readingClearCmd)
	readingCmd.AddCommand(readingExportCmd)
	readingCmd.AddCommand(readingImportCmd)
}
