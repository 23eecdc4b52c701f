package discover

import (
	"testing"

	"github.com/promptdeck/promptdeck/internal/corpus"
	"github.com/promptdeck/promptdeck/internal/engagement"
)

func TestRelatedFactorScoring(t *testing.T) {
	ref := corpus.Article{
		ID:         "ref",
		Title:      "Advanced Prompt Patterns",
		Category:   "techniques",
		Difficulty: corpus.Advanced,
		Tags:       []string{"patterns", "prompt design"},
		Author:     corpus.Author{Name: "Daniel Reyes"},
	}
	// Same category and difficulty only; old enough that the trending
	// boost contributes nothing.
	cand := corpus.Article{
		ID:         "cand",
		Title:      "Unrelated Heading Words",
		Category:   "techniques",
		Difficulty: corpus.Advanced,
		Author:     corpus.Author{Name: "Someone Else"},
	}

	got := testEngine([]corpus.Article{ref, cand}, engagement.Table{}).Related(ref, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	want := float64(pointsSameCategory + pointsSameDifficulty)
	if got[0].Score != want {
		t.Errorf("expected score %v, got %v", want, got[0].Score)
	}
	if got[0].Reason != "Same category, Same difficulty level" {
		t.Errorf("unexpected reason %q", got[0].Reason)
	}
}

func TestRelatedExcludesReference(t *testing.T) {
	ref := corpus.Article{ID: "ref", Category: "techniques"}
	got := testEngine([]corpus.Article{ref}, engagement.Table{}).Related(ref, 5)
	if len(got) != 0 {
		t.Errorf("expected no recommendations for single-article corpus, got %d", len(got))
	}
}

func TestRelatedSharedTagsCount(t *testing.T) {
	ref := corpus.Article{
		ID:         "ref",
		Category:   "a",
		Difficulty: corpus.Beginner,
		Author:     corpus.Author{Name: "r"},
		Tags:       []string{"prompt design", "safety"},
	}
	cand := corpus.Article{
		ID:         "cand",
		Category:   "b",
		Difficulty: corpus.Advanced,
		Author:     corpus.Author{Name: "c"},
		Tags:       []string{"design", "safety checks", "unrelated"},
	}

	// "design" is contained in "prompt design"; "safety checks"
	// contains "safety".
	got := testEngine([]corpus.Article{ref, cand}, engagement.Table{}).Related(ref, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	want := float64(2 * pointsPerSharedTag)
	if got[0].Score != want {
		t.Errorf("expected score %v, got %v", want, got[0].Score)
	}
	if got[0].Reason != "2 shared topics" {
		t.Errorf("unexpected reason %q", got[0].Reason)
	}
}

func TestRelatedTitleWordOverlap(t *testing.T) {
	ref := corpus.Article{
		ID: "ref", Title: "Advanced Prompt Patterns",
		Category: "a", Difficulty: corpus.Beginner, Author: corpus.Author{Name: "r"},
	}
	cand := corpus.Article{
		ID: "cand", Title: "Prompt Patterns Guide",
		Category: "b", Difficulty: corpus.Advanced, Author: corpus.Author{Name: "c"},
	}

	got := testEngine([]corpus.Article{ref, cand}, engagement.Table{}).Related(ref, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	// "prompt" and "patterns" shared; "Guide" is not in the reference.
	want := float64(2 * pointsPerTitleWord)
	if got[0].Score != want {
		t.Errorf("expected score %v, got %v", want, got[0].Score)
	}
	if got[0].Reason != "Similar title" {
		t.Errorf("unexpected reason %q", got[0].Reason)
	}
}

func TestRelatedCodeAndDownloadFactors(t *testing.T) {
	ref := corpus.Article{
		ID: "ref", HasCodeExamples: true, HasDownloads: true,
		Category: "a", Difficulty: corpus.Beginner, Author: corpus.Author{Name: "r"},
	}
	cand := corpus.Article{
		ID: "cand", HasCodeExamples: true, HasDownloads: true,
		Category: "b", Difficulty: corpus.Advanced, Author: corpus.Author{Name: "c"},
	}

	got := testEngine([]corpus.Article{ref, cand}, engagement.Table{}).Related(ref, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	want := float64(pointsBothCode + pointsBothDownloads)
	if got[0].Score != want {
		t.Errorf("expected score %v, got %v", want, got[0].Score)
	}
}

func TestRelatedReasonUsesTopTwoFactors(t *testing.T) {
	ref := corpus.Article{
		ID:         "ref",
		Category:   "techniques",
		Difficulty: corpus.Advanced,
		Author:     corpus.Author{Name: "Daniel Reyes"},
	}
	cand := corpus.Article{
		ID:         "cand",
		Category:   "techniques",
		Difficulty: corpus.Advanced,
		Author:     corpus.Author{Name: "Daniel Reyes"},
	}

	got := testEngine([]corpus.Article{ref, cand}, engagement.Table{}).Related(ref, 5)
	if got[0].Reason != "Same category, Same author" {
		t.Errorf("expected two strongest factors, got %q", got[0].Reason)
	}
}

func TestRelatedTrendingBoostAndFallbackReason(t *testing.T) {
	ref := corpus.Article{ID: "ref", Category: "a", Difficulty: corpus.Beginner}
	cand := corpus.Article{ID: "cand", Category: "b", Difficulty: corpus.Advanced, Author: corpus.Author{Name: "x"}}

	signals := engagement.Table{"cand": {Views: 100, Shares: 10, EngagementRate: 0.5}}
	got := testEngine([]corpus.Article{ref, cand}, signals).Related(ref, 5)

	if len(got) != 1 {
		t.Fatalf("expected trending boost to qualify the article, got %d results", len(got))
	}
	if got[0].Reason != "Related content" {
		t.Errorf("expected fallback reason, got %q", got[0].Reason)
	}
	if got[0].Score <= 0 {
		t.Errorf("expected positive score from trending boost, got %v", got[0].Score)
	}
}

func TestRelatedSortAndLimit(t *testing.T) {
	ref := corpus.Article{ID: "ref", Category: "a", Difficulty: corpus.Beginner, Author: corpus.Author{Name: "w"}}
	articles := []corpus.Article{
		ref,
		{ID: "weak", Difficulty: corpus.Beginner, Author: corpus.Author{Name: "x"}},                  // 15
		{ID: "strong", Category: "a", Difficulty: corpus.Beginner, Author: corpus.Author{Name: "y"}}, // 45
		{ID: "mid", Category: "a", Author: corpus.Author{Name: "z"}},                                 // 30
	}

	got := testEngine(articles, engagement.Table{}).Related(ref, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].Article.ID != "strong" || got[1].Article.ID != "mid" {
		t.Errorf("expected [strong mid], got [%s %s]", got[0].Article.ID, got[1].Article.ID)
	}
}

func TestRelatedDefaultLimit(t *testing.T) {
	ref := corpus.Article{ID: "ref", Category: "a"}
	articles := []corpus.Article{ref}
	for _, id := range []string{"b", "c", "d", "e", "f"} {
		articles = append(articles, corpus.Article{ID: id, Category: "a", Author: corpus.Author{Name: id}})
	}

	got := testEngine(articles, engagement.Table{}).Related(ref, 0)
	if len(got) != defaultRelatedLimit {
		t.Errorf("expected default limit %d, got %d", defaultRelatedLimit, len(got))
	}
}
