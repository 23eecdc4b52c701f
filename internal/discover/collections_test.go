package discover

import (
	"testing"

	"github.com/promptdeck/promptdeck/internal/corpus"
	"github.com/promptdeck/promptdeck/internal/engagement"
)

func TestCollectionsGrouping(t *testing.T) {
	articles := []corpus.Article{
		{ID: "b1", Difficulty: corpus.Beginner},
		{ID: "b2", Difficulty: corpus.Beginner},
		{ID: "adv", Difficulty: corpus.Advanced},
		{ID: "prod", Difficulty: corpus.Intermediate, Tags: []string{"production"}},
		{ID: "safe", Difficulty: corpus.Intermediate, Tags: []string{"safety", "guardrails"}},
	}

	got := testEngine(articles, engagement.Table{}).Collections()

	byID := map[string]Collection{}
	for _, c := range got {
		byID[c.ID] = c
	}

	gs, ok := byID["getting-started"]
	if !ok {
		t.Fatal("expected getting-started collection")
	}
	if len(gs.Articles) != 2 {
		t.Errorf("getting-started: expected 2 articles, got %d", len(gs.Articles))
	}

	if c, ok := byID["production-ready"]; !ok || len(c.Articles) != 1 || c.Articles[0].ID != "prod" {
		t.Errorf("production-ready: expected [prod], got %+v", c.Articles)
	}
	if c, ok := byID["safety-ethics"]; !ok || len(c.Articles) != 1 || c.Articles[0].ID != "safe" {
		t.Errorf("safety-ethics: expected [safe], got %+v", c.Articles)
	}
	if c, ok := byID["advanced-techniques"]; !ok || len(c.Articles) != 1 || c.Articles[0].ID != "adv" {
		t.Errorf("advanced-techniques: expected [adv], got %+v", c.Articles)
	}
}

func TestCollectionsTruncatedToThree(t *testing.T) {
	var articles []corpus.Article
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		articles = append(articles, corpus.Article{ID: id, Difficulty: corpus.Beginner})
	}

	got := testEngine(articles, engagement.Table{}).Collections()
	for _, c := range got {
		if len(c.Articles) > collectionSize {
			t.Errorf("%s: expected at most %d articles, got %d", c.ID, collectionSize, len(c.Articles))
		}
	}
}

func TestEmptyCollectionsOmitted(t *testing.T) {
	articles := []corpus.Article{
		{ID: "only", Difficulty: corpus.Beginner},
	}

	got := testEngine(articles, engagement.Table{}).Collections()
	if len(got) != 1 || got[0].ID != "getting-started" {
		t.Errorf("expected only getting-started, got %d collections", len(got))
	}
}
