package discover

import (
	"sort"
	"time"

	"github.com/promptdeck/promptdeck/internal/corpus"
	"github.com/promptdeck/promptdeck/internal/engagement"
)

// Composite trending weights. Views and shares are normalized against
// the corpus-wide maximum before weighting.
const (
	weightViews      = 0.40
	weightShares     = 0.30
	weightEngagement = 0.20
	weightRecency    = 0.10

	recencyWindowDays    = 365
	defaultTrendingLimit = 6
)

// TrendingArticle is an article annotated with its engagement signals
// and composite trending score.
type TrendingArticle struct {
	corpus.Article
	TrendingScore  float64
	ViewCount      int
	ShareCount     int
	EngagementRate float64
}

// Engine derives trending, related-content, and curated views over the
// corpus. Engagement signals come from an injected Source; unknown ids
// score zero rather than erroring.
type Engine struct {
	articles []corpus.Article
	signals  engagement.Source
	now      func() time.Time
}

func New(c *corpus.Corpus, signals engagement.Source) *Engine {
	return &Engine{articles: c.Articles, signals: signals, now: time.Now}
}

// Trending returns the corpus ranked by composite trending score,
// truncated to limit (default 6). Ties keep corpus order.
func (e *Engine) Trending(limit int) []TrendingArticle {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	maxViews, maxShares := e.maxSignals()

	ranked := make([]TrendingArticle, 0, len(e.articles))
	for _, a := range e.articles {
		s := e.signals.Stats(a.ID)
		ranked = append(ranked, TrendingArticle{
			Article:        a,
			TrendingScore:  e.score(a, s, maxViews, maxShares),
			ViewCount:      s.Views,
			ShareCount:     s.Shares,
			EngagementRate: s.EngagementRate,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TrendingScore > ranked[j].TrendingScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (e *Engine) maxSignals() (maxViews, maxShares int) {
	for _, a := range e.articles {
		s := e.signals.Stats(a.ID)
		if s.Views > maxViews {
			maxViews = s.Views
		}
		if s.Shares > maxShares {
			maxShares = s.Shares
		}
	}
	return maxViews, maxShares
}

func (e *Engine) score(a corpus.Article, s engagement.Stats, maxViews, maxShares int) float64 {
	return normalize(s.Views, maxViews)*weightViews +
		normalize(s.Shares, maxShares)*weightShares +
		s.EngagementRate*weightEngagement +
		e.recency(a)*weightRecency
}

func normalize(v, max int) float64 {
	if max == 0 {
		return 0
	}
	return float64(v) / float64(max)
}

// recency decays linearly from 1.0 at publication to 0.0 after a year.
// Unparsable dates fall off the end of the window.
func (e *Engine) recency(a corpus.Article) float64 {
	published := a.PublishedTime()
	if published.IsZero() {
		return 0
	}
	days := e.now().Sub(published).Hours() / 24
	r := 1 - days/recencyWindowDays
	if r < 0 {
		return 0
	}
	return r
}
