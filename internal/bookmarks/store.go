package bookmarks

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/promptdeck/promptdeck/internal/corpus"
)

// Record is one saved article in the reading list. The JSON field
// names are the persisted wire format.
type Record struct {
	PostID       string    `json:"postId"`
	Title        string    `json:"title"`
	Path         string    `json:"path"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"`
	ReadTime     string    `json:"readTime"`
	Author       string    `json:"author"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
	Tags         []string  `json:"tags"`
}

// Sort orders accepted by Filtered.
const (
	SortRecent   = "recent"
	SortTitle    = "title"
	SortCategory = "category"
)

const recentStatsLimit = 5

// Stats aggregates the reading list for display.
type Stats struct {
	Total        int
	ByCategory   map[string]int
	ByDifficulty map[string]int
	Recent       []Record
}

// Summary is the condensed reading-list overview.
type Summary struct {
	Total          int
	TotalReadTime  string
	Categories     int
	LastBookmarked time.Time
}

// Store owns the reading list. Every mutation writes the full set
// through to the injected Persistence; a failed write is logged and
// the in-memory state is kept.
type Store struct {
	records []Record
	persist Persistence
	log     *zap.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore loads the persisted reading list. A load failure is treated
// as an empty list, never as an error.
func NewStore(p Persistence, opts ...Option) *Store {
	s := &Store{persist: p, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	records, err := p.Load()
	if err != nil {
		s.log.Warn("loading reading list, starting empty", zap.Error(err))
		records = nil
	}
	s.records = records
	return s
}

// IsBookmarked reports whether the article is in the reading list.
func (s *Store) IsBookmarked(postID string) bool {
	for _, r := range s.records {
		if r.PostID == postID {
			return true
		}
	}
	return false
}

// Add saves an article at the front of the reading list. It returns
// false without mutating anything if the article is already saved.
func (s *Store) Add(a corpus.Article) bool {
	if s.IsBookmarked(a.ID) {
		return false
	}
	rec := Record{
		PostID:       a.ID,
		Title:        a.Title,
		Path:         a.Path,
		Category:     a.Category,
		Difficulty:   string(a.Difficulty),
		ReadTime:     a.ReadTime,
		Author:       a.Author.Name,
		BookmarkedAt: s.now(),
		Tags:         append([]string(nil), a.Tags...),
	}
	s.records = append([]Record{rec}, s.records...)
	s.save()
	return true
}

// Remove deletes a saved article, reporting whether one was removed.
func (s *Store) Remove(postID string) bool {
	for i, r := range s.records {
		if r.PostID == postID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

// Toggle adds or removes the article and returns the new bookmarked
// state.
func (s *Store) Toggle(a corpus.Article) bool {
	if s.IsBookmarked(a.ID) {
		s.Remove(a.ID)
		return false
	}
	s.Add(a)
	return true
}

// All returns the reading list, most recently added first.
func (s *Store) All() []Record {
	return append([]Record(nil), s.records...)
}

// Filtered narrows the list by category and difficulty ("" or "all"
// match everything) and sorts by one of the Sort orders.
func (s *Store) Filtered(category, difficulty, sortBy string) []Record {
	var out []Record
	for _, r := range s.records {
		if category != "" && category != "all" && r.Category != category {
			continue
		}
		if difficulty != "" && difficulty != "all" && r.Difficulty != difficulty {
			continue
		}
		out = append(out, r)
	}

	switch sortBy {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].BookmarkedAt.After(out[j].BookmarkedAt) })
	}
	return out
}

// Search matches the query case-insensitively against title, author,
// tags, and category. An empty query returns the whole list.
func (s *Store) Search(query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}
	var out []Record
	for _, r := range s.records {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Author), q) ||
			strings.Contains(strings.ToLower(r.Category), q) ||
			tagsContain(r.Tags, q) {
			out = append(out, r)
		}
	}
	return out
}

func tagsContain(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Stats returns per-category and per-difficulty counts plus the five
// most recent bookmarks.
func (s *Store) Stats() Stats {
	st := Stats{
		Total:        len(s.records),
		ByCategory:   make(map[string]int),
		ByDifficulty: make(map[string]int),
	}
	for _, r := range s.records {
		st.ByCategory[r.Category]++
		st.ByDifficulty[r.Difficulty]++
	}

	recent := append([]Record(nil), s.records...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].BookmarkedAt.After(recent[j].BookmarkedAt)
	})
	if len(recent) > recentStatsLimit {
		recent = recent[:recentStatsLimit]
	}
	st.Recent = recent
	return st
}

// Clear empties the reading list.
func (s *Store) Clear() {
	s.records = nil
	s.save()
}

// Export serializes the full reading list to a JSON array. An empty
// list exports as [], never null, so the output always re-imports.
func (s *Store) Export() string {
	records := s.records
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		// Records contain only marshalable types; this cannot fire.
		return "[]"
	}
	return string(data)
}

// Import merges a JSON export into the reading list. Entries missing a
// postId, title, path, or bookmarkedAt are dropped; entries already
// present are never overwritten. Returns false, mutating nothing, when
// the input is not a valid JSON array.
func (s *Store) Import(data string) bool {
	if !strings.HasPrefix(strings.TrimSpace(data), "[") {
		return false
	}
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return false
	}

	present := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		present[r.PostID] = true
	}

	var incoming []Record
	for _, m := range raw {
		var r Record
		if err := json.Unmarshal(m, &r); err != nil {
			continue
		}
		if r.PostID == "" || r.Title == "" || r.Path == "" || r.BookmarkedAt.IsZero() {
			continue
		}
		if present[r.PostID] {
			continue
		}
		present[r.PostID] = true
		incoming = append(incoming, r)
	}

	if len(incoming) > 0 {
		s.records = append(incoming, s.records...)
		s.save()
	}
	return true
}

// Summary aggregates the reading list into the condensed overview
// shown on the reading-list page.
func (s *Store) Summary() Summary {
	sum := Summary{Total: len(s.records)}

	minutes := 0
	cats := make(map[string]bool)
	for _, r := range s.records {
		minutes += leadingMinutes(r.ReadTime)
		cats[r.Category] = true
		if r.BookmarkedAt.After(sum.LastBookmarked) {
			sum.LastBookmarked = r.BookmarkedAt
		}
	}
	sum.TotalReadTime = formatMinutes(minutes)
	sum.Categories = len(cats)
	return sum
}

// leadingMinutes extracts the leading integer of a read-time display
// string such as "5 min read".
func leadingMinutes(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	found := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		found = true
	}
	if !found {
		return 0
	}
	return n
}

func formatMinutes(total int) string {
	if total >= 60 {
		return fmt.Sprintf("%dh %dm", total/60, total%60)
	}
	return fmt.Sprintf("%dm", total)
}

// save writes the full set through to persistence. Failures are logged
// and never roll back the in-memory list.
func (s *Store) save() {
	if err := s.persist.Save(s.records); err != nil {
		s.log.Warn("persisting reading list", zap.Error(err))
	}
}
