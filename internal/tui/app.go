package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptdeck/promptdeck/internal/bookmarks"
	"github.com/promptdeck/promptdeck/internal/browser"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/corpus"
	"github.com/promptdeck/promptdeck/internal/discover"
	"github.com/promptdeck/promptdeck/internal/search"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeTrending
	modeHelp
)

type App struct {
	cfg    *config.Config
	lib    *corpus.Corpus
	engine *search.Engine
	disc   *discover.Engine
	store  *bookmarks.Store

	results     []search.Result
	suggestions []string
	elapsed     time.Duration
	trending    []discover.TrendingArticle

	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model

	// activeQuery is the last applied query; categoryIdx cycles the
	// category filter (0 = all).
	activeQuery string
	categoryIdx int

	searching bool
	err       error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg    *config.Config
	Lib    *corpus.Corpus
	Engine *search.Engine
	Disc   *discover.Engine
	Store  *bookmarks.Store
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search the library..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:         opts.Cfg,
		lib:         opts.Lib,
		engine:      opts.Engine,
		disc:        opts.Disc,
		store:       opts.Store,
		searchInput: ti,
		spinner:     sp,
	}
}

func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return a.searchCmd("")
}

func (a *App) filters() search.Filters {
	var f search.Filters
	if a.categoryIdx > 0 && a.categoryIdx <= len(a.lib.Categories) {
		f.Category = a.lib.Categories[a.categoryIdx-1].ID
	}
	return f
}

// searchCmd captures the query and filter state into the closure so a
// superseding search never races the one in flight.
func (a *App) searchCmd(query string) tea.Cmd {
	engine := a.engine
	f := a.filters()
	return func() tea.Msg {
		return resultsMsg{resp: engine.Search(query, f)}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case resultsMsg:
		a.searching = false
		a.results = msg.resp.Results
		a.suggestions = msg.resp.Suggestions
		a.elapsed = msg.resp.Elapsed
		if a.cursor >= len(a.results) {
			a.cursor = max(0, len(a.results)-1)
		}
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.searching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeTrending:
		return a.handleTrendingKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "b":
		if a.cursor < len(a.results) {
			a.store.Toggle(a.results[a.cursor].Article)
		}
		return a, nil
	case "c":
		a.categoryIdx = (a.categoryIdx + 1) % (len(a.lib.Categories) + 1)
		return a, a.startSearch(a.activeQuery)
	case "t":
		a.trending = a.disc.Trending(a.cfg.GetTrendingSize())
		a.cursor = 0
		a.mode = modeTrending
		return a, nil
	case "o", "enter":
		if a.cursor < len(a.results) {
			return a, openBrowserCmd(a.cfg.ArticleURL(a.results[a.cursor].Article.Path))
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.SetValue(a.activeQuery)
		a.searchInput.Focus()
		return a, textinput.Blink
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, a.startSearch(a.searchInput.Value())
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Live results while typing
	return a, tea.Batch(cmd, a.startSearch(a.searchInput.Value()))
}

func (a *App) startSearch(query string) tea.Cmd {
	a.activeQuery = query
	a.searching = true
	a.cursor = 0
	return tea.Batch(a.searchCmd(query), a.spinner.Tick)
}

func (a *App) handleTrendingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "t", "q":
		a.mode = modeNormal
		a.cursor = 0
		return a, nil
	case "j", "down":
		if a.cursor < len(a.trending)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "b":
		if a.cursor < len(a.trending) {
			a.store.Toggle(a.trending[a.cursor].Article)
		}
		return a, nil
	case "o", "enter":
		if a.cursor < len(a.trending) {
			return a, openBrowserCmd(a.cfg.ArticleURL(a.trending[a.cursor].Path))
		}
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	header := a.renderHeader()
	status := renderStatusBar(len(a.results), a.store.Stats().Total, a.elapsedLabel(), a.width, a.mode == modeSearch)

	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(status) - 2

	var body string
	switch a.mode {
	case modeTrending:
		body = renderTrending(a.trending, a.cursor, bodyHeight, a.width-4)
	case modeHelp:
		body = a.renderHelp(bodyHeight)
	default:
		body = a.renderPanes(bodyHeight)
	}

	return header + "\n" + body + "\n" + status
}

func (a *App) renderHeader() string {
	title := headerStyle.Render("promptdeck")
	label := "library"
	switch a.mode {
	case modeTrending:
		label = "trending"
	case modeHelp:
		label = "help"
	}
	if a.categoryIdx > 0 && a.categoryIdx <= len(a.lib.Categories) {
		label += " · " + a.lib.Categories[a.categoryIdx-1].Name
	}
	if a.err != nil {
		label = "error: " + a.err.Error()
	}

	meta := headerMetaStyle.Width(a.width - lipgloss.Width(title) - 1).Render(label + " ")
	line := title + meta

	if a.mode == modeSearch {
		input := a.searchInput.View()
		if a.searching {
			input += " " + a.spinner.View()
		}
		if len(a.suggestions) > 0 {
			input += "  " + suggestionStyle.Render(strings.Join(a.suggestions, " · "))
		}
		return line + "\n" + input
	}
	return line
}

func (a *App) renderPanes(height int) string {
	listWidth := a.width * 2 / 5
	previewWidth := a.width - listWidth - 4

	listStyle := listPaneStyle
	previewStyle := previewPaneStyle
	if a.focus == focusList {
		listStyle = listPaneActiveStyle
	} else {
		previewStyle = previewPaneActiveStyle
	}

	list := renderList(a.results, a.store.IsBookmarked, a.cursor, height, listWidth-2)

	var preview string
	if a.cursor < len(a.results) {
		r := a.results[a.cursor]
		related := a.disc.Related(r.Article, a.cfg.GetRelatedSize())
		preview = renderPreview(r, related, a.store.IsBookmarked(r.Article.ID), previewWidth-2)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Width(listWidth).Height(height).Render(list),
		previewStyle.Width(previewWidth).Height(height).Render(preview),
	)
}

func (a *App) renderHelp(height int) string {
	help := `
  j/k     move
  tab     switch pane
  /       search (live results)
  c       cycle category filter
  b       save / unsave article
  t       trending view
  o/enter open article in browser
  ?       toggle help
  q       quit
`
	return centerText("", a.width, 0) + previewBodyStyle.Height(height).Render(help)
}

func (a *App) elapsedLabel() string {
	if a.activeQuery == "" {
		return ""
	}
	return fmt.Sprintf("%.1fms", float64(a.elapsed.Microseconds())/1000)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
