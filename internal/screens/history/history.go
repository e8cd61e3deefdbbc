// Package history is the review flow: a paginated, server-filtered list of
// past challenges with bookmarking, sharing, export, and in-place review.
package history

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/export"
	hist "github.com/abhisek/codecade/internal/history"
	"github.com/abhisek/codecade/internal/latest"
	"github.com/abhisek/codecade/internal/quiz"
	"github.com/abhisek/codecade/internal/screen"
	"github.com/abhisek/codecade/internal/share"
	"github.com/abhisek/codecade/internal/ui/components"
	"github.com/abhisek/codecade/internal/ui/layout"
	"github.com/abhisek/codecade/internal/ui/theme"
)

// pageLoadedMsg carries one fetched page, tagged so a stale response for an
// abandoned filter state is dropped.
type pageLoadedMsg struct {
	seq  uint64
	page *api.HistoryPage
	err  error
}

// bookmarksLoadedMsg carries the initial bookmark set.
type bookmarksLoadedMsg struct {
	set map[int]bool
	err error
}

// bookmarkToggledMsg carries the server state for one toggled bookmark. Only
// the named row is updated; the page is not refetched.
type bookmarkToggledMsg struct {
	challengeID int
	bookmarked  bool
	err         error
}

// shareLinkMsg carries a fetched share URL, already copied or not.
type shareLinkMsg struct {
	err error
}

// exportDoneMsg carries the export outcome.
type exportDoneMsg struct {
	result *export.Result
	err    error
}

// searchSettledMsg fires after the debounce window. Only the latest scheduled
// tick applies its text.
type searchSettledMsg struct {
	token int
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// HistoryScreen drives the history review flow.
type HistoryScreen struct {
	client *api.Client
	theme  *theme.Theme

	pager     *hist.Pager
	rows      []api.Challenge
	bookmarks map[int]bool
	cursor    int
	loading   bool
	spinner   components.Spinner
	seq       *latest.Tracker

	search      components.TextInput
	searchToken int

	review *quiz.Attempt // non-nil while a row is expanded

	note   string
	errMsg string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.ThemeAware = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(client *api.Client, th *theme.Theme) *HistoryScreen {
	return &HistoryScreen{
		client:    client,
		theme:     th,
		pager:     hist.NewPager(),
		bookmarks: make(map[int]bool),
		search:    components.NewTextInput(th, "Search title or topic", 60),
		seq:       &latest.Tracker{},
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return tea.Batch(h.fetchPage(), h.fetchBookmarks(), spinnerTick())
}

func (h *HistoryScreen) Title() string {
	return "History"
}

// SetTheme swaps the color scheme.
func (h *HistoryScreen) SetTheme(th *theme.Theme) {
	h.theme = th
}

func (h *HistoryScreen) fetchPage() tea.Cmd {
	seq := h.seq.Next()
	h.loading = true
	client := h.client
	query := h.pager.Query()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		page, err := client.History(ctx, query)
		return pageLoadedMsg{seq: seq, page: page, err: err}
	}
}

func (h *HistoryScreen) fetchBookmarks() tea.Cmd {
	client := h.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		set, err := client.Bookmarks(ctx)
		return bookmarksLoadedMsg{set: set, err: err}
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		if !h.seq.Accept(msg.seq) {
			return h, nil
		}
		h.loading = false
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.rows = msg.page.Challenges
		h.pager.SetTotal(msg.page.Total)
		if h.cursor >= len(h.rows) {
			h.cursor = 0
		}
		return h, nil

	case bookmarksLoadedMsg:
		if msg.err == nil {
			h.bookmarks = msg.set
		}
		return h, nil

	case bookmarkToggledMsg:
		if msg.err != nil {
			h.note = "Bookmark toggle failed."
			return h, nil
		}
		h.bookmarks[msg.challengeID] = msg.bookmarked
		return h, nil

	case shareLinkMsg:
		if msg.err != nil {
			h.note = "Could not copy the share link."
		} else {
			h.note = "Share link copied!"
		}
		return h, nil

	case exportDoneMsg:
		if msg.err != nil {
			h.note = "Export failed: " + msg.err.Error()
		} else {
			h.note = "Exported " + msg.result.Path
		}
		return h, nil

	case searchSettledMsg:
		if msg.token != h.searchToken {
			return h, nil
		}
		if h.pager.SetSearch(h.search.Value()) {
			return h, h.fetchPage()
		}
		return h, nil

	case spinnerTickMsg:
		if h.loading {
			h.spinner.Advance()
			return h, spinnerTick()
		}
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}

	if h.search.Focused() {
		var cmd tea.Cmd
		h.search, cmd = h.search.Update(msg)
		return h, cmd
	}

	return h, nil
}

func (h *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.search.Focused() {
		switch msg.String() {
		case "enter", "tab":
			h.search.Blur()
			return h, nil
		}
		var cmd tea.Cmd
		h.search, cmd = h.search.Update(msg)
		h.searchToken++
		token := h.searchToken
		debounce := tea.Tick(hist.SearchDebounce, func(time.Time) tea.Msg {
			return searchSettledMsg{token: token}
		})
		return h, tea.Batch(cmd, debounce)
	}

	if h.review != nil {
		switch msg.String() {
		case "enter", "q":
			h.review = nil
		}
		return h, nil
	}

	h.note = ""
	switch msg.String() {
	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
	case "down", "j":
		if h.cursor < len(h.rows)-1 {
			h.cursor++
		}
	case "left":
		if h.pager.PrevPage() {
			return h, h.fetchPage()
		}
	case "right":
		if h.pager.NextPage() {
			return h, h.fetchPage()
		}
	case "/":
		return h, h.search.Focus()
	case "s":
		h.pager.ToggleSort()
		return h, h.fetchPage()
	case "d":
		h.pager.CycleDifficulty()
		return h, h.fetchPage()
	case "b":
		return h, h.toggleBookmark()
	case "y":
		return h, h.copyShareLink()
	case "J":
		return h, h.exportPage(export.FormatJSON)
	case "C":
		return h, h.exportPage(export.FormatCSV)
	case "H":
		return h, h.exportPage(export.FormatHTML)
	case "enter":
		if h.cursor < len(h.rows) {
			ch := h.rows[h.cursor]
			h.review = quiz.New(&ch, true)
		}
	}
	return h, nil
}

func (h *HistoryScreen) toggleBookmark() tea.Cmd {
	if h.cursor >= len(h.rows) {
		return nil
	}
	client := h.client
	id := h.rows[h.cursor].ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		bookmarked, err := client.ToggleBookmark(ctx, id)
		return bookmarkToggledMsg{challengeID: id, bookmarked: bookmarked, err: err}
	}
}

func (h *HistoryScreen) copyShareLink() tea.Cmd {
	if h.cursor >= len(h.rows) {
		return nil
	}
	client := h.client
	id := h.rows[h.cursor].ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		link, err := client.ShareLink(ctx, id)
		if err == nil {
			err = share.Copy(link)
		}
		return shareLinkMsg{err: err}
	}
}

func (h *HistoryScreen) exportPage(format export.Format) tea.Cmd {
	rows := h.rows
	return func() tea.Msg {
		result, err := export.Write(rows, format, "", time.Now())
		return exportDoneMsg{result: result, err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(components.SpinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	if h.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
		}
	}
	if h.review != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Collapse"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Page"},
		{Key: "/", Description: "Search"},
		{Key: "S", Description: "Sort"},
		{Key: "D", Description: "Difficulty"},
		{Key: "B", Description: "Bookmark"},
		{Key: "Y", Description: "Share"},
		{Key: "J/C/H", Description: "Export"},
	}
}
