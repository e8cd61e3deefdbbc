// Package history holds the pagination and filter state for the review flow.
// Filters are server-side query parameters; changing any of them resets
// pagination to the first page.
package history

import (
	"time"

	"github.com/abhisek/codecade/internal/api"
)

// DefaultPageSize is the number of challenges requested per page.
const DefaultPageSize = 10

// SearchDebounce is how long the search input must rest before a request
// fires. Keystrokes inside the window never reach the network.
const SearchDebounce = 400 * time.Millisecond

// Pager tracks the requested slice of history.
type Pager struct {
	page  int
	limit int
	total int

	sort       string
	difficulty string
	search     string
}

// NewPager creates a pager with the default page size, sorted newest first.
func NewPager() *Pager {
	return &Pager{limit: DefaultPageSize, sort: api.SortNewest}
}

// Query returns the server query for the current page and filters.
func (p *Pager) Query() api.HistoryQuery {
	return api.HistoryQuery{
		Limit:      p.limit,
		Offset:     p.page * p.limit,
		Sort:       p.sort,
		Difficulty: p.difficulty,
		Search:     p.search,
	}
}

// SetTotal records the server-reported total used for page math.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
}

// Page returns the zero-based current page.
func (p *Pager) Page() int { return p.page }

// PageCount returns the number of pages for the known total.
func (p *Pager) PageCount() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.limit - 1) / p.limit
}

// NextPage advances one page. Returns false at the last page.
func (p *Pager) NextPage() bool {
	if p.page+1 >= p.PageCount() {
		return false
	}
	p.page++
	return true
}

// PrevPage steps back one page. Returns false at the first page.
func (p *Pager) PrevPage() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	return true
}

// SetSort changes the sort order and resets to the first page. Returns
// whether anything changed.
func (p *Pager) SetSort(sort string) bool {
	if p.sort == sort {
		return false
	}
	p.sort = sort
	p.page = 0
	return true
}

// ToggleSort flips between newest and oldest first.
func (p *Pager) ToggleSort() {
	if p.sort == api.SortNewest {
		p.sort = api.SortOldest
	} else {
		p.sort = api.SortNewest
	}
	p.page = 0
}

// Sort returns the active sort order.
func (p *Pager) Sort() string { return p.sort }

// CycleDifficulty rotates the difficulty filter through
// all → easy → medium → hard → all and resets to the first page.
func (p *Pager) CycleDifficulty() {
	switch p.difficulty {
	case "":
		p.difficulty = api.DifficultyEasy
	case api.DifficultyEasy:
		p.difficulty = api.DifficultyMedium
	case api.DifficultyMedium:
		p.difficulty = api.DifficultyHard
	default:
		p.difficulty = ""
	}
	p.page = 0
}

// Difficulty returns the active difficulty filter, empty for all.
func (p *Pager) Difficulty() string { return p.difficulty }

// SetSearch updates the free-text filter and resets to the first page.
// Returns whether the query actually changed, so settled debounce ticks for
// an unchanged value do not refetch.
func (p *Pager) SetSearch(search string) bool {
	if p.search == search {
		return false
	}
	p.search = search
	p.page = 0
	return true
}

// Search returns the active free-text filter.
func (p *Pager) Search() string { return p.search }
