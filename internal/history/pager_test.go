package history

import (
	"testing"

	"github.com/abhisek/codecade/internal/api"
)

func TestOffsetIsPageTimesLimit(t *testing.T) {
	p := NewPager()
	p.SetTotal(55)

	for page := 0; page < p.PageCount(); page++ {
		q := p.Query()
		if q.Offset != page*DefaultPageSize {
			t.Fatalf("page %d: offset = %d, want %d", page, q.Offset, page*DefaultPageSize)
		}
		if q.Limit != DefaultPageSize {
			t.Fatalf("page %d: limit = %d", page, q.Limit)
		}
		p.NextPage()
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{55, 6},
	}
	for _, tc := range cases {
		p := NewPager()
		p.SetTotal(tc.total)
		if got := p.PageCount(); got != tc.want {
			t.Fatalf("total %d: page count = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestNavigationBounds(t *testing.T) {
	p := NewPager()
	p.SetTotal(25) // 3 pages

	if p.PrevPage() {
		t.Fatal("cannot step before the first page")
	}
	if !p.NextPage() || !p.NextPage() {
		t.Fatal("expected two forward steps")
	}
	if p.NextPage() {
		t.Fatal("cannot step past the last page")
	}
	if p.Page() != 2 {
		t.Fatalf("expected page 2, got %d", p.Page())
	}
}

func TestFilterChangesResetPage(t *testing.T) {
	reset := []struct {
		name  string
		apply func(p *Pager)
	}{
		{"difficulty", func(p *Pager) { p.CycleDifficulty() }},
		{"search", func(p *Pager) { p.SetSearch("recursion") }},
		{"sort", func(p *Pager) { p.ToggleSort() }},
	}

	for _, tc := range reset {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPager()
			p.SetTotal(100)
			p.NextPage()
			p.NextPage()

			tc.apply(p)
			if p.Page() != 0 {
				t.Fatalf("%s change must reset to page 0, got %d", tc.name, p.Page())
			}
			if p.Query().Offset != 0 {
				t.Fatalf("%s change must reset offset, got %d", tc.name, p.Query().Offset)
			}
		})
	}
}

func TestUnchangedSearchDoesNotReset(t *testing.T) {
	p := NewPager()
	p.SetTotal(100)
	p.SetSearch("recursion")
	p.NextPage()

	if p.SetSearch("recursion") {
		t.Fatal("identical search must report no change")
	}
	if p.Page() != 1 {
		t.Fatalf("identical search must keep the page, got %d", p.Page())
	}
}

func TestDifficultyCycle(t *testing.T) {
	p := NewPager()
	want := []string{api.DifficultyEasy, api.DifficultyMedium, api.DifficultyHard, ""}
	for _, w := range want {
		p.CycleDifficulty()
		if p.Difficulty() != w {
			t.Fatalf("expected difficulty %q, got %q", w, p.Difficulty())
		}
	}
}

func TestToggleSort(t *testing.T) {
	p := NewPager()
	if p.Sort() != api.SortNewest {
		t.Fatalf("default sort should be newest, got %q", p.Sort())
	}
	p.ToggleSort()
	if p.Sort() != api.SortOldest {
		t.Fatalf("expected oldest after toggle, got %q", p.Sort())
	}
}
