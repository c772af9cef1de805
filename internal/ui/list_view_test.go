package ui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/przepisnik/internal/nav"
	"github.com/five82/przepisnik/internal/recipes"
)

func TestSearchDebounceSendsSingleRequest(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	h := newHarness(t, api, "")

	h.press("/")
	h.typeText("soup")
	h.settle()

	api.snapshot(func(f *fakeAPI) {
		if len(f.searches) != 1 {
			t.Fatalf("searches = %v, want exactly one", f.searches)
		}
		got := f.searches[0]
		if got.Title != "soup" || got.DishType != "" || len(got.Tags) != 0 {
			t.Fatalf("search query = %+v, want title=soup only", got)
		}
	})
	if len(h.m.list.items) != 1 || h.m.list.items[0].UUID != "abc-123" {
		t.Fatalf("items = %+v", h.m.list.items)
	}
}

func TestDishTypeAloneGoesThroughSearch(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	h := newHarness(t, api, "")

	h.press("t")
	h.settle()

	api.snapshot(func(f *fakeAPI) {
		if len(f.searches) != 1 || f.searches[0].DishType != recipes.Breakfast {
			t.Fatalf("searches = %+v, want one BREAKFAST search", f.searches)
		}
	})
	if len(h.m.list.items) != 1 || h.m.list.items[0].Title != "Pancakes" {
		t.Fatalf("items = %+v", h.m.list.items)
	}
}

func TestListRendersExactlyOneState(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")

	h.m.list.loading = true
	if got := h.m.renderList(80, 20); !containsAll(got, "Loading recipes...") || containsAll(got, "No recipes") {
		t.Fatalf("loading state:\n%s", got)
	}
	h.m.list.loading = false
	h.m.list.err = &recipes.StatusError{Code: 503}
	if got := h.m.renderList(80, 20); !containsAll(got, "HTTP 503") || containsAll(got, "No recipes") {
		t.Fatalf("error state:\n%s", got)
	}
	h.m.list.err = nil
	if got := h.m.renderList(80, 20); !containsAll(got, "No recipes") {
		t.Fatalf("empty state:\n%s", got)
	}
}

func TestTagFilterEnterAddsAndKeepsDropdownOpen(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	api.tags = []string{"soup", "sweet", "vegan"}
	h := newHarness(t, api, "")

	h.press("#")
	h.settle()
	f := &h.m.list.filter
	if !f.open || !slices.Equal(f.visible(), []string{"soup", "sweet", "vegan"}) {
		t.Fatalf("open=%v visible=%v", f.open, f.visible())
	}

	h.press("down", "enter")
	h.settle()
	f = &h.m.list.filter
	if !slices.Equal(f.active, []string{"sweet"}) {
		t.Fatalf("active = %v, want [sweet]", f.active)
	}
	if !f.open || f.input.Value() != "" {
		t.Fatalf("dropdown should stay open with a cleared query (open=%v query=%q)", f.open, f.input.Value())
	}
	if slices.Contains(f.visible(), "sweet") {
		t.Fatalf("active tag still suggested: %v", f.visible())
	}
	api.snapshot(func(a *fakeAPI) {
		last := a.searches[len(a.searches)-1]
		if !slices.Equal(last.Tags, []string{"sweet"}) {
			t.Fatalf("last search = %+v, want tags=[sweet]", last)
		}
	})
}

func TestTagFilterBackspaceAndClear(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	api.tags = []string{"soup", "vegan"}
	h := newHarness(t, api, "")

	h.press("#")
	h.settle()
	h.press("enter")
	h.settle()
	h.press("enter")
	h.settle()
	if got := h.m.list.filter.active; !slices.Equal(got, []string{"soup", "vegan"}) {
		t.Fatalf("active = %v", got)
	}

	h.press("backspace")
	h.settle()
	if got := h.m.list.filter.active; !slices.Equal(got, []string{"soup"}) {
		t.Fatalf("after backspace active = %v", got)
	}

	h.press("ctrl+x")
	h.settle()
	if got := h.m.list.filter.active; len(got) != 0 {
		t.Fatalf("after clear active = %v", got)
	}
	api.snapshot(func(a *fakeAPI) {
		if a.lists < 2 {
			t.Fatalf("clearing every filter should list all recipes (lists=%d)", a.lists)
		}
	})
}

func TestEscClosesFilterDropdownBeforeLeavingInput(t *testing.T) {
	api := newFakeAPI()
	api.tags = []string{"soup"}
	h := newHarness(t, api, "")

	h.press("#")
	h.settle()
	h.press("esc")
	if h.m.list.filter.open || h.m.list.focus != focusTags {
		t.Fatalf("first esc closes only the dropdown (open=%v focus=%v)", h.m.list.filter.open, h.m.list.focus)
	}
	h.press("esc")
	if h.m.list.focus != focusResults {
		t.Fatalf("second esc should leave the input")
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func TestListStartsLoading(t *testing.T) {
	history, err := nav.New("")
	if err != nil {
		t.Fatalf("nav.New: %v", err)
	}
	m := New(Options{API: newFakeAPI(sampleRecipes()...), Nav: history, PrefsPath: t.TempDir() + "/prefs.toml"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := next.(Model).View()
	if !strings.Contains(view, "Loading recipes...") || strings.Contains(view, "No recipes") {
		t.Fatalf("first frame should show loading:\n%s", view)
	}
}
