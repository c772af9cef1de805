// Package nav switches between the recipe list and a single recipe and keeps
// the location as a URL with a history stack.
package nav

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultURL is the location used when none is given.
const DefaultURL = "przepisnik://app"

// RecipeParam is the query parameter that selects the detail view.
const RecipeParam = "recipe"

// Kind is a view.
type Kind int

const (
	List Kind = iota
	Detail
)

func (k Kind) String() string {
	if k == Detail {
		return "detail"
	}
	return "list"
}

// Target is a navigable location.
type Target struct {
	Kind Kind
	ID   string
}

// ListTarget is the list view.
var ListTarget = Target{Kind: List}

// DetailTarget returns the detail view for id.
func DetailTarget(id string) Target {
	return Target{Kind: Detail, ID: id}
}

// Service is the navigation surface used by views.
type Service interface {
	Current() Target
	GoToDetail(id string)
	GoToList()
	Back() bool
	URL() string
}

var _ Service = (*History)(nil)

// History keeps the base location and a stack of visited targets.
type History struct {
	base    url.URL
	entries []Target
}

// New parses rawURL and derives the initial target from its recipe
// parameter. A blank rawURL uses DefaultURL.
func New(rawURL string) (*History, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		trimmed = DefaultURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse location %q: %w", rawURL, err)
	}
	initial := ListTarget
	if id := strings.TrimSpace(u.Query().Get(RecipeParam)); id != "" {
		initial = DetailTarget(id)
	}
	base := *u
	base.RawQuery = ""
	base.Fragment = ""
	return &History{base: base, entries: []Target{initial}}, nil
}

// Current returns the active target.
func (h *History) Current() Target {
	return h.entries[len(h.entries)-1]
}

// GoToDetail pushes the detail view for id. A blank id is ignored.
func (h *History) GoToDetail(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	h.push(DetailTarget(id))
}

// GoToList pushes the list view.
func (h *History) GoToList() {
	h.push(ListTarget)
}

func (h *History) push(t Target) {
	if h.Current() == t {
		return
	}
	h.entries = append(h.entries, t)
}

// Back pops one entry. It reports false when already at the first entry.
func (h *History) Back() bool {
	if len(h.entries) <= 1 {
		return false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return true
}

// Depth returns the number of history entries.
func (h *History) Depth() int { return len(h.entries) }

// URL renders the current location.
func (h *History) URL() string {
	u := h.base
	if cur := h.Current(); cur.Kind == Detail {
		u.RawQuery = url.Values{RecipeParam: []string{cur.ID}}.Encode()
	}
	return u.String()
}
