package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/przepisnik/internal/debounce"
	"github.com/five82/przepisnik/internal/imagecodec"
	"github.com/five82/przepisnik/internal/recipes"
)

// listFocus is the list view element receiving keys.
type listFocus int

const (
	focusResults listFocus = iota
	focusTitle
	focusTags
)

// listView holds the search query, the debounced fetch, and the results.
type listView struct {
	title   textinput.Model
	dish    recipes.DishType
	filter  tagFilter
	search  debounce.Timer
	refresh int

	items   []recipes.Recipe
	loading bool
	err     error
	cursor  int
	focus   listFocus
}

func newListView() listView {
	title := textinput.New()
	title.Prompt = "/ "
	title.CharLimit = 120
	return listView{
		title:   title,
		filter:  newTagFilter(),
		search:  debounce.New(debounce.Search),
		loading: true,
	}
}

// query returns the current search parts.
func (v *listView) query() recipes.Query {
	q := recipes.Query{Title: v.title.Value(), DishType: v.dish}
	if len(v.filter.active) > 0 {
		q.Tags = append([]string(nil), v.filter.active...)
	}
	return q
}

// schedule restarts the search debounce.
func (v *listView) schedule() tea.Cmd {
	_, cmd := v.search.Schedule()
	return cmd
}

// reload bumps the refresh counter and schedules a fetch. The view shows
// the loading state until results arrive.
func (v *listView) reload() tea.Cmd {
	v.refresh++
	v.loading = true
	return v.schedule()
}

// capturesText reports whether typed characters belong to an input.
func (v *listView) capturesText() bool {
	return v.focus != focusResults
}

func (v *listView) setFocus(f listFocus) tea.Cmd {
	if v.focus == f {
		return nil
	}
	v.title.Blur()
	if v.focus == focusTags {
		v.filter.blur()
	}
	v.focus = f
	switch f {
	case focusTitle:
		return v.title.Focus()
	case focusTags:
		return v.filter.focus()
	}
	return nil
}

func (v *listView) cycleDish() tea.Cmd {
	next := recipes.DishType("")
	switch v.dish {
	case "":
		next = recipes.DishTypes[0]
	default:
		for i, d := range recipes.DishTypes {
			if d == v.dish && i+1 < len(recipes.DishTypes) {
				next = recipes.DishTypes[i+1]
			}
		}
	}
	v.dish = next
	return v.schedule()
}

func (v *listView) selected() (recipes.Recipe, bool) {
	if len(v.items) == 0 {
		return recipes.Recipe{}, false
	}
	return v.items[clampIndex(v.cursor, len(v.items))], true
}

// handleFired reacts to debounce ticks owned by the list or its filter.
func (v *listView) handleFired(e *env, msg debounce.FiredMsg) (tea.Cmd, bool) {
	if cmd, ok := v.filter.handleLookup(e, msg); ok {
		return cmd, true
	}
	if !v.search.Owns(msg) {
		return nil, false
	}
	if !v.search.Fired(msg) {
		return nil, true
	}
	v.loading = true
	v.err = nil
	return fetchRecipesCmd(e, v.query()), true
}

func (v *listView) applyResults(msg recipesLoadedMsg) {
	v.loading = false
	if msg.err != nil {
		v.err = msg.err
		v.items = nil
		return
	}
	v.err = nil
	v.items = msg.items
	v.cursor = clampIndex(v.cursor, len(v.items))
}

// handleListKey processes keys for the list view when no layer is open
// above it, apart from the filter dropdown.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := &m.list

	if key.Matches(msg, m.keys.Escape) {
		return m, v.setFocus(focusResults)
	}
	if key.Matches(msg, m.keys.Tab) {
		return m, v.setFocus((v.focus + 1) % 3)
	}
	if key.Matches(msg, m.keys.ShiftTab) {
		return m, v.setFocus((v.focus + 2) % 3)
	}

	switch v.focus {
	case focusTitle:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyDown {
			return m, v.setFocus(focusResults)
		}
		before := v.title.Value()
		var cmd tea.Cmd
		v.title, cmd = v.title.Update(msg)
		if v.title.Value() != before {
			return m, tea.Batch(cmd, v.schedule())
		}
		return m, cmd

	case focusTags:
		return m, v.filter.update(msg, m.keys)
	}

	switch {
	case key.Matches(msg, m.keys.FocusSearch):
		return m, v.setFocus(focusTitle)
	case key.Matches(msg, m.keys.FocusTags):
		return m, v.setFocus(focusTags)
	case key.Matches(msg, m.keys.CycleType):
		return m, v.cycleDish()
	case key.Matches(msg, m.keys.ClearTags):
		if v.filter.clear() {
			return m, v.filter.changed()
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, v.reload()
	case key.Matches(msg, m.keys.Down):
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		v.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		v.cursor = max(len(v.items)-1, 0)
	case key.Matches(msg, m.keys.Open):
		if r, ok := v.selected(); ok {
			m.nav.GoToDetail(r.UUID)
			return m.syncRoute()
		}
	case key.Matches(msg, m.keys.NewRecipe):
		return m.openForm(nil)
	}
	return m, nil
}

// renderList renders the search bar and exactly one of loading, error,
// empty, or results.
func (m Model) renderList(width, height int) string {
	styles := m.theme.Styles()
	v := &m.list
	p := m.printer

	title := v.title
	title.Placeholder = p.T("Search recipes...")
	title.Width = max(width/2, 10)
	dish := styles.DishStyle(v.dish).Render(p.DishLabel(v.dish))
	if v.dish == "" {
		dish = styles.MutedText.Render("[" + p.DishLabel("") + "]")
	}
	bar := title.View() + "  " + styles.FaintText.Render("t") + " " + dish
	filter := m.renderTagFilter(width)

	header := bar + "\n" + filter + "\n"
	used := strings.Count(header, "\n") + 1
	bodyHeight := max(height-used, 3)

	var body string
	switch {
	case v.loading:
		body = m.spinner.View() + " " + styles.MutedText.Render(p.T("Loading recipes..."))
	case v.err != nil:
		body = styles.DangerText.Render("⚠ " + errorText(p.T("Fetching recipes failed"), v.err))
	case len(v.items) == 0:
		body = styles.MutedText.Render(p.T("No recipes"))
	default:
		body = m.renderResults(width, bodyHeight)
	}
	return header + "\n" + body
}

func (m Model) renderResults(width, height int) string {
	styles := m.theme.Styles()
	v := &m.list
	p := m.printer

	lines := []string{styles.FaintText.Render(p.Recipes(len(v.items)))}
	const cardHeight = 2
	visible := max((height-1)/cardHeight, 1)
	start := 0
	if v.cursor >= visible {
		start = v.cursor - visible + 1
	}
	end := min(start+visible, len(v.items))

	for i := start; i < end; i++ {
		r := v.items[i]
		selected := i == v.cursor && v.focus == focusResults

		marker := "  "
		titleStyle := styles.Text.Bold(true)
		if selected {
			marker = "› "
			titleStyle = styles.AccentText.Bold(true)
		}
		photo := "  "
		if _, ok := imagecodec.First(r.Images); ok {
			photo = "▣ "
		}
		head := marker + photo + titleStyle.Render(truncate(r.Title, max(width-20, 10)))
		if r.TypeOfDish != "" {
			head += " " + styles.DishStyle(r.TypeOfDish).Render(p.DishLabel(r.TypeOfDish))
		}

		var meta []string
		if len(r.Tags) > 0 {
			shown := r.Tags
			if len(shown) > 3 {
				shown = shown[:3]
			}
			tags := make([]string, 0, len(shown))
			for _, t := range shown {
				tags = append(tags, "#"+t)
			}
			meta = append(meta, styles.Tag.Render(strings.Join(tags, " ")))
		}
		if n := len(r.Ingredients); n > 0 {
			meta = append(meta, styles.MutedText.Render(p.Ingredients(n)))
		}
		if r.CookCount > 0 {
			meta = append(meta, styles.MutedText.Render(p.TimesCooked(r.CookCount)))
		}
		lines = append(lines, head, "     "+strings.Join(meta, styles.FaintText.Render(" · ")))
	}
	if end < len(v.items) {
		lines = append(lines, styles.FaintText.Render(fmt.Sprintf("  … %d/%d", end, len(v.items))))
	}
	return strings.Join(lines, "\n")
}

// errorText renders a failure as the API reported it, falling back to a
// generic label.
func errorText(fallback string, err error) string {
	if err == nil {
		return fallback
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
