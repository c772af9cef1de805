package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/przepisnik/internal/debounce"
)

// tagFilter manages the list view's active tag filters and the suggestion
// dropdown used to add them. The query text only drives suggestions.
type tagFilter struct {
	input       textinput.Model
	active      []string
	suggestions []string
	open        bool
	highlight   int
	lookup      debounce.Timer
}

func newTagFilter() tagFilter {
	input := textinput.New()
	input.Prompt = "# "
	input.CharLimit = 64
	return tagFilter{input: input, lookup: debounce.New(debounce.TagLookup)}
}

// visible returns suggestions not already active.
func (f *tagFilter) visible() []string {
	return excludeTags(f.suggestions, f.active)
}

func (f *tagFilter) focused() bool { return f.input.Focused() }

func (f *tagFilter) focus() tea.Cmd {
	return tea.Batch(f.input.Focus(), f.openDropdown())
}

func (f *tagFilter) blur() {
	f.input.Blur()
	f.close()
}

func (f *tagFilter) openDropdown() tea.Cmd {
	f.open = true
	_, cmd := f.lookup.Schedule()
	return cmd
}

func (f *tagFilter) close() {
	f.open = false
	f.highlight = 0
	f.lookup.Cancel()
}

func (f *tagFilter) changed() tea.Cmd {
	return emit(filterChangedMsg{tags: slices.Clone(f.active)})
}

// afterChange emits the new filter set and, while open, refreshes the
// suggestions so newly active tags drop out.
func (f *tagFilter) afterChange() tea.Cmd {
	cmds := []tea.Cmd{f.changed()}
	if f.open {
		_, cmd := f.lookup.Schedule()
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f *tagFilter) add(tag string) bool {
	if tag == "" || slices.Contains(f.active, tag) {
		return false
	}
	f.active = append(f.active, tag)
	return true
}

func (f *tagFilter) removeLast() bool {
	if len(f.active) == 0 {
		return false
	}
	f.active = f.active[:len(f.active)-1]
	return true
}

func (f *tagFilter) clear() bool {
	if len(f.active) == 0 {
		return false
	}
	f.active = nil
	return true
}

// update handles a key while the filter input has focus.
func (f *tagFilter) update(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEnter:
		vis := f.visible()
		if len(vis) == 0 {
			return nil
		}
		pick := vis[clampIndex(f.highlight, len(vis))]
		f.input.SetValue("")
		f.highlight = 0
		if !f.add(pick) {
			return nil
		}
		f.open = true
		return f.afterChange()

	case msg.Type == tea.KeyBackspace && f.input.Value() == "":
		if f.removeLast() {
			return f.afterChange()
		}
		return nil

	case key.Matches(msg, keys.ClearTags):
		if f.clear() {
			return f.afterChange()
		}
		return nil

	case msg.Type == tea.KeyUp:
		if f.open && f.highlight > 0 {
			f.highlight--
		}
		return nil

	case msg.Type == tea.KeyDown:
		if f.open && f.highlight < len(f.visible())-1 {
			f.highlight++
		}
		return nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() == before {
		return cmd
	}
	f.highlight = 0
	return tea.Batch(cmd, f.openDropdown())
}

// handleLookup starts the tag lookup when the live debounce fires.
func (f *tagFilter) handleLookup(e *env, msg debounce.FiredMsg) (tea.Cmd, bool) {
	if !f.lookup.Owns(msg) {
		return nil, false
	}
	if !f.lookup.Fired(msg) || !f.open {
		return nil, true
	}
	return findTagsCmd(e, ownerFilter, f.input.Value()), true
}

func (f *tagFilter) setSuggestions(tags []string) {
	f.suggestions = excludeTags(tags, f.active)
	f.highlight = clampIndex(f.highlight, len(f.suggestions))
}

func (m Model) renderTagFilter(width int) string {
	styles := m.theme.Styles()
	f := &m.list.filter

	var b strings.Builder
	f.input.Placeholder = m.printer.T("Filter by tag...")
	f.input.Width = max(width-4, 8)
	b.WriteString(f.input.View())
	if len(f.active) > 0 {
		chips := make([]string, 0, len(f.active))
		for _, tag := range f.active {
			chips = append(chips, styles.Tag.Render("#"+tag))
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(chips, " "))
		b.WriteString(styles.FaintText.Render("  ctrl+x " + m.printer.T("Clear filters")))
	}
	if f.open {
		b.WriteString("\n")
		b.WriteString(m.renderSuggestions(f.visible(), f.highlight, width))
	}
	return b.String()
}

// renderSuggestions draws a dropdown of suggestions with the highlighted
// entry marked. A negative highlight marks nothing.
func (m Model) renderSuggestions(tags []string, highlight, width int) string {
	styles := m.theme.Styles()
	if len(tags) == 0 {
		return styles.FaintText.Render("  " + m.printer.T("No suggestions"))
	}
	const maxRows = 6
	lines := make([]string, 0, min(len(tags), maxRows))
	for i, tag := range tags {
		if i == maxRows {
			lines = append(lines, styles.FaintText.Render("  …"))
			break
		}
		label := truncate("#"+tag, max(width-4, 4))
		if i == highlight {
			lines = append(lines, styles.Selected.Render("› "+label))
			continue
		}
		lines = append(lines, styles.MutedText.Render("  "+label))
	}
	return strings.Join(lines, "\n")
}

func excludeTags(tags, exclude []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(exclude, t) {
			out = append(out, t)
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
