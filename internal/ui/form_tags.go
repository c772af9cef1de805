package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/przepisnik/internal/debounce"
)

// visible returns suggestions not yet attached to the recipe.
func (f *recipeForm) visible() []string {
	return excludeTags(f.suggestions, f.tags)
}

func (f *recipeForm) openDropdown() tea.Cmd {
	f.dropdown = true
	_, cmd := f.lookup.Schedule()
	return cmd
}

func (f *recipeForm) closeDropdown() {
	f.dropdown = false
	f.highlight = -1
	f.lookup.Cancel()
}

// addTag attaches tag once. Adding clears the input and closes the
// dropdown, whether or not the tag was new.
func (f *recipeForm) addTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	f.tagInput.SetValue("")
	f.closeDropdown()
	if tag == "" || slices.Contains(f.tags, tag) {
		return false
	}
	f.tags = append(f.tags, tag)
	return true
}

// enterTag resolves Enter in the tag input: the highlighted suggestion,
// else the first suggestion for empty input, else the typed text.
func (f *recipeForm) enterTag() {
	vis := f.visible()
	pending := strings.TrimSpace(f.tagInput.Value())
	switch {
	case f.dropdown && f.highlight >= 0 && f.highlight < len(vis):
		f.addTag(vis[f.highlight])
	case pending == "" && f.dropdown && len(vis) > 0:
		f.addTag(vis[0])
	default:
		f.addTag(pending)
	}
}

func (f *recipeForm) updateTags(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEnter:
		f.enterTag()
		return nil
	case key.Matches(msg, keys.RemoveLastTag):
		if len(f.tags) > 0 {
			f.tags = f.tags[:len(f.tags)-1]
			if f.dropdown {
				_, cmd := f.lookup.Schedule()
				return cmd
			}
		}
		return nil
	case msg.Type == tea.KeyDown:
		if !f.dropdown {
			return f.openDropdown()
		}
		if f.highlight < len(f.visible())-1 {
			f.highlight++
		}
		return nil
	case msg.Type == tea.KeyUp:
		if f.dropdown && f.highlight >= 0 {
			f.highlight--
		}
		return nil
	}

	before := f.tagInput.Value()
	var cmd tea.Cmd
	f.tagInput, cmd = f.tagInput.Update(msg)
	if f.tagInput.Value() == before {
		return cmd
	}
	f.highlight = -1
	return tea.Batch(cmd, f.openDropdown())
}

// handleFired starts the tag lookup when the form's live debounce fires.
func (f *recipeForm) handleFired(e *env, msg debounce.FiredMsg) (tea.Cmd, bool) {
	if !f.lookup.Owns(msg) {
		return nil, false
	}
	if !f.lookup.Fired(msg) || !f.dropdown {
		return nil, true
	}
	return findTagsCmd(e, ownerForm, f.tagInput.Value()), true
}

func (f *recipeForm) setSuggestions(tags []string) {
	f.suggestions = excludeTags(tags, f.tags)
	if f.highlight >= len(f.suggestions) {
		f.highlight = len(f.suggestions) - 1
	}
}
