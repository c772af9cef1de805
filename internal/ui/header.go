package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, location, and active query.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	p := m.printer

	parts := []string{
		bg.Render("przepiśnik", styles.Logo),
		bg.Render(truncateMiddle(m.nav.URL(), 48), styles.MutedText),
	}

	if m.detail == nil {
		v := &m.list
		if !v.loading && v.err == nil {
			parts = append(parts, bg.Render(p.Recipes(len(v.items)), styles.Text))
		}
		if v.dish != "" {
			parts = append(parts, styles.DishStyle(v.dish).Render(p.DishLabel(v.dish)))
		}
		if n := len(v.filter.active); n > 0 {
			parts = append(parts, bg.Render("#"+strings.Join(v.filter.active, " #"), styles.Tag))
		}
	}

	if m.notice != "" {
		parts = append(parts, bg.Render("!", styles.WarningText.Bold(true))+bg.Spaces(1)+
			bg.Render(m.notice, styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(styles.Header.Render(bg.Join(parts, "  ")))
}

// renderCommandBar renders the command hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var bindings []keyHint
	switch {
	case m.detail != nil:
		bindings = hints(m.keys.Cook, m.keys.Edit, m.keys.Delete, m.keys.Upload, m.keys.ViewPic, m.keys.BackList, m.keys.History, m.keys.Help)
	case m.list.capturesText():
		bindings = hints(m.keys.Tab, m.keys.Escape)
	default:
		bindings = hints(m.keys.FocusSearch, m.keys.CycleType, m.keys.FocusTags, m.keys.Open, m.keys.NewRecipe, m.keys.Refresh, m.keys.Help, m.keys.Quit)
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(bindings)+2)
	for _, h := range bindings {
		segments = append(segments,
			bg.Render(h.key, styles.AccentText)+colon+bg.Render(h.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("L", styles.AccentText)+colon+bg.Render(strings.ToUpper(string(m.printer.Locale())), styles.FaintText),
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

type keyHint struct{ key, desc string }

func hints(bindings ...key.Binding) []keyHint {
	out := make([]keyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, keyHint{key: h.Key, desc: h.Desc})
	}
	return out
}

// truncateMiddle shortens s in the middle, keeping more of the end.
func truncateMiddle(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(runes) <= limit {
		return s
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	endLen := (limit - 1) * 2 / 3
	startLen := limit - 1 - endLen
	return string(runes[:startLen]) + "…" + string(runes[len(runes)-endLen:])
}
