package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	k := m.keys
	sections := []helpSection{
		{title: "Recipes", bindings: []key.Binding{k.FocusSearch, k.CycleType, k.FocusTags, k.ClearTags, k.Refresh, k.Open, k.NewRecipe}},
		{title: "Recipe", bindings: []key.Binding{k.Cook, k.Edit, k.Delete, k.Upload, k.PrevPic, k.NextPic, k.ViewPic, k.BackList, k.History}},
		{title: "Edit recipe", bindings: []key.Binding{k.Submit, k.Tab, k.AddRow, k.RemoveRow, k.RemoveLastTag}},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.printer.T("Keyboard shortcuts")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for _, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(m.printer.T(section.title)))
		b.WriteString("\n")
		b.WriteString(m.help.FullHelpView([][]key.Binding{section.bindings}))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.ShortHelpView([]key.Binding{k.CycleTheme, k.ToggleLocale, k.Escape, k.Help, k.Quit}))
	b.WriteString("\n\n")
	names := make([]string, 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		if name == m.theme.Name {
			names = append(names, styles.AccentText.Bold(true).Render(name))
			continue
		}
		names = append(names, styles.FaintText.Render(name))
	}
	b.WriteString(strings.Join(names, styles.FaintText.Render(" · ")))

	return m.renderModal(b.String(), 48, m.theme.Accent)
}
