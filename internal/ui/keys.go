package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	ToggleLocale key.Binding
	Escape       key.Binding
	Tab          key.Binding
	ShiftTab     key.Binding

	// List
	FocusSearch key.Binding
	CycleType   key.Binding
	FocusTags   key.Binding
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Open        key.Binding
	NewRecipe   key.Binding
	Refresh     key.Binding
	ClearTags   key.Binding

	// Detail
	Cook     key.Binding
	Delete   key.Binding
	Edit     key.Binding
	Upload   key.Binding
	PrevPic  key.Binding
	NextPic  key.Binding
	ViewPic  key.Binding
	BackList key.Binding
	History  key.Binding

	// Dialogs
	Confirm key.Binding
	Cancel  key.Binding

	// Form
	Submit        key.Binding
	AddRow        key.Binding
	RemoveRow     key.Binding
	RemoveLastTag key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleLocale: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle language"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),

		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search title"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle dish type"),
		),
		FocusTags: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "Filter by tag"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open recipe"),
		),
		NewRecipe: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New recipe"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Refresh"),
		),
		ClearTags: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Clear tag filters"),
		),

		Cook: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cooked it!"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete recipe"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit recipe"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Add photo"),
		),
		PrevPic: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous photo"),
		),
		NextPic: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next photo"),
		),
		ViewPic: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("v", "View photo"),
		),
		BackList: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "Back to list"),
		),
		History: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "History back"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "Cancel"),
		),

		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save recipe"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "Add ingredient"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Remove ingredient"),
		),
		RemoveLastTag: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Remove last tag"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusSearch, k.CycleType, k.FocusTags, k.ClearTags, k.Refresh},
		{k.Up, k.Down, k.Top, k.Bottom, k.Open, k.NewRecipe},
		{k.Cook, k.Edit, k.Delete, k.Upload, k.PrevPic, k.NextPic, k.ViewPic, k.BackList, k.History},
		{k.Submit, k.Tab, k.AddRow, k.RemoveRow, k.RemoveLastTag},
		{k.CycleTheme, k.ToggleLocale, k.Escape, k.Help, k.Quit},
	}
}
