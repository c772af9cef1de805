package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/przepisnik/internal/debounce"
	"github.com/five82/przepisnik/internal/i18n"
	"github.com/five82/przepisnik/internal/nav"
	"github.com/five82/przepisnik/internal/prefs"
	"github.com/five82/przepisnik/internal/recipes"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       recipes.API
	Nav       nav.Service
	ThemeName string
	Locale    string
	PrefsPath string
	Logger    *slog.Logger
	// Mouse enables mouse reporting; a press closes open dropdowns.
	Mouse bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	env       *env
	nav       nav.Service
	prefsPath string
	startup   tea.Cmd

	// UI state
	keys     keyMap
	theme    Theme
	printer  *i18n.Printer
	spinner  spinner.Model
	help     help.Model
	layers   layerStack
	showHelp bool
	width    int
	height   int
	ready    bool
	notice   string

	// Views
	list   listView
	detail *detailView
	form   *recipeForm
}

type prefsSavedMsg struct {
	err error
}

// New creates a new Bubble Tea model positioned at the navigation's
// current target.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	navigation := opts.Nav
	if navigation == nil {
		navigation, _ = nav.New(nav.DefaultURL)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		env:       &env{ctx: ctx, api: opts.API, logger: logger},
		nav:       navigation,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.ThemeName),
		printer:   i18n.New(i18n.ParseLocale(opts.Locale)),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
		list:      newListView(),
	}
	m.applyTheme()
	m.startup = m.applyRoute()
	m.syncLayers()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startup, m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	nm := next.(Model)
	nm.syncLayers()
	return nm, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.closeDropdowns()
			if m.detail != nil {
				m.detail.lightbox = nil
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		if m.form != nil {
			m.form.setWidth(m.formWidth())
		}
		if m.detail != nil && m.detail.picking {
			return m, m.detail.updatePicker(m.env, tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-8, 5)})
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounce.FiredMsg:
		if m.form != nil {
			if cmd, ok := m.form.handleFired(m.env, msg); ok {
				return m, cmd
			}
		}
		cmd, _ := m.list.handleFired(m.env, msg)
		return m, cmd

	case tagSuggestionsMsg:
		switch msg.owner {
		case ownerForm:
			if m.form != nil && m.form.dropdown {
				m.form.setSuggestions(msg.tags)
			}
		case ownerFilter:
			if m.list.filter.open {
				m.list.filter.setSuggestions(msg.tags)
			}
		}
		return m, nil

	case filterChangedMsg:
		return m, m.list.schedule()

	case recipesLoadedMsg:
		if msg.err != nil {
			m.env.logger.Warn("fetch recipes failed", "title", msg.query.Title, "type", msg.query.DishType, "tags", msg.query.Tags, "error", msg.err)
		}
		m.list.applyResults(msg)
		return m, nil

	case recipeLoadedMsg, cookedMsg, deletedMsg, photoUploadedMsg:
		return m.handleDetailMsg(msg)

	case formSavedMsg:
		m.form = nil
		if msg.update && m.detail != nil && m.detail.id == msg.id {
			return m, m.detail.fetch(m.env)
		}
		return m, m.list.reload()

	case formFailedMsg:
		if m.form != nil {
			m.env.logger.Warn("save recipe failed", "editing", m.form.editing(), "error", msg.err)
			m.form.failed(msg.err)
		}
		return m, nil

	case prefsSavedMsg:
		m.notice = ""
		if msg.err != nil {
			m.env.logger.Warn("save prefs failed", "path", m.prefsPath, "error", msg.err)
			m.notice = m.printer.T("Saving preferences failed")
		}
		return m, nil
	}

	return m.forward(msg)
}

// forward hands messages no view claimed to the components that run
// their own commands: the file picker and the focused text inputs.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.detail != nil && m.detail.picking {
		return m, m.detail.updatePicker(m.env, msg)
	}
	if m.form != nil {
		return m, m.form.forward(msg)
	}
	var titleCmd, filterCmd tea.Cmd
	m.list.title, titleCmd = m.list.title.Update(msg)
	m.list.filter.input, filterCmd = m.list.filter.input.Update(msg)
	return m, tea.Batch(titleCmd, filterCmd)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.printer.T("Loading...")
	}
	switch m.modalLayer() {
	case layerHelp:
		return m.renderHelp()
	case layerLightbox:
		return m.renderLightbox()
	case layerFilePicker:
		return m.renderFilePicker()
	case layerConfirmDelete:
		return m.renderConfirm()
	case layerForm:
		return m.renderForm()
	}
	return m.renderMain()
}

// modalLayer returns the topmost layer drawn as a full-screen dialog.
func (m Model) modalLayer() layer {
	for i := len(m.layers.items) - 1; i >= 0; i-- {
		switch l := m.layers.items[i]; l {
		case layerFilterSuggestions:
			continue
		case layerFormSuggestions:
			return layerForm
		default:
			return l
		}
	}
	return layerNone
}

// handleKey routes a key to the topmost layer, then to the current view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.layers.top() {
	case layerHelp:
		m.showHelp = false
		return m, nil

	case layerLightbox:
		d := m.detail
		switch {
		case m.closesLightbox(msg):
			d.lightbox = nil
		case key.Matches(msg, m.keys.PrevPic) && d.selected > 0:
			d.selected--
			d.openLightbox()
		case key.Matches(msg, m.keys.NextPic) && d.selected < len(d.gallery)-1:
			d.selected++
			d.openLightbox()
		}
		return m, nil

	case layerFilePicker:
		if key.Matches(msg, m.keys.Escape) {
			m.detail.closePicker()
			return m, nil
		}
		return m, m.detail.updatePicker(m.env, msg)

	case layerConfirmDelete:
		return m.handleConfirmKey(msg)

	case layerFormSuggestions:
		if key.Matches(msg, m.keys.Escape) {
			m.form.closeDropdown()
			return m, nil
		}
		return m, m.form.update(msg, m.keys, m.env)

	case layerForm:
		if key.Matches(msg, m.keys.Escape) {
			m.form = nil
			return m, nil
		}
		return m, m.form.update(msg, m.keys, m.env)

	case layerFilterSuggestions:
		if key.Matches(msg, m.keys.Escape) {
			m.list.filter.close()
			return m, nil
		}
	}

	if !m.capturesText() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.CycleTheme):
			m.theme = GetTheme(NextTheme(m.theme.Name))
			m.applyTheme()
			return m, m.savePrefs()
		case key.Matches(msg, m.keys.ToggleLocale):
			m.printer = i18n.New(m.printer.Locale().Next())
			if m.form != nil {
				m.form.localize(m.printer)
			}
			return m, m.savePrefs()
		case key.Matches(msg, m.keys.History):
			if m.nav.Back() {
				return m.syncRoute()
			}
			return m, nil
		}
	}

	if m.detail != nil {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// capturesText reports whether typed characters belong to a text input.
func (m Model) capturesText() bool {
	return m.detail == nil && m.list.capturesText()
}

// syncLayers mirrors component state onto the layer stack so layers are
// pushed when opened and removed when closed, wherever they sit.
func (m *Model) syncLayers() {
	d := m.detail
	m.layers.set(layerFilterSuggestions, d == nil && m.list.filter.open)
	m.layers.set(layerForm, m.form != nil)
	m.layers.set(layerFormSuggestions, m.form != nil && m.form.dropdown)
	m.layers.set(layerConfirmDelete, d != nil && d.confirming)
	m.layers.set(layerFilePicker, d != nil && d.picking)
	m.layers.set(layerLightbox, d != nil && d.lightbox != nil)
	m.layers.set(layerHelp, m.showHelp)
}

func (m *Model) closeDropdowns() {
	m.list.filter.close()
	if m.form != nil {
		m.form.closeDropdown()
	}
}

// applyRoute mounts the view for the navigation's current target.
// Entering the list always refetches it.
func (m *Model) applyRoute() tea.Cmd {
	target := m.nav.Current()
	if target.Kind == nav.Detail {
		if m.detail != nil && m.detail.id == target.ID {
			return nil
		}
		m.list.setFocus(focusResults)
		m.detail = newDetailView(target.ID)
		return m.detail.fetch(m.env)
	}
	m.detail = nil
	return m.list.reload()
}

func (m Model) syncRoute() (tea.Model, tea.Cmd) {
	cmd := m.applyRoute()
	return m, cmd
}

// openForm opens the recipe form; a nil recipe opens it in create mode.
func (m Model) openForm(r *recipes.Recipe) (tea.Model, tea.Cmd) {
	m.form = newRecipeForm(r)
	m.form.localize(m.printer)
	m.form.setWidth(m.formWidth())
	return m, textinput.Blink
}

func (m *Model) applyTheme() {
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.help.Styles.FullSeparator = m.help.Styles.ShortSeparator
}

func (m Model) savePrefs() tea.Cmd {
	path := m.prefsPath
	p := prefs.Prefs{Theme: m.theme.Name, Locale: string(m.printer.Locale())}
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}

// bodyWidth and bodyHeight size the content inside the main box.
func (m Model) bodyWidth() int  { return max(m.width-2, 10) }
func (m Model) bodyHeight() int { return max(m.height-4, 3) }

func (m Model) renderMain() string {
	var content, title string
	if m.detail != nil {
		title = m.printer.T("Recipe")
		if m.detail.recipe != nil {
			title = m.detail.recipe.Title
		}
		content = m.renderDetail(m.bodyWidth(), m.bodyHeight())
	} else {
		title = m.printer.T("Recipes")
		content = m.renderList(m.bodyWidth(), m.bodyHeight())
	}
	return m.renderHeader() + "\n" +
		m.renderCommandBar() + "\n" +
		m.renderTitledBox(title, content, m.width, m.height-2, true)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}
