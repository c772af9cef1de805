package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/przepisnik/internal/debounce"
	"github.com/five82/przepisnik/internal/i18n"
	"github.com/five82/przepisnik/internal/recipes"
)

type formStatus int

const (
	formIdle formStatus = iota
	formSubmitting
	formFailed
)

type ingredientRow struct {
	name   textinput.Model
	amount textinput.Model
}

func newIngredientRow(ing recipes.Ingredient) ingredientRow {
	name := textinput.New()
	name.Prompt = ""
	name.SetValue(ing.Ingredient)
	name.CursorEnd()
	amount := textinput.New()
	amount.Prompt = ""
	amount.SetValue(ing.Amount)
	amount.CursorEnd()
	return ingredientRow{name: name, amount: amount}
}

// recipeForm edits a new recipe (original == nil) or an existing one.
//
// Focus order: title, dish type, each ingredient row's name then amount,
// tag input, content.
type recipeForm struct {
	original *recipes.Recipe

	title    textinput.Model
	dish     recipes.DishType
	rows     []ingredientRow
	tags     []string
	tagInput textinput.Model
	content  textarea.Model
	focus    int

	dropdown    bool
	suggestions []string
	highlight   int
	lookup      debounce.Timer

	status  formStatus
	err     error
	invalid bool
}

func newRecipeForm(original *recipes.Recipe) *recipeForm {
	f := &recipeForm{
		original:  original,
		title:     textinput.New(),
		tagInput:  textinput.New(),
		content:   textarea.New(),
		highlight: -1,
		lookup:    debounce.New(debounce.TagLookup),
	}
	f.title.Prompt = ""
	f.title.CharLimit = 0
	f.tagInput.Prompt = "# "
	f.tagInput.CharLimit = 64
	f.content.ShowLineNumbers = false
	f.content.SetHeight(6)

	if original != nil {
		f.title.SetValue(original.Title)
		f.title.CursorEnd()
		f.dish = original.TypeOfDish
		for _, ing := range original.Ingredients {
			f.rows = append(f.rows, newIngredientRow(ing))
		}
		f.tags = append(f.tags, original.Tags...)
		f.content.SetValue(original.Content)
	}
	if len(f.rows) == 0 {
		f.rows = []ingredientRow{newIngredientRow(recipes.Ingredient{})}
	}
	f.title.Focus()
	return f
}

func (f *recipeForm) editing() bool { return f.original != nil }

func (f *recipeForm) fieldCount() int   { return 4 + 2*len(f.rows) }
func (f *recipeForm) tagsField() int    { return 2 + 2*len(f.rows) }
func (f *recipeForm) contentField() int { return 3 + 2*len(f.rows) }

// rowAt maps a focus index onto an ingredient row and column.
func (f *recipeForm) rowAt(focus int) (row int, amount bool, ok bool) {
	if focus < 2 || focus >= f.tagsField() {
		return 0, false, false
	}
	return (focus - 2) / 2, (focus-2)%2 == 1, true
}

// canSubmit is false for a blank title and while a save is in flight.
func (f *recipeForm) canSubmit() bool {
	return strings.TrimSpace(f.title.Value()) != "" && f.status != formSubmitting
}

// payload builds the recipe to send. Unnamed ingredient rows are dropped
// and empty collections and blank text are omitted.
func (f *recipeForm) payload() recipes.Recipe {
	r := recipes.Recipe{
		Title:      strings.TrimSpace(f.title.Value()),
		Content:    strings.TrimSpace(f.content.Value()),
		TypeOfDish: f.dish,
	}
	if f.original != nil {
		r.UUID = f.original.UUID
	} else {
		r.UUID = uuid.NewString()
	}
	for _, row := range f.rows {
		if strings.TrimSpace(row.name.Value()) == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, recipes.Ingredient{
			Ingredient: row.name.Value(),
			Amount:     row.amount.Value(),
		})
	}
	if len(f.tags) > 0 {
		r.Tags = append([]string(nil), f.tags...)
	}
	return r
}

func (f *recipeForm) submit(e *env) tea.Cmd {
	if strings.TrimSpace(f.title.Value()) == "" {
		f.invalid = true
		return nil
	}
	if !f.canSubmit() {
		return nil
	}
	f.invalid = false
	f.status = formSubmitting
	f.err = nil
	return saveRecipeCmd(e, f.payload(), f.editing())
}

func (f *recipeForm) failed(err error) {
	f.status = formFailed
	f.err = err
}

func (f *recipeForm) setFocus(i int) tea.Cmd {
	n := f.fieldCount()
	i = ((i % n) + n) % n
	if i == f.focus {
		return nil
	}
	if f.focus == f.tagsField() {
		f.closeDropdown()
	}
	f.blurAll()
	f.focus = i

	switch row, amount, ok := f.rowAt(i); {
	case i == 0:
		return f.title.Focus()
	case ok && amount:
		return f.rows[row].amount.Focus()
	case ok:
		return f.rows[row].name.Focus()
	case i == f.tagsField():
		return tea.Batch(f.tagInput.Focus(), f.openDropdown())
	case i == f.contentField():
		return f.content.Focus()
	}
	return nil
}

func (f *recipeForm) blurAll() {
	f.title.Blur()
	for i := range f.rows {
		f.rows[i].name.Blur()
		f.rows[i].amount.Blur()
	}
	f.tagInput.Blur()
	f.content.Blur()
}

func (f *recipeForm) addRow() tea.Cmd {
	f.rows = append(f.rows, newIngredientRow(recipes.Ingredient{}))
	return f.setFocus(2 + 2*(len(f.rows)-1))
}

func (f *recipeForm) removeRow() tea.Cmd {
	row, _, ok := f.rowAt(f.focus)
	if !ok || len(f.rows) <= 1 {
		return nil
	}
	f.blurAll()
	f.rows = append(f.rows[:row], f.rows[row+1:]...)
	target := 2 + 2*min(row, len(f.rows)-1)
	f.focus = -1
	return f.setFocus(target)
}

func (f *recipeForm) cycleDish(step int) {
	options := append([]recipes.DishType{""}, recipes.DishTypes...)
	idx := 0
	for i, d := range options {
		if d == f.dish {
			idx = i
		}
	}
	f.dish = options[((idx+step)%len(options)+len(options))%len(options)]
}

// update handles a key while the form is the active layer.
func (f *recipeForm) update(msg tea.KeyMsg, keys keyMap, e *env) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Submit):
		return f.submit(e)
	case key.Matches(msg, keys.Tab):
		return f.setFocus(f.focus + 1)
	case key.Matches(msg, keys.ShiftTab):
		return f.setFocus(f.focus - 1)
	case key.Matches(msg, keys.AddRow):
		return f.addRow()
	case key.Matches(msg, keys.RemoveRow):
		return f.removeRow()
	}

	if f.focus == f.tagsField() {
		return f.updateTags(msg, keys)
	}

	if f.focus == 1 {
		switch msg.String() {
		case "left", "h":
			f.cycleDish(-1)
		case "right", "l", " ":
			f.cycleDish(1)
		case "enter", "down":
			return f.setFocus(f.focus + 1)
		case "up":
			return f.setFocus(f.focus - 1)
		}
		return nil
	}

	var cmd tea.Cmd
	switch row, amount, ok := f.rowAt(f.focus); {
	case f.focus == 0:
		if msg.Type == tea.KeyEnter {
			return f.setFocus(1)
		}
		f.title, cmd = f.title.Update(msg)
		if strings.TrimSpace(f.title.Value()) != "" {
			f.invalid = false
		}
	case ok && amount:
		if msg.Type == tea.KeyEnter {
			return f.setFocus(f.focus + 1)
		}
		f.rows[row].amount, cmd = f.rows[row].amount.Update(msg)
	case ok:
		if msg.Type == tea.KeyEnter {
			return f.setFocus(f.focus + 1)
		}
		f.rows[row].name, cmd = f.rows[row].name.Update(msg)
	case f.focus == f.contentField():
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

// forward passes non-key messages such as cursor blinks to the focused
// field.
func (f *recipeForm) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch row, amount, ok := f.rowAt(f.focus); {
	case f.focus == 0:
		f.title, cmd = f.title.Update(msg)
	case ok && amount:
		f.rows[row].amount, cmd = f.rows[row].amount.Update(msg)
	case ok:
		f.rows[row].name, cmd = f.rows[row].name.Update(msg)
	case f.focus == f.tagsField():
		f.tagInput, cmd = f.tagInput.Update(msg)
	case f.focus == f.contentField():
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

func (m Model) formWidth() int {
	return min(max(m.width-8, 40), 76)
}

// localize sets placeholders for the printer's locale.
func (f *recipeForm) localize(p *i18n.Printer) {
	f.tagInput.Placeholder = p.T("Add a tag...")
}

// setWidth sizes the free-text fields to the dialog.
func (f *recipeForm) setWidth(w int) {
	f.title.Width = max(w-2, 10)
	f.tagInput.Width = max(w-4, 10)
	f.content.SetWidth(max(w, 10))
	for i := range f.rows {
		f.rows[i].name.Width = max(w/2-2, 8)
		f.rows[i].amount.Width = max(w/3, 6)
	}
}

func (m Model) renderForm() string {
	f := m.form
	styles := m.theme.Styles()
	p := m.printer
	width := m.formWidth()

	label := func(i int, text string) string {
		if f.focus == i {
			return styles.AccentText.Bold(true).Render(text)
		}
		return styles.MutedText.Render(text)
	}

	var b strings.Builder
	heading := p.T("New recipe")
	if f.editing() {
		heading = p.T("Edit recipe")
	}
	b.WriteString(styles.Text.Bold(true).Render(heading))
	b.WriteString("\n\n")

	b.WriteString(label(0, p.T("Title")+" *"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	if f.invalid {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(p.T("Title is required")))
	}
	b.WriteString("\n\n")

	b.WriteString(label(1, p.T("Dish type")))
	b.WriteString("  ‹ ")
	if f.dish == "" {
		b.WriteString(styles.MutedText.Render("—"))
	} else {
		b.WriteString(styles.DishStyle(f.dish).Render(p.DishLabel(f.dish)))
	}
	b.WriteString(" ›\n\n")

	b.WriteString(styles.MutedText.Render(p.T("Ingredients")))
	b.WriteString("\n")
	for i, row := range f.rows {
		marker := "  "
		if r, _, ok := f.rowAt(f.focus); ok && r == i {
			marker = styles.AccentText.Render("› ")
		}
		b.WriteString(marker + row.name.View() + styles.FaintText.Render(" · ") + row.amount.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(label(f.tagsField(), p.T("Tags")))
	b.WriteString("\n")
	if len(f.tags) > 0 {
		chips := make([]string, 0, len(f.tags))
		for _, t := range f.tags {
			chips = append(chips, styles.Tag.Render("#"+t))
		}
		b.WriteString(strings.Join(chips, " "))
		b.WriteString("\n")
	}
	b.WriteString(f.tagInput.View())
	if f.dropdown {
		b.WriteString("\n")
		b.WriteString(m.renderSuggestions(f.visible(), f.highlight, width-6))
	}
	b.WriteString("\n\n")

	b.WriteString(label(f.contentField(), p.T("Content")))
	b.WriteString("\n")
	b.WriteString(f.content.View())
	b.WriteString("\n\n")

	switch {
	case f.status == formSubmitting:
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render(p.T("Saving...")))
	case f.status == formFailed && f.err != nil:
		b.WriteString(styles.DangerText.Render("⚠ " + errorText(p.T("Saving recipe failed"), f.err)))
	default:
		action := p.T("Save recipe")
		if f.editing() {
			action = p.T("Save changes")
		}
		style := styles.AccentText
		if !f.canSubmit() {
			style = styles.FaintText
		}
		b.WriteString(style.Render("ctrl+s " + action))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("tab · ctrl+n/ctrl+x · ctrl+r · esc"))

	return m.renderModal(b.String(), width, m.theme.Accent)
}
