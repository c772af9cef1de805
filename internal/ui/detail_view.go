package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/przepisnik/internal/imagecodec"
	"github.com/five82/przepisnik/internal/recipes"
)

// detailView shows one recipe and its actions. Messages for another id are
// dropped.
type detailView struct {
	id      string
	recipe  *recipes.Recipe
	loading bool
	err     error

	cooking bool
	cookErr error

	confirming bool
	deleting   bool
	deleteErr  error

	picking   bool
	picker    filepicker.Model
	uploading bool
	uploadErr error

	gallery  []string
	selected int
	lightbox *lightbox

	offset int
}

func newDetailView(id string) *detailView {
	return &detailView{id: id, loading: true}
}

func (d *detailView) fetch(e *env) tea.Cmd {
	d.loading = true
	d.err = nil
	return fetchRecipeCmd(e, d.id)
}

func (d *detailView) setRecipe(r *recipes.Recipe) {
	d.recipe = r
	d.gallery = imagecodec.Gallery(r.Images)
	d.selected = clampIndex(d.selected, len(d.gallery))
}

func (d *detailView) cook(e *env) tea.Cmd {
	if d.cooking || d.recipe == nil {
		return nil
	}
	d.cooking = true
	d.cookErr = nil
	return cookCmd(e, d.id)
}

func (d *detailView) requestDelete() {
	if d.recipe == nil {
		return
	}
	d.confirming = true
	d.deleteErr = nil
}

// cancelDelete closes the confirmation unless the delete is running.
func (d *detailView) cancelDelete() bool {
	if d.deleting {
		return false
	}
	d.confirming = false
	d.deleteErr = nil
	return true
}

func (d *detailView) confirmDelete(e *env) tea.Cmd {
	if d.deleting {
		return nil
	}
	d.deleting = true
	d.deleteErr = nil
	return deleteCmd(e, d.id)
}

// openPicker starts a fresh file picker so a previous choice never sticks.
func (d *detailView) openPicker(width, height int) tea.Cmd {
	if d.uploading || d.recipe == nil {
		return nil
	}
	p := filepicker.New()
	p.AllowedTypes = recipes.PhotoExtensions
	p.ShowPermissions = false
	if home, err := os.UserHomeDir(); err == nil {
		p.CurrentDirectory = home
	}
	p, _ = p.Update(tea.WindowSizeMsg{Width: width, Height: max(height-8, 5)})
	d.picker = p
	d.picking = true
	return d.picker.Init()
}

func (d *detailView) closePicker() {
	d.picking = false
	d.picker = filepicker.Model{}
}

// updatePicker forwards msg to the picker and starts the upload once a
// file is chosen.
func (d *detailView) updatePicker(e *env, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)
	if ok, path := d.picker.DidSelectFile(msg); ok {
		d.closePicker()
		d.uploading = true
		d.uploadErr = nil
		return uploadPhotoCmd(e, d.id, path)
	}
	return cmd
}

func (d *detailView) openLightbox() {
	if len(d.gallery) == 0 {
		return
	}
	d.lightbox = newLightbox(d.gallery[clampIndex(d.selected, len(d.gallery))])
}

// handleDetailMsg applies async results addressed to this view.
func (m Model) handleDetailMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := m.detail
	switch msg := msg.(type) {
	case recipeLoadedMsg:
		if d == nil || msg.id != d.id {
			return m, nil
		}
		d.loading = false
		if msg.err != nil {
			d.err = msg.err
			m.env.logger.Warn("fetch recipe failed", "uuid", msg.id, "error", msg.err)
			return m, nil
		}
		d.err = nil
		d.setRecipe(msg.recipe)

	case cookedMsg:
		if d == nil || msg.id != d.id {
			return m, nil
		}
		d.cooking = false
		if msg.err != nil {
			d.cookErr = msg.err
			m.env.logger.Warn("cook failed", "uuid", msg.id, "error", msg.err)
			return m, nil
		}
		d.setRecipe(msg.recipe)

	case deletedMsg:
		if d == nil || msg.id != d.id {
			return m, nil
		}
		d.deleting = false
		if msg.err != nil {
			d.deleteErr = msg.err
			m.env.logger.Warn("delete failed", "uuid", msg.id, "error", msg.err)
			return m, nil
		}
		d.confirming = false
		m.nav.GoToList()
		return m.syncRoute()

	case photoUploadedMsg:
		if d == nil || msg.id != d.id {
			return m, nil
		}
		d.uploading = false
		if msg.err != nil {
			d.uploadErr = msg.err
			m.env.logger.Warn("photo upload failed", "uuid", msg.id, "error", msg.err)
			return m, nil
		}
		return m, d.fetch(m.env)
	}
	return m, nil
}

// handleDetailKey processes keys for the detail view with no layer open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	switch {
	case key.Matches(msg, m.keys.BackList):
		m.nav.GoToList()
		return m.syncRoute()
	case key.Matches(msg, m.keys.Cook):
		return m, d.cook(m.env)
	case key.Matches(msg, m.keys.Delete):
		d.requestDelete()
	case key.Matches(msg, m.keys.Edit):
		if d.recipe != nil {
			return m.openForm(d.recipe)
		}
	case key.Matches(msg, m.keys.Upload):
		return m, d.openPicker(m.width, m.height)
	case key.Matches(msg, m.keys.PrevPic):
		if d.selected > 0 {
			d.selected--
		}
	case key.Matches(msg, m.keys.NextPic):
		if d.selected < len(d.gallery)-1 {
			d.selected++
		}
	case key.Matches(msg, m.keys.ViewPic):
		d.openLightbox()
		if d.lightbox != nil && d.lightbox.err != nil {
			m.env.logger.Warn("photo preview failed", "uuid", d.id, "photo", d.selected, "error", d.lightbox.err)
		}
	case key.Matches(msg, m.keys.Down):
		d.scroll(1, m.detailLines())
	case key.Matches(msg, m.keys.Up):
		d.scroll(-1, m.detailLines())
	case msg.Type == tea.KeyPgDown:
		d.scroll(m.bodyHeight()/2, m.detailLines())
	case msg.Type == tea.KeyPgUp:
		d.scroll(-m.bodyHeight()/2, m.detailLines())
	}
	return m, nil
}

// scroll moves the content offset by delta, keeping the last screen full.
func (d *detailView) scroll(delta, lines int) {
	limit := max(lines-1, 0)
	d.offset = min(max(d.offset+delta, 0), limit)
}

func (m Model) detailLines() int {
	return strings.Count(m.detailContent(m.bodyWidth()), "\n") + 1
}

func (m Model) renderDetail(width, height int) string {
	vp := viewport.New(width, max(height, 3))
	vp.SetContent(m.detailContent(width))
	vp.SetYOffset(m.detail.offset)
	return vp.View()
}

// detailContent renders the whole recipe page before scrolling.
func (m Model) detailContent(width int) string {
	d := m.detail
	styles := m.theme.Styles()
	p := m.printer

	switch {
	case d.loading && d.recipe == nil:
		return m.spinner.View() + " " + styles.MutedText.Render(p.T("Loading recipe..."))
	case d.err != nil:
		return styles.DangerText.Render("⚠ " + errorText(p.T("Fetching recipe failed"), d.err))
	case d.recipe == nil:
		return ""
	}
	r := d.recipe

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(r.Title))
	if r.TypeOfDish != "" {
		b.WriteString("  " + styles.DishStyle(r.TypeOfDish).Render(p.DishLabel(r.TypeOfDish)))
	}
	b.WriteString("\n\n")

	cook := styles.SuccessText.Render("[c] " + p.T("Cooked!"))
	if d.cooking {
		cook = m.spinner.View()
	}
	b.WriteString(cook + "  " + styles.Text.Render(p.TimesCooked(r.CookCount)))
	if d.cookErr != nil {
		b.WriteString("  " + styles.DangerText.Render("⚠ "+d.cookErr.Error()))
	}
	b.WriteString("\n")

	if len(r.Tags) > 0 {
		tags := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			tags = append(tags, "#"+t)
		}
		b.WriteString(styles.Tag.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n" + styles.AccentText.Bold(true).Render(p.T("Gallery")) + "\n")
	b.WriteString(m.renderGallery())
	b.WriteString("\n")
	switch {
	case d.uploading:
		b.WriteString(m.spinner.View() + " " + styles.InfoText.Render(p.T("Uploading...")))
	case d.uploadErr != nil:
		b.WriteString(styles.DangerText.Render("⚠ " + d.uploadErr.Error()))
	default:
		b.WriteString(styles.FaintText.Render("[u] " + p.T("Add photo")))
	}
	b.WriteString("\n")

	if len(r.Ingredients) > 0 {
		b.WriteString("\n" + styles.AccentText.Bold(true).Render(p.T("Ingredients")) + "\n")
		nameWidth := 0
		for _, ing := range r.Ingredients {
			nameWidth = max(nameWidth, len([]rune(ing.Ingredient)))
		}
		nameWidth = min(nameWidth, width/2)
		for _, ing := range r.Ingredients {
			name := truncate(ing.Ingredient, nameWidth)
			pad := strings.Repeat(" ", max(nameWidth-len([]rune(name)), 0))
			b.WriteString("  • " + styles.Text.Render(name) + pad + "  " + styles.MutedText.Render(ing.Amount) + "\n")
		}
	}

	if paragraphs := r.Paragraphs(); len(paragraphs) > 0 {
		b.WriteString("\n" + styles.AccentText.Bold(true).Render(p.T("Preparation")) + "\n")
		for _, para := range paragraphs {
			b.WriteString(styles.Text.Width(max(width-2, 10)).Render(para))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderGallery() string {
	d := m.detail
	styles := m.theme.Styles()
	if len(d.gallery) == 0 {
		return styles.MutedText.Render(m.printer.T("No photos"))
	}
	cells := make([]string, 0, len(d.gallery))
	for i := range d.gallery {
		cell := "[" + strconv.Itoa(i+1) + "]"
		if i == d.selected {
			cells = append(cells, styles.Selected.Render(cell))
			continue
		}
		cells = append(cells, styles.MutedText.Render(cell))
	}
	return strings.Join(cells, " ") + "  " + styles.FaintText.Render(m.printer.Photos(len(d.gallery))+" · ←/→ · v")
}
