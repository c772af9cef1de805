package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/five82/przepisnik/internal/imagecodec"
)

// lightbox previews one gallery image. Terminals cannot draw the picture,
// so it reports what decoding the payload found.
type lightbox struct {
	info imagecodec.Info
	err  error
}

func newLightbox(dataURL string) *lightbox {
	info, err := imagecodec.Probe(dataURL)
	return &lightbox{info: info, err: err}
}

// closesLightbox reports whether msg dismisses the lightbox.
func (m Model) closesLightbox(msg tea.KeyMsg) bool {
	return key.Matches(msg, m.keys.Escape) || msg.Type == tea.KeyEnter || msg.String() == "q"
}

func (m Model) renderLightbox() string {
	d := m.detail
	lb := d.lightbox
	styles := m.theme.Styles()
	p := m.printer

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(p.T("Photo preview")))
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d/%d", d.selected+1, len(d.gallery))))
	b.WriteString("\n\n")
	if lb.err != nil {
		b.WriteString(styles.DangerText.Render("⚠ " + p.T("Cannot render image")))
	} else {
		b.WriteString(styles.AccentText.Render(strings.ToUpper(lb.info.Format)))
		b.WriteString("  ")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d×%d", lb.info.Width, lb.info.Height)))
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(humanize.Bytes(uint64(lb.info.Bytes))))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc · enter · q"))
	return m.renderModal(b.String(), min(max(m.width/2, 36), 60), m.theme.Info)
}

// handleConfirmKey drives the delete confirmation. Cancel is ignored while
// the delete runs.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, d.confirmDelete(m.env)
	case key.Matches(msg, m.keys.Cancel):
		d.cancelDelete()
	}
	return m, nil
}

func (m Model) renderConfirm() string {
	d := m.detail
	styles := m.theme.Styles()
	p := m.printer

	var b strings.Builder
	b.WriteString(styles.DangerText.Render(p.T("Delete recipe")))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(p.T("Delete this recipe?")))
	if d.recipe != nil {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(truncate(d.recipe.Title, 48)))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(p.T("This cannot be undone.")))
	b.WriteString("\n\n")
	switch {
	case d.deleting:
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render(p.T("Deleting...")))
	case d.deleteErr != nil:
		b.WriteString(styles.DangerText.Render("⚠ " + errorText(p.T("Deleting recipe failed"), d.deleteErr)))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(p.T("y/enter delete · n/esc cancel")))
	default:
		b.WriteString(styles.FaintText.Render(p.T("y/enter delete · n/esc cancel")))
	}
	return m.renderModal(b.String(), 52, m.theme.Danger)
}

func (m Model) renderFilePicker() string {
	d := m.detail
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.printer.T("Choose a photo (.jpg, .jpeg, .png)")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(d.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(d.picker.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter · ← · esc"))
	return m.renderModal(b.String(), min(max(m.width-10, 40), 90), m.theme.Accent)
}
