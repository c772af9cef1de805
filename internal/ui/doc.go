// Package ui provides the terminal user interface for przepisnik.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A value-receiver root Model owns the
// shared collaborators (API client, navigation, logger) and the views. All
// I/O runs in commands that return typed messages; Update applies them.
//
// # Package Structure
//
//   - app.go: root Model, message routing, layer sync, and Run
//   - list_view.go: title search, dish type selector, results
//   - tag_filter.go: active tag filters and their suggestion dropdown
//   - detail_view.go: one recipe with cook, delete, edit, upload, gallery
//   - dialogs.go: delete confirmation, photo picker, lightbox
//   - form.go, form_tags.go: create/edit form with tag suggestions
//   - commands.go: API commands and their messages
//   - layers.go: stack deciding which surface receives keys and Esc
//   - header.go, help.go, theme.go, style_helpers.go: rendering
//
// # Layers
//
// Dropdowns and dialogs are layers. Keys go to the topmost layer and Esc
// closes it, so an open suggestion list closes before the form under it.
// The delete confirmation ignores Esc while the delete runs.
//
// # Debounced lookups
//
// The list search (350ms) and tag suggestions (200ms) use
// internal/debounce. Every change reschedules; only the newest tick
// starts a request.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		API:       client,
//		Nav:       history,
//		ThemeName: p.Theme,
//		Locale:    p.Locale,
//		Logger:    logger.Logger,
//	})
package ui
