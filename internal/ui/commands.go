package ui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/przepisnik/internal/recipes"
)

// env carries the collaborators shared by every view.
type env struct {
	ctx    context.Context
	api    recipes.API
	logger *slog.Logger
}

// Messages

type recipesLoadedMsg struct {
	query recipes.Query
	items []recipes.Recipe
	err   error
}

type suggestionOwner int

const (
	ownerFilter suggestionOwner = iota
	ownerForm
)

type tagSuggestionsMsg struct {
	owner suggestionOwner
	query string
	tags  []string
}

// filterChangedMsg reports a change of the active tag filters.
type filterChangedMsg struct {
	tags []string
}

type recipeLoadedMsg struct {
	id     string
	recipe *recipes.Recipe
	err    error
}

type cookedMsg struct {
	id     string
	recipe *recipes.Recipe
	err    error
}

type deletedMsg struct {
	id  string
	err error
}

type photoUploadedMsg struct {
	id  string
	err error
}

// formSavedMsg tells the parent view the form persisted a recipe.
type formSavedMsg struct {
	recipe *recipes.Recipe
	id     string
	update bool
}

type formFailedMsg struct {
	err error
}

// Commands

func fetchRecipesCmd(e *env, query recipes.Query) tea.Cmd {
	return func() tea.Msg {
		items, err := recipes.Fetch(e.ctx, e.api, query)
		return recipesLoadedMsg{query: query, items: items, err: err}
	}
}

// findTagsCmd looks up suggestions. A failed lookup yields no suggestions.
func findTagsCmd(e *env, owner suggestionOwner, query string) tea.Cmd {
	query = strings.TrimSpace(query)
	return func() tea.Msg {
		tags, err := e.api.FindTags(e.ctx, query)
		if err != nil {
			e.logger.Warn("tag lookup failed", "query", query, "error", err)
			tags = nil
		}
		return tagSuggestionsMsg{owner: owner, query: query, tags: tags}
	}
}

func fetchRecipeCmd(e *env, id string) tea.Cmd {
	return func() tea.Msg {
		r, err := e.api.Get(e.ctx, id)
		return recipeLoadedMsg{id: id, recipe: r, err: err}
	}
}

func cookCmd(e *env, id string) tea.Cmd {
	return func() tea.Msg {
		r, err := e.api.Cook(e.ctx, id)
		return cookedMsg{id: id, recipe: r, err: err}
	}
}

func deleteCmd(e *env, id string) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{id: id, err: e.api.Delete(e.ctx, id)}
	}
}

func uploadPhotoCmd(e *env, id, path string) tea.Cmd {
	return func() tea.Msg {
		photo, err := recipes.ReadPhoto(path)
		if err != nil {
			return photoUploadedMsg{id: id, err: err}
		}
		return photoUploadedMsg{id: id, err: e.api.AddPhoto(e.ctx, id, photo)}
	}
}

func saveRecipeCmd(e *env, payload recipes.Recipe, update bool) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *recipes.Recipe
			err   error
		)
		if update {
			saved, err = e.api.Update(e.ctx, payload.UUID, payload)
		} else {
			saved, err = e.api.Create(e.ctx, payload)
		}
		if err != nil {
			return formFailedMsg{err: err}
		}
		return formSavedMsg{recipe: saved, id: payload.UUID, update: update}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
