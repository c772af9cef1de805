package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/five82/przepisnik/internal/config"
	"github.com/five82/przepisnik/internal/recipes"
)

type backend struct {
	mu       sync.Mutex
	recipes  map[string]recipes.Recipe
	order    []string
	queries  []string
	deleted  []string
	uploaded []string
	server   *httptest.Server
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{recipes: map[string]recipes.Recipe{}}
	for _, r := range []recipes.Recipe{
		{
			UUID:        "abc-123",
			Title:       "Tomato soup",
			TypeOfDish:  recipes.Dinner,
			Tags:        []string{"soup", "vegan"},
			CookCount:   2,
			Ingredients: []recipes.Ingredient{{Ingredient: "tomatoes", Amount: "1 kg"}},
			Content:     "Boil water.\n\nAdd tomatoes.",
		},
		{UUID: "def-456", Title: "Pancakes", TypeOfDish: recipes.Breakfast, Tags: []string{"sweet"}},
	} {
		b.recipes[r.UUID] = r
		b.order = append(b.order, r.UUID)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/recipe/getAll", func(w http.ResponseWriter, r *http.Request) {
		b.respond(w, b.all())
	})
	mux.HandleFunc("GET /api/recipe/find", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.queries = append(b.queries, r.URL.RawQuery)
		b.mu.Unlock()
		title := r.URL.Query().Get("title")
		var out []recipes.Recipe
		for _, rec := range b.all() {
			if strings.Contains(strings.ToLower(rec.Title), strings.ToLower(title)) {
				out = append(out, rec)
			}
		}
		b.respond(w, out)
	})
	mux.HandleFunc("GET /api/recipe/{id}", func(w http.ResponseWriter, r *http.Request) {
		rec, ok := b.get(r.PathValue("id"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		b.respond(w, rec)
	})
	mux.HandleFunc("POST /api/recipe/{id}/cook", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		rec, ok := b.recipes[r.PathValue("id")]
		if ok {
			rec.CookCount++
			b.recipes[rec.UUID] = rec
		}
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		b.respond(w, rec)
	})
	mux.HandleFunc("DELETE /api/recipe/delete/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.deleted = append(b.deleted, r.PathValue("id"))
		b.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /api/recipe/{id}/addPhoto", func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("image")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.uploaded = append(b.uploaded, r.PathValue("id")+"/"+header.Filename)
		b.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/recipeTag/find", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("tagName")
		var out []string
		for _, tag := range []string{"soup", "sweet", "vegan"} {
			if strings.HasPrefix(tag, query) {
				out = append(out, tag)
			}
		}
		b.respond(w, out)
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *backend) all() []recipes.Recipe {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]recipes.Recipe, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.recipes[id])
	}
	return out
}

func (b *backend) get(id string) (recipes.Recipe, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.recipes[id]
	return rec, ok
}

func (b *backend) respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// runCLI executes the root command against b with an isolated config,
// preferences file and log directory.
func runCLI(t *testing.T, b *backend, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvAPIURL, "")
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	body := "log_dir = \"" + filepath.Join(dir, "logs") + "\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{
		"--config", configPath,
		"--prefs", filepath.Join(dir, "prefs.toml"),
		"--api", b.server.URL,
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
