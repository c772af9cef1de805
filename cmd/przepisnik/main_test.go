package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestListRendersTable(t *testing.T) {
	b := newBackend(t)
	out, _, err := runCLI(t, b, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Tomato soup")
	requireContains(t, out, "Pancakes")
	requireContains(t, out, "soup, vegan")
	requireContains(t, out, "Breakfast")
	requireContains(t, out, "2 recipes")
	if len(b.queries) != 0 {
		t.Fatalf("unfiltered list should not search, got %v", b.queries)
	}
}

func TestListFiltersThroughSearch(t *testing.T) {
	b := newBackend(t)
	out, _, err := runCLI(t, b, "list", "--title", "soup", "--type", "dinner", "--tag", "vegan", "--tag", "vegan", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []recipeSummary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].UUID != "abc-123" || got[0].CookCount != 2 {
		t.Fatalf("summaries = %+v", got)
	}
	if len(b.queries) != 1 {
		t.Fatalf("queries = %v", b.queries)
	}
	if q := b.queries[0]; strings.Count(q, "tags=vegan") != 1 || !strings.Contains(q, "typeOfDish=DINNER") {
		t.Fatalf("query = %q", q)
	}
}

func TestListRejectsUnknownDishType(t *testing.T) {
	b := newBackend(t)
	if _, _, err := runCLI(t, b, "list", "--type", "brunch"); err == nil {
		t.Fatalf("expected error for unknown dish type")
	}
}

func TestShowPrintsRecipe(t *testing.T) {
	b := newBackend(t)
	out, _, err := runCLI(t, b, "show", "abc-123")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Tomato soup [Dinner]")
	requireContains(t, out, "cooked 2 times")
	requireContains(t, out, "tomatoes")
	requireContains(t, out, "1 kg")
	requireContains(t, out, "  Boil water.\n  Add tomatoes.")
}

func TestShowMissingRecipe(t *testing.T) {
	b := newBackend(t)
	_, _, err := runCLI(t, b, "show", "nope")
	if err == nil {
		t.Fatalf("expected error for missing recipe")
	}
	requireContains(t, err.Error(), "404")
}

func TestCookIncrementsCounter(t *testing.T) {
	b := newBackend(t)
	out, _, err := runCLI(t, b, "cook", "abc-123")
	if err != nil {
		t.Fatalf("cook: %v", err)
	}
	requireContains(t, out, "Tomato soup: cooked 3 times")
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	b := newBackend(t)
	if _, _, err := runCLI(t, b, "delete", "abc-123"); err == nil {
		t.Fatalf("expected refusal without --yes")
	}
	if len(b.deleted) != 0 {
		t.Fatalf("deleted without confirmation: %v", b.deleted)
	}
	if _, _, err := runCLI(t, b, "delete", "abc-123", "--yes"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !slices.Equal(b.deleted, []string{"abc-123"}) {
		t.Fatalf("deleted = %v", b.deleted)
	}
}

func TestAddPhotoUploadsFile(t *testing.T) {
	b := newBackend(t)
	path := filepath.Join(t.TempDir(), "soup.png")
	if err := os.WriteFile(path, []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatalf("write photo: %v", err)
	}
	out, _, err := runCLI(t, b, "add-photo", "abc-123", path)
	if err != nil {
		t.Fatalf("add-photo: %v", err)
	}
	requireContains(t, out, "Photo added")
	if !slices.Equal(b.uploaded, []string{"abc-123/soup.png"}) {
		t.Fatalf("uploaded = %v", b.uploaded)
	}

	gif := filepath.Join(t.TempDir(), "soup.gif")
	if err := os.WriteFile(gif, []byte("GIF89a"), 0o644); err != nil {
		t.Fatalf("write gif: %v", err)
	}
	if _, _, err := runCLI(t, b, "add-photo", "abc-123", gif); err == nil {
		t.Fatalf("expected gif to be rejected")
	}
}

func TestTagsListsMatches(t *testing.T) {
	b := newBackend(t)
	out, _, err := runCLI(t, b, "tags", "s")
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	if got := strings.Fields(out); !slices.Equal(got, []string{"soup", "sweet"}) {
		t.Fatalf("tags = %q", got)
	}

	out, _, err = runCLI(t, b, "tags", "zzz", "--json")
	if err != nil {
		t.Fatalf("tags --json: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("json = %q", out)
	}
}

func TestPolishLocaleFromPrefs(t *testing.T) {
	b := newBackend(t)
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(prefsPath, []byte("locale = \"pl\"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	out, _, err := runCLI(t, b, "--prefs", prefsPath, "cook", "abc-123")
	if err != nil {
		t.Fatalf("cook: %v", err)
	}
	requireContains(t, out, "ugotowano 3 razy")
}

func TestLogsShowsClientRequests(t *testing.T) {
	b := newBackend(t)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	logDir := filepath.Join(t.TempDir(), "logs")
	body := "log_dir = \"" + logDir + "\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, b, "--config", configPath, "list"); err != nil {
		t.Fatalf("list: %v", err)
	}

	out, _, err := runCLI(t, b, "--config", configPath, "logs", "--level", "debug", "-n", "50")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "/api/recipe/getAll")
	requireContains(t, out, "DEBUG")

	out, _, err = runCLI(t, b, "--config", configPath, "logs", "--level", "error")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "No log entries available")
}
