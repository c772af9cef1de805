package logtail

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "przepisnik.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func messages(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}

func TestReadKeepsNewestLines(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("ts=2026-10-14T09:00:%02dZ level=info msg=\"line %d\"", i, i))
	}
	path := writeLog(t, lines)

	tests := []struct {
		name     string
		maxLines int
		first    string
		count    int
	}{
		{"all", 0, "line 1", 10},
		{"partial", 3, "line 8", 3},
		{"exact", 10, "line 1", 10},
		{"more than exists", 20, "line 1", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines, slog.LevelDebug)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if len(got) != tt.count {
				t.Fatalf("len = %d, want %d", len(got), tt.count)
			}
			if got[0].Message != tt.first || got[len(got)-1].Message != "line 10" {
				t.Fatalf("messages = %q", messages(got))
			}
		})
	}
}

func TestReadFiltersByLevel(t *testing.T) {
	path := writeLog(t, []string{
		`ts=2026-10-14T09:00:00Z level=debug msg="request started"`,
		`ts=2026-10-14T09:00:01Z level=warn msg="request rejected" status=404`,
		`ts=2026-10-14T09:00:02Z level=info msg="recipe loaded"`,
		`ts=2026-10-14T09:00:03Z level=error msg="transport failed"`,
	})
	got, err := Read(path, 1, slog.LevelWarn)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0].Message != "transport failed" {
		t.Fatalf("messages = %q", messages(got))
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10, slog.LevelInfo)
	if err != nil || got != nil {
		t.Fatalf("Read = %v, %v", got, err)
	}
}

func TestParseText(t *testing.T) {
	e := Parse(`ts=2026-10-14T09:12:03Z level=warn source=client.go:285 msg="request rejected" path="/api/recipe/a b" status=404`)
	if e.Time != "2026-10-14T09:12:03Z" || e.Level != slog.LevelWarn || e.Message != "request rejected" {
		t.Fatalf("entry = %+v", e)
	}
	want := []Attr{{"source", "client.go:285"}, {"path", "/api/recipe/a b"}, {"status", "404"}}
	if fmt.Sprint(e.Attrs) != fmt.Sprint(want) {
		t.Fatalf("attrs = %v, want %v", e.Attrs, want)
	}
}

func TestParseJSON(t *testing.T) {
	e := Parse(`{"ts":"2026-10-14T09:12:03Z","level":"error","msg":"save failed","status":500}`)
	if e.Level != slog.LevelError || e.Message != "save failed" {
		t.Fatalf("entry = %+v", e)
	}
	if len(e.Attrs) != 1 || e.Attrs[0] != (Attr{"status", "500"}) {
		t.Fatalf("attrs = %v", e.Attrs)
	}
}

func TestParseUnstructuredLine(t *testing.T) {
	e := Parse("panic: something broke")
	if e.Message != "panic: something broke" || e.Level != slog.LevelInfo || e.Attrs != nil {
		t.Fatalf("entry = %+v", e)
	}
}
