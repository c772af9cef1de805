package ui

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/five82/przepisnik/internal/nav"
	"github.com/five82/przepisnik/internal/recipes"
)

func openDetail(t *testing.T, api *fakeAPI) *harness {
	t.Helper()
	h := newHarness(t, api, "przepisnik://app?recipe=abc-123")
	if h.m.detail == nil || h.m.detail.recipe == nil {
		t.Fatalf("detail not loaded")
	}
	return h
}

func TestCookReplacesRecipe(t *testing.T) {
	h := openDetail(t, newFakeAPI(sampleRecipes()...))

	h.press("c")
	if !h.m.detail.cooking {
		t.Fatalf("expected cooking state")
	}
	h.settle()
	d := h.m.detail
	if d.cooking || d.cookErr != nil || d.recipe.CookCount != 3 {
		t.Fatalf("cooking=%v err=%v count=%d", d.cooking, d.cookErr, d.recipe.CookCount)
	}
	if !strings.Contains(h.m.View(), "cooked 3 times") {
		t.Fatalf("view missing new count:\n%s", h.m.View())
	}
}

func TestCookFailureKeepsCount(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	api.cookErr = &recipes.StatusError{Method: "POST", Path: "/api/recipe/abc-123/cook", Code: 500}
	h := openDetail(t, api)

	h.press("c")
	h.settle()
	d := h.m.detail
	if d.cookErr == nil || d.err != nil {
		t.Fatalf("cookErr=%v err=%v, want a cook error only", d.cookErr, d.err)
	}
	if d.recipe.CookCount != 2 {
		t.Fatalf("count = %d, want unchanged 2", d.recipe.CookCount)
	}

	api.snapshot(func(f *fakeAPI) { f.cookErr = nil })
	h.press("c")
	if h.m.detail.cookErr != nil {
		t.Fatalf("a new attempt clears the previous error")
	}
	h.settle()
}

func TestDeleteCancelKeepsRecipe(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	h := openDetail(t, api)

	h.press("d")
	if h.m.layers.top() != layerConfirmDelete {
		t.Fatalf("top layer = %v, want confirm", h.m.layers.top())
	}
	h.press("n")
	h.settle()
	if h.m.detail == nil || h.m.detail.confirming || !h.m.layers.empty() {
		t.Fatalf("cancel should close only the dialog")
	}
	api.snapshot(func(f *fakeAPI) {
		if len(f.deleted) != 0 {
			t.Fatalf("deleted = %v", f.deleted)
		}
	})
}

func TestDeleteConfirmReturnsToList(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	h := openDetail(t, api)

	h.press("d", "y")
	if !h.m.detail.deleting {
		t.Fatalf("expected deleting state")
	}
	h.press("esc")
	if h.m.detail == nil || !h.m.detail.confirming {
		t.Fatalf("esc must be ignored while deleting")
	}
	h.settle()

	if h.m.detail != nil || h.history.Current() != nav.ListTarget {
		t.Fatalf("expected list view after delete, at %q", h.history.URL())
	}
	if len(h.m.list.items) != 1 || h.m.list.items[0].UUID != "def-456" {
		t.Fatalf("list not refreshed: %+v", h.m.list.items)
	}
}

func TestDeleteFailureKeepsDialog(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	api.deleteErr = &recipes.StatusError{Code: 409}
	h := openDetail(t, api)

	h.press("d", "enter")
	h.settle()
	d := h.m.detail
	if d == nil || !d.confirming || d.deleteErr == nil {
		t.Fatalf("dialog should stay open with the error")
	}
	if !strings.Contains(h.m.View(), "HTTP 409") {
		t.Fatalf("error not rendered:\n%s", h.m.View())
	}
}

func TestEditRefetchesDetail(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	h := openDetail(t, api)

	h.press("e")
	if h.m.form == nil || !h.m.form.editing() {
		t.Fatalf("expected edit form")
	}
	h.typeText(" II")
	h.press("ctrl+s")
	h.settle()

	if h.m.form != nil {
		t.Fatalf("form should close")
	}
	if got := h.m.detail.recipe.Title; got != "Tomato soup II" {
		t.Fatalf("title = %q", got)
	}
	api.snapshot(func(f *fakeAPI) {
		if len(f.updated) != 1 || f.updated[0].UUID != "abc-123" {
			t.Fatalf("updated = %+v", f.updated)
		}
		if len(f.gets) != 2 {
			t.Fatalf("gets = %v, want refetch", f.gets)
		}
	})
}

func TestEditClosedDuringSaveStillRefetches(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	h := openDetail(t, api)

	h.press("e")
	h.typeText("!")
	h.press("ctrl+s", "esc")
	if h.m.form != nil {
		t.Fatalf("esc should close the form")
	}
	h.settle()

	if got := h.m.detail.recipe.Title; got != "Tomato soup!" {
		t.Fatalf("title = %q, want refetched update", got)
	}
	api.snapshot(func(f *fakeAPI) {
		if len(f.updated) != 1 || len(f.gets) != 2 {
			t.Fatalf("updated=%d gets=%v", len(f.updated), f.gets)
		}
	})
}

func TestUploadRefetches(t *testing.T) {
	api := newFakeAPI(sampleRecipes()...)
	h := openDetail(t, api)

	path := t.TempDir() + "/photo.png"
	writePNG(t, path)
	h.run(uploadPhotoCmd(h.m.env, "abc-123", path))
	h.m.detail.uploading = true
	h.settle()

	if h.m.detail.uploading || h.m.detail.uploadErr != nil {
		t.Fatalf("uploading=%v err=%v", h.m.detail.uploading, h.m.detail.uploadErr)
	}
	api.snapshot(func(f *fakeAPI) {
		if len(f.photos) != 1 || f.photos[0].Name != "photo.png" {
			t.Fatalf("photos = %+v", f.photos)
		}
		if len(f.gets) != 2 {
			t.Fatalf("gets = %v, want refetch after upload", f.gets)
		}
	})
}

func TestLightboxProbesSelectedPhoto(t *testing.T) {
	r := sampleRecipes()[0]
	r.Images = []recipes.Binary{
		{Data: recipes.Chunks{"bm90IGFuIGltYWdl"}},
		{Data: recipes.Chunks{pngBase64(t)}},
	}
	h := openDetail(t, newFakeAPI(r))

	h.press("right", "v")
	lb := h.m.detail.lightbox
	if lb == nil || lb.err != nil || lb.info.Width != 3 || lb.info.Height != 2 {
		t.Fatalf("lightbox = %+v", lb)
	}
	h.press("left")
	if h.m.detail.lightbox.err == nil {
		t.Fatalf("invalid payload should fail to render")
	}
	if !strings.Contains(h.m.View(), "Cannot render image") {
		t.Fatalf("render failure not shown")
	}
	h.press("q")
	if h.m.detail == nil || h.m.detail.lightbox != nil {
		t.Fatalf("q closes the lightbox without quitting")
	}
}

func pngBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	data, _ := base64.StdEncoding.DecodeString(pngBase64(t))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
}
