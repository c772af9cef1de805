package imagecodec

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/five82/przepisnik/internal/recipes"
)

func TestPayload_ChunksEqualConcatenation(t *testing.T) {
	chunked, ok := DataURL(recipes.Binary{Data: recipes.Chunks{"Zm9v", "YmFy"}})
	if !ok {
		t.Fatalf("chunked blob produced no result")
	}
	single, ok := DataURL(recipes.Binary{Data: recipes.Chunks{"Zm9vYmFy"}})
	if !ok {
		t.Fatalf("single blob produced no result")
	}
	if chunked != single {
		t.Fatalf("chunked = %q, single = %q", chunked, single)
	}
	if single != "data:image/jpeg;base64,Zm9vYmFy" {
		t.Fatalf("data url = %q", single)
	}
}

func TestPayload_AbsentOrEmptyProducesNothing(t *testing.T) {
	tests := []struct {
		name string
		blob recipes.Binary
	}{
		{"absent", recipes.Binary{}},
		{"empty string", recipes.Binary{Data: recipes.Chunks{""}}},
		{"empty chunks", recipes.Binary{Data: recipes.Chunks{"", ""}}},
	}
	for _, tt := range tests {
		if ref, ok := DataURL(tt.blob); ok {
			t.Fatalf("%s: DataURL = %q, want no result", tt.name, ref)
		}
	}
}

func TestFirst(t *testing.T) {
	if _, ok := First(nil); ok {
		t.Fatalf("First(nil) produced a result")
	}
	if _, ok := First([]recipes.Binary{}); ok {
		t.Fatalf("First(empty) produced a result")
	}
	if _, ok := First([]recipes.Binary{{}, {Data: recipes.Chunks{"QQ=="}}}); ok {
		t.Fatalf("First looked past an empty first image")
	}
	ref, ok := First([]recipes.Binary{{Data: recipes.Chunks{"QQ=="}}})
	if !ok || ref != DataURLPrefix+"QQ==" {
		t.Fatalf("First = %q, %v", ref, ok)
	}
}

func TestGallery_SkipsEmptyBlobs(t *testing.T) {
	got := Gallery([]recipes.Binary{{Data: recipes.Chunks{"QQ=="}}, {}, {Data: recipes.Chunks{"Qg", "=="}}})
	if len(got) != 2 || got[1] != DataURLPrefix+"Qg==" {
		t.Fatalf("Gallery = %v", got)
	}
}

func TestProbe_ReadsPNGHeader(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	ref := DataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())

	info, err := Probe(ref)
	if err != nil {
		t.Fatalf("Probe returned error: %v", err)
	}
	if info.Format != "png" || info.Width != 3 || info.Height != 2 || info.Bytes != buf.Len() {
		t.Fatalf("info = %#v", info)
	}
}

func TestProbe_MalformedPayloadFails(t *testing.T) {
	if _, err := Probe(DataURLPrefix + "!!!"); err == nil {
		t.Fatalf("Probe accepted invalid base64")
	}
	if _, err := Probe(DataURLPrefix + "Zm9vYmFy"); err == nil {
		t.Fatalf("Probe accepted non-image bytes")
	}
	if _, err := Probe("https://example.com/a.jpg"); err != ErrNotDataURL {
		t.Fatalf("Probe error = %v, want ErrNotDataURL", err)
	}
}
