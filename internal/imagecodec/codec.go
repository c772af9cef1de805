// Package imagecodec turns server-serialized image blobs into data URLs and
// reads image headers for display.
package imagecodec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"strings"

	"github.com/five82/przepisnik/internal/recipes"
)

// DataURLPrefix is prepended to every payload. The backend carries no MIME
// type, so JPEG is assumed.
const DataURLPrefix = "data:image/jpeg;base64,"

// Payload concatenates the blob's chunks in order. It reports false when
// the blob carries no data.
func Payload(b recipes.Binary) (string, bool) {
	if len(b.Data) == 0 {
		return "", false
	}
	payload := strings.Join(b.Data, "")
	if payload == "" {
		return "", false
	}
	return payload, true
}

// DataURL returns a self-contained image reference for b. The payload is
// not validated.
func DataURL(b recipes.Binary) (string, bool) {
	payload, ok := Payload(b)
	if !ok {
		return "", false
	}
	return DataURLPrefix + payload, true
}

// First returns the data URL of the first image, if any.
func First(images []recipes.Binary) (string, bool) {
	if len(images) == 0 {
		return "", false
	}
	return DataURL(images[0])
}

// Gallery returns every displayable image in order, skipping empty blobs.
func Gallery(images []recipes.Binary) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if ref, ok := DataURL(img); ok {
			out = append(out, ref)
		}
	}
	return out
}

// Info describes a decoded image header.
type Info struct {
	Format string
	Width  int
	Height int
	Bytes  int
}

// ErrNotDataURL is returned by Probe for references without a base64 data
// URL prefix.
var ErrNotDataURL = errors.New("not a base64 data url")

// Probe decodes the payload of a data URL and reads the image header.
func Probe(dataURL string) (Info, error) {
	_, payload, ok := strings.Cut(dataURL, ";base64,")
	if !ok || !strings.HasPrefix(dataURL, "data:") {
		return Info{}, ErrNotDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Info{}, fmt.Errorf("decode payload: %w", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Info{Bytes: len(raw)}, fmt.Errorf("read image header: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height, Bytes: len(raw)}, nil
}
