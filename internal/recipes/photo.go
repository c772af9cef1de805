package recipes

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// PhotoExtensions lists the file types accepted for upload.
var PhotoExtensions = []string{".jpg", ".jpeg", ".png"}

// Photo is an image file ready for upload.
type Photo struct {
	Name string
	Data []byte
}

// ReadPhoto loads an image file from disk, rejecting unsupported extensions.
func ReadPhoto(path string) (Photo, error) {
	if !AcceptedPhoto(path) {
		return Photo{}, fmt.Errorf("unsupported photo type %q (want %s)", filepath.Ext(path), strings.Join(PhotoExtensions, ", "))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Photo{}, fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 {
		return Photo{}, fmt.Errorf("read photo: %s is empty", filepath.Base(path))
	}
	return Photo{Name: filepath.Base(path), Data: data}, nil
}

// AcceptedPhoto reports whether path has an uploadable extension.
func AcceptedPhoto(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range PhotoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ContentType guesses the MIME type from the file name.
func (p Photo) ContentType() string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(p.Name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (p Photo) multipartBody() (*requestBody, error) {
	if len(p.Data) == 0 {
		return nil, fmt.Errorf("photo is empty")
	}
	name := p.Name
	if name == "" {
		name = "photo.jpg"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(name)))
	header.Set("Content-Type", p.ContentType())
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create multipart: %w", err)
	}
	if _, err := part.Write(p.Data); err != nil {
		return nil, fmt.Errorf("write multipart: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}
	return &requestBody{contentType: writer.FormDataContentType(), data: buf.Bytes()}, nil
}
