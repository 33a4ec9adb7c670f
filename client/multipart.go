package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FilePart is an image attachment for a multipart submission. When Data is
// nil the file is read from Path at encode time.
type FilePart struct {
	Field string
	Path  string
	Data  []byte
}

func (f FilePart) filename() string {
	return filepath.Base(f.Path)
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
}

// partContentType derives the declared content type from the file extension,
// defaulting to image/jpeg for anything unrecognized.
func partContentType(path string) string {
	if ct, ok := imageContentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "image/jpeg"
}

func writeFilePart(w *multipart.Writer, part FilePart) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, part.Field, part.filename()))
	header.Set("Content-Type", partContentType(part.Path))

	pw, err := w.CreatePart(header)
	if err != nil {
		return err
	}

	data := part.Data
	if data == nil {
		data, err = os.ReadFile(part.Path)
		if err != nil {
			return err
		}
	}
	_, err = pw.Write(data)
	return err
}

// encodeMultipart writes string fields in a stable order followed by the
// file parts, returning the body and the content type with boundary.
func encodeMultipart(fields map[string]string, files []FilePart) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := w.WriteField(name, fields[name]); err != nil {
			return nil, "", err
		}
	}

	for _, part := range files {
		if err := writeFilePart(w, part); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
