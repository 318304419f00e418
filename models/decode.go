package models

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoContent is returned when decoding the body of a payload that carries no content.
var ErrNoContent = errors.New("payload has no content")

// UnsupportedEncodingError is returned when a body is encoded with anything but utf-8 or base64.
type UnsupportedEncodingError struct {
	Encoding string
}

func (e *UnsupportedEncodingError) Error() string {
	if e.Encoding == "" {
		return "missing content encoding"
	}
	return fmt.Sprintf("unsupported content encoding: %s", e.Encoding)
}

// DecodeBlob decodes a blob payload. Absent optional fields are left nil.
func DecodeBlob(data []byte) (*Blob, error) {
	blob := new(Blob)
	if err := json.Unmarshal(data, blob); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal blob")
	}
	return blob, nil
}

// DecodeFileContent decodes the payload of a single file from the contents endpoint.
func DecodeFileContent(data []byte) (*FileContent, error) {
	file := new(FileContent)
	if err := json.Unmarshal(data, file); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal file content")
	}
	return file, nil
}

// DecodeDirectoryListing decodes the array returned by the contents endpoint for a directory.
// A null payload yields an empty, non-nil listing.
func DecodeDirectoryListing(data []byte) ([]*DirectoryContent, error) {
	var entries []*DirectoryContent
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal directory listing")
	}
	if entries == nil {
		entries = []*DirectoryContent{}
	}
	return entries, nil
}

// DecodeContents decodes a contents endpoint payload whose shape is not known up front.
// An object yields a file, an array yields a directory listing.
func DecodeContents(data []byte) (*FileContent, []*DirectoryContent, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil, errors.New("empty contents payload")
	}
	switch trimmed[0] {
	case '{':
		file, err := DecodeFileContent(trimmed)
		return file, nil, err
	case '[':
		entries, err := DecodeDirectoryListing(trimmed)
		return nil, entries, err
	default:
		return nil, nil, errors.Errorf("unexpected contents payload starting with %q", trimmed[0])
	}
}

// Decoded returns the raw bytes of the blob.
func (b *Blob) Decoded() ([]byte, error) {
	if b == nil {
		return nil, ErrNoContent
	}
	return decodeBody(b.Content, b.Encoding)
}

// Decoded returns the raw bytes of the file.
func (f *FileContent) Decoded() ([]byte, error) {
	if f == nil {
		return nil, ErrNoContent
	}
	return decodeBody(f.Content, f.Encoding)
}

func decodeBody(content, encoding *string) ([]byte, error) {
	if content == nil {
		return nil, ErrNoContent
	}
	enc := ""
	if encoding != nil {
		enc = strings.ToLower(strings.TrimSpace(*encoding))
	}
	switch enc {
	case EncodingUTF8:
		return []byte(*content), nil
	case EncodingBase64:
		// GitHub wraps base64 bodies at 60 columns.
		cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(*content)
		raw, err := base64.StdEncoding.DecodeString(cleaned)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode base64 content")
		}
		return raw, nil
	default:
		return nil, &UnsupportedEncodingError{Encoding: enc}
	}
}
