package objstore

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDataURI is returned when an inline image payload does not
// follow the data:image/<ext>;base64,<payload> form.
var ErrInvalidDataURI = errors.New("invalid base64 image data URI")

const (
	dataURIPrefix = "data:image/"
	base64Marker  = ";base64,"
)

// IsDataURI reports whether the value carries an inline base64 image.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// DecodeDataURI parses an inline image of the form
// data:image/<ext>;base64,<payload> and returns the raw bytes together
// with the image extension.
func DecodeDataURI(s string) (data []byte, ext string, err error) {
	if !strings.HasPrefix(s, dataURIPrefix) {
		return nil, "", ErrInvalidDataURI
	}
	rest := s[len(dataURIPrefix):]
	marker := strings.Index(rest, base64Marker)
	if marker <= 0 {
		return nil, "", ErrInvalidDataURI
	}
	ext = rest[:marker]
	payload := rest[marker+len(base64Marker):]
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return data, ext, nil
}

// ContentTypeForExt returns the MIME type served for an image extension.
func ContentTypeForExt(ext string) string {
	return "image/" + strings.ToLower(ext)
}
