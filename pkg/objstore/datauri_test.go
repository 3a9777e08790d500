package objstore

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	data, ext, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "png", ext)
}

func TestDecodeDataURIRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a data uri", "https://example.com/image.png"},
		{"missing base64 marker", "data:image/png,rawbytes"},
		{"empty extension", "data:image/;base64,aGk="},
		{"broken base64", "data:image/png;base64,%%%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeDataURI(tt.value)
			assert.ErrorIs(t, err, ErrInvalidDataURI)
		})
	}
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/jpeg;base64,aGk="))
	assert.False(t, IsDataURI("https://example.com/a.jpg"))
	assert.False(t, IsDataURI(""))
}

func TestContentTypeForExt(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeForExt("png"))
	assert.Equal(t, "image/jpeg", ContentTypeForExt("JPEG"))
}
