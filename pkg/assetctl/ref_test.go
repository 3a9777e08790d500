package assetctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  RefKind
		key   string
	}{
		{"empty", "", RefEmpty, ""},
		{"managed", "/assets/covers/1_1700000000000.png", RefManaged, "covers/1_1700000000000.png"},
		{"inline", "data:image/png;base64,aGk=", RefInline, ""},
		{"external", "https://example.com/pic.png", RefExternal, ""},
		{"relative path is external", "covers/1_1.png", RefExternal, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseRef(tt.value)
			assert.Equal(t, tt.kind, ref.Kind)
			assert.Equal(t, tt.key, ref.Key)
		})
	}
}

func TestManagedRefRoundTrip(t *testing.T) {
	ref := ManagedRef("covers/9_123.png")
	assert.Equal(t, "/assets/covers/9_123.png", ref)

	parsed := ParseRef(ref)
	assert.Equal(t, RefManaged, parsed.Kind)
	assert.Equal(t, "covers/9_123.png", parsed.Key)
}
