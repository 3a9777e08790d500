package objstore

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey(t *testing.T) {
	key := BuildKey("covers", 42, "png")
	assert.Regexp(t, regexp.MustCompile(`^covers/42_\d+\.png$`), key)

	// Surrounding slashes never end up in the key.
	key = BuildKey("/artists/benchmarks_0/", 7, "jpg")
	assert.Regexp(t, regexp.MustCompile(`^artists/benchmarks_0/7_\d+\.jpg$`), key)
}

func TestBenchmarkFolder(t *testing.T) {
	assert.Equal(t, "artists/benchmarks_0", BenchmarkFolder(0))
	assert.Equal(t, "artists/benchmarks_3", BenchmarkFolder(3))
}

func TestExtFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.png", "png"},
		{"photo.PNG", "png"},
		{"archive.tar.gz", "gz"},
		{"noextension", "bin"},
		{"trailingdot.", "bin"},
		{".hidden", "hidden"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtFromFilename(tt.name), "filename %q", tt.name)
	}
}
