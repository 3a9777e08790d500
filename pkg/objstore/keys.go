package objstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelier-lab/atelier/pkg/constants"
)

// BuildKey returns the bucket key for a new asset. The id is the owning
// user or entity, the timestamp keeps keys unique per owner.
func BuildKey(folder string, id uint, ext string) string {
	folder = strings.Trim(folder, "/")
	return fmt.Sprintf("%s/%d_%d.%s", folder, id, time.Now().UnixMilli(), ext)
}

// BenchmarkFolder returns the folder of the n-th benchmark image of an
// artist, counted from zero.
func BenchmarkFolder(n int) string {
	return fmt.Sprintf("%s/benchmarks_%d", constants.AssetFolderArtists, n)
}

// ExtFromFilename returns the lower-cased extension of an uploaded file
// name without the dot, or "bin" if it has none.
func ExtFromFilename(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "bin"
	}
	return strings.ToLower(name[idx+1:])
}
