package assetctl

import (
	"strings"

	"github.com/atelier-lab/atelier/pkg/constants"
	"github.com/atelier-lab/atelier/pkg/objstore"
)

// RefKind classifies an asset reference field.
type RefKind uint8

const (
	RefEmpty    RefKind = iota // no asset
	RefManaged                 // served from the bucket under the asset path
	RefExternal                // URL kept as-is, never touched by us
	RefInline                  // base64 data URI, to be uploaded
)

// Ref is the parsed form of an asset reference. A value is parsed once
// at the request boundary; everything downstream switches on Kind
// instead of re-inspecting strings.
type Ref struct {
	Kind  RefKind
	Key   string // bucket key, only set for managed references
	Value string // the original string
}

func ParseRef(value string) Ref {
	switch {
	case value == "":
		return Ref{Kind: RefEmpty}
	case strings.HasPrefix(value, constants.AssetPathPrefix):
		return Ref{
			Kind:  RefManaged,
			Key:   strings.TrimPrefix(value, constants.AssetPathPrefix),
			Value: value,
		}
	case objstore.IsDataURI(value):
		return Ref{Kind: RefInline, Value: value}
	default:
		return Ref{Kind: RefExternal, Value: value}
	}
}

// ManagedRef builds the stored reference for a bucket key.
func ManagedRef(key string) string {
	return constants.AssetPathPrefix + key
}
