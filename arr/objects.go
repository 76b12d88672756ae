package arr

import (
	"fmt"
	"maps"

	"github.com/mitchellh/copystructure"
)

// Extend copies every key of each src into dst, in order, so later sources
// win. It modifies and returns dst.
//
//	arr.Extend(cfg, overrides, flags)
func Extend[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	for _, src := range srcs {
		maps.Copy(dst, src)
	}
	return dst
}

// Defaults fills in the keys of dst that are absent, taking each from the
// first source that has it. Keys already present in dst are never
// overwritten, even when their value is the zero value. It modifies and
// returns dst.
func Defaults[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	for _, src := range srcs {
		for k, v := range src {
			if _, exists := dst[k]; !exists {
				dst[k] = v
			}
		}
	}
	return dst
}

// CloneDeep returns a deep copy of m, including nested maps and slices, so
// that neither copy observes later changes to the other. Extend and Defaults
// only copy top-level references; clone a source first when that matters.
func CloneDeep(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	c, err := copystructure.Copy(m)
	if err != nil {
		return nil, fmt.Errorf("arr: clone: %w", err)
	}
	return c.(map[string]any), nil
}
