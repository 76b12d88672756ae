package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// A path such as "user.address.city" walks nested map[string]any values one
// segment at a time. [PluckPath] is built on [Get].
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London"
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
// ─────────────────────────────────────────────────────────────────────────────

// lookup walks path through m. It fails when a segment is missing or an
// intermediate value is not a map[string]any.
func lookup(m map[string]any, path string) (any, bool) {
	var current any = m
	for _, seg := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = node[seg]; !ok {
			return nil, false
		}
	}
	return current, true
}

// Get retrieves the value at path. Returns def[0] (or nil) when the path
// does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := lookup(m, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether path exists in m. A present nil value counts.
func Has(m map[string]any, path string) bool {
	_, ok := lookup(m, path)
	return ok
}

// Set writes value at path, creating (or replacing non-map values with)
// intermediate maps as needed.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[head].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[head] = child
	}
	Set(child, rest, value)
}
