// Package dedup removes duplicate elements from ordered sequences while
// preserving first-occurrence order.
package dedup

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNilInput is returned when the input sequence is nil.
var ErrNilInput = errors.New("input sequence must not be nil")

// Dedup returns a new slice containing each distinct value of items
// exactly once, in first-occurrence order. Use this entry point when the
// element type supports direct equality; it skips key conversion.
//
// A nil input returns ErrNilInput. An empty input returns an empty,
// non-nil slice. Runs in O(n) time with O(n) auxiliary space.
func Dedup[T comparable](items []T) ([]T, error) {
	if items == nil {
		return nil, ErrNilInput
	}

	seen := make(map[T]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	return unique, nil
}

// DedupAny returns a new slice containing each distinct element of items
// exactly once, in first-occurrence order. Elements whose type does not
// support direct equality ([]any and map[string]any, at any nesting
// depth) are compared through a canonical key; the original element, not
// the key, is retained in the output.
//
// A nil input returns ErrNilInput. An empty input returns an empty,
// non-nil slice. Runs in O(n) time with O(n) auxiliary space.
func DedupAny(items []any) ([]any, error) {
	if items == nil {
		return nil, ErrNilInput
	}

	seen := make(map[string]struct{}, len(items))
	unique := make([]any, 0, len(items))
	for _, item := range items {
		key := canonicalKey(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique, nil
}

// canonicalKey derives a hashable string representation of v, used only
// for equality testing. Slices map to the ordered keys of their
// elements; maps map to their key-sorted pairs, so two maps with the
// same entries compare equal regardless of insertion order. Scalars are
// tagged with their Go type so values like int(1) and string("1") stay
// distinct.
func canonicalKey(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = canonicalKey(elem)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%q=%s", k, canonicalKey(val[k]))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("%T:%v", val, val)
	}
}
