// Package scutil collects small cross-cutting helpers used by the
// persistence engine, the pipeline, and the vendor adapters: chunking,
// canonical-JSON hashing, indexing, and the "Infinity" JSON escape hatch for
// price tiers.
package scutil

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"math"
	"sort"
)

// ChunkList splits items into consecutive chunks of at most n elements,
// mirroring the Python chunk_list helper used throughout the upsert path to
// stay under a backend's bound-parameter limit.
func ChunkList[T any](items []T, n int) [][]T {
	if n <= 0 {
		n = len(items)
		if n == 0 {
			return nil
		}
	}
	var chunks [][]T
	for i := 0; i < len(items); i += n {
		end := i + n
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}

// IndexBy indexes items by a derived key. A later duplicate silently
// overwrites an earlier one, matching scmodels_to_dict's documented "later
// wins" rule; IndexByStrict is the variant that rejects duplicates.
func IndexBy[T any, K comparable](items []T, keyFn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[keyFn(item)] = item
	}
	return out
}

// IndexByStrict is IndexBy but returns ok=false the first time a duplicate
// key is encountered, for callers that must reject ambiguous input.
func IndexByStrict[T any, K comparable](items []T, keyFn func(T) K) (map[K]T, bool) {
	out := make(map[K]T, len(items))
	for _, item := range items {
		k := keyFn(item)
		if _, exists := out[k]; exists {
			return nil, false
		}
		out[k] = item
	}
	return out, true
}

// FloatInfToString maps +/-Inf to the string literals "Infinity"/"-Infinity"
// so a price-tier bound survives a round-trip through strict JSON; any other
// float is returned unchanged.
func FloatInfToString(f float64) interface{} {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return f
	}
}

// StringToFloatInf is the inverse of FloatInfToString.
func StringToFloatInf(v interface{}) float64 {
	switch x := v.(type) {
	case string:
		switch x {
		case "Infinity":
			return math.Inf(1)
		case "-Infinity":
			return math.Inf(-1)
		}
	case float64:
		return x
	}
	return 0
}

// JSONHash returns the SHA-1 hex digest of v's canonical (sorted-key) JSON
// encoding, used for disk-cache keys and for row/table/database content
// hashing. Mirrors the Python jsoned_hash helper.
func JSONHash(v interface{}) string {
	sum := sha1.Sum([]byte(CanonicalJSON(v)))
	return hex.EncodeToString(sum[:])
}

// CanonicalJSON returns v's JSON encoding with every map's keys sorted, so
// two structurally-equal values serialize identically regardless of Go's
// randomized map iteration order. Used as the row/primary-key key format
// for hashing (matches Python's json.dumps(..., sort_keys=True)).
func CanonicalJSON(v interface{}) string {
	canon := canonicalize(v)
	b, _ := json.Marshal(canon)
	return string(b)
}

// canonicalize round-trips v through JSON so map keys sort deterministically
// regardless of the original Go type (encoding/json already sorts map[string]
// keys, but nested structs need re-marshaling to normalize field order via
// maps for a stable hash across struct-shape changes that don't alter data).
func canonicalize(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var generic interface{}
	if err := json.Unmarshal(b, &generic); err != nil {
		return v
	}
	return sortedCopy(generic)
}

func sortedCopy(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]interface{}, len(x))
		for _, k := range keys {
			out[k] = sortedCopy(x[k])
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = sortedCopy(e)
		}
		return out
	default:
		return x
	}
}
