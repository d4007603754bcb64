package metric

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one raw field as it appeared in the source mapping, paired with
// its original unparsed value. Entries are owned by the store bucket they
// land in and never mutated after construction.
type Entry struct {
	Key   string
	Value any
}

// Store groups source entries by normalized key. Multiple raw keys can share
// a bucket ("Weight" and "體重"); insertion order within a bucket is
// preserved and used as a tie-break during resolution. The store is built
// once per input file and read-only afterward.
type Store struct {
	buckets map[string][]Entry
}

// NewStore builds a store from ordered (raw key, value) pairs. Every input
// pair lands in exactly one bucket; nil values are kept as present entries
// so that absence stays representable.
func NewStore(pairs []Entry) *Store {
	buckets := make(map[string][]Entry, len(pairs))
	for _, p := range pairs {
		k := NormalizeKey(p.Key)
		buckets[k] = append(buckets[k], p)
	}
	return &Store{buckets: buckets}
}

// NewStoreFromMap builds a store from an unordered mapping. Keys are sorted
// first so bucket order stays deterministic across runs.
func NewStoreFromMap(items map[string]any) *Store {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]Entry, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Entry{Key: k, Value: items[k]})
	}
	return NewStore(pairs)
}

// Len reports the number of buckets.
func (s *Store) Len() int { return len(s.buckets) }

// Resolve looks up candidate names in order and returns the best-matching
// entry. Within a candidate's bucket the tie-break is: exact
// case-insensitive match, then first raw key containing the candidate as a
// case-insensitive substring, then the shortest raw key (the shortest name
// is least likely to be a decorated variant such as a control or percentage
// column). A later candidate is only consulted when the current candidate's
// bucket is empty, so callers must order candidates most-specific-first.
func (s *Store) Resolve(candidates ...string) (Entry, bool) {
	for _, candidate := range candidates {
		entries := s.buckets[NormalizeKey(candidate)]
		if len(entries) == 0 {
			continue
		}
		lower := strings.ToLower(candidate)
		for _, e := range entries {
			if strings.ToLower(e.Key) == lower {
				return e, true
			}
		}
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Key), lower) {
				return e, true
			}
		}
		best := entries[0]
		for _, e := range entries[1:] {
			if len(e.Key) < len(best.Key) {
				best = e
			}
		}
		return best, true
	}
	return Entry{}, false
}

// Value returns the raw value of the best-matching entry.
func (s *Store) Value(candidates ...string) (any, bool) {
	e, ok := s.Resolve(candidates...)
	if !ok {
		return nil, false
	}
	return e.Value, true
}

// Number resolves a candidate list and coerces the winning raw value to a
// float. Unresolvable names and unparseable values both report a miss.
func (s *Store) Number(candidates ...string) (float64, bool) {
	v, ok := s.Value(candidates...)
	if !ok {
		return 0, false
	}
	return ToNumber(v)
}

// Text resolves a candidate list and stringifies the winning value, trimmed.
// A value that trims to empty reports a miss.
func (s *Store) Text(candidates ...string) (string, bool) {
	v, ok := s.Value(candidates...)
	if !ok || v == nil {
		return "", false
	}
	text := strings.TrimSpace(fmt.Sprint(v))
	if text == "" {
		return "", false
	}
	return text, true
}
