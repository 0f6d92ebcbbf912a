// Package merge combines freshly polled newest-first rows with the rows
// already held by a polling cache.
package merge

// Newest prepends fresh to prev and drops as many of the oldest rows of prev
// as there are fresh rows, so the result never grows past len(prev)
// once prev is full.
//
// Rows are not deduplicated: fresh is expected to hold only rows newer
// than the head of prev (see NewerThan). Duplicates in fresh are kept.
func Newest[E any](fresh, prev []E) []E {
	keep := len(prev) - len(fresh)
	if keep < 0 {
		keep = 0
	}

	ret := make([]E, 0, len(fresh)+keep)
	ret = append(ret, fresh...)
	ret = append(ret, prev[:keep]...)
	return ret
}

// NewerThan returns the leading rows of fresh (newest first) that are newer than head.
func NewerThan[E any](fresh []E, head E, newer func(a, b E) bool) []E {
	for i, e := range fresh {
		if !newer(e, head) {
			return fresh[:i]
		}
	}
	return fresh
}

// Poll merges a polled page into prev.
// An empty prev is replaced by the page.
func Poll[E any](page, prev []E, newer func(a, b E) bool) []E {
	if len(prev) == 0 {
		return append([]E(nil), page...)
	}
	return Newest(NewerThan(page, prev[0], newer), prev)
}
