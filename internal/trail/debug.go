package trail

import "github.com/kr/pretty"

// DebugString renders the trail's current entries for diagnostics: the MUS
// Shrinker's -v logging path (internal/mus.Verbose) and this package's own
// WalkReasons test helper both use this instead of %#v, so that nested
// Reason values print field names instead of a flat struct dump.
func (t *Trail) DebugString() string {
	return pretty.Sprint(t.entries)
}
