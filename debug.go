package easel

import (
	"fmt"
	"os"
	"time"
)

// passStats accumulates dispatch counters across the surface's lifetime.
// lastPass is only populated when debug mode is on.
type passStats struct {
	events   uint64
	changed  uint64
	redraws  uint64
	lastPass time.Duration
}

// Stats returns the number of dispatched events, the number of passes that
// changed the collection, and the number of repaints so far.
func (s *Surface) Stats() (events, changed, redraws uint64) {
	return s.stats.events, s.stats.changed, s.stats.redraws
}

// debugLog prints one line per pass to stderr.
func (s *Surface) debugLog(ev Event, changed bool) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[easel] pass %T | changed: %v | controls: %d | took: %v\n",
		ev, changed, len(s.controls), s.stats.lastPass)
}
