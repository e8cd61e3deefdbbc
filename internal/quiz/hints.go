package quiz

import "errors"

// MaxHints caps the hint ladder. The fourth request is rejected before it
// reaches the network layer.
const MaxHints = 3

// ErrNoMoreHints is returned when the ladder is exhausted.
var ErrNoMoreHints = errors.New("no more hints available")

// ErrHintInFlight is returned when a hint fetch is already pending.
var ErrHintInFlight = errors.New("hint request already in flight")

// Hints is the graduated hint ladder for one attempt. Level n is always
// len(received)+1, so the nth fetched hint used level n.
type Hints struct {
	received []string
	loading  bool
}

// CanRequest reports whether another hint may be requested.
func (h *Hints) CanRequest() bool {
	return !h.loading && len(h.received) < MaxHints
}

// Begin reserves the next hint level and marks the fetch in flight.
func (h *Hints) Begin() (int, error) {
	if h.loading {
		return 0, ErrHintInFlight
	}
	if len(h.received) >= MaxHints {
		return 0, ErrNoMoreHints
	}
	h.loading = true
	return len(h.received) + 1, nil
}

// Resolve records a fetched hint and clears the in-flight flag.
func (h *Hints) Resolve(text string) {
	if !h.loading {
		return
	}
	h.loading = false
	h.received = append(h.received, text)
}

// Fail clears the in-flight flag without consuming a level, so the same
// level can be retried.
func (h *Hints) Fail() {
	h.loading = false
}

// Loading reports whether a fetch is pending.
func (h *Hints) Loading() bool { return h.loading }

// All returns the hints received so far, in level order.
func (h *Hints) All() []string { return h.received }

// Count returns how many hints have been received.
func (h *Hints) Count() int { return len(h.received) }
