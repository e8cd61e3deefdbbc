// Package latest guards against stale responses from overlapping fetches of
// the same resource. Each fetch takes a sequence number from Next; when the
// response arrives, Accept reports whether it is still the newest in flight.
// Older responses are discarded instead of overwriting fresher state.
package latest

// Tracker issues monotonically increasing sequence numbers for one resource.
// It is used from the Bubble Tea update loop only, so it needs no locking.
type Tracker struct {
	issued   uint64
	accepted uint64
}

// Next reserves the next sequence number. Call once per outgoing fetch.
func (t *Tracker) Next() uint64 {
	t.issued++
	return t.issued
}

// Last returns the most recently issued sequence number.
func (t *Tracker) Last() uint64 {
	return t.issued
}

// Accept reports whether a response with the given sequence number may be
// applied. Only the most recently issued fetch is accepted; issuing a newer
// fetch invalidates all earlier ones immediately.
func (t *Tracker) Accept(seq uint64) bool {
	if seq != t.issued {
		return false
	}
	if seq <= t.accepted {
		return false
	}
	t.accepted = seq
	return true
}
