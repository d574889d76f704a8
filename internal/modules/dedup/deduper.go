// README: Lead deduplication over a capped FIFO hash history.
package dedup

import "context"

// DefaultCap bounds the per-client hash history.
const DefaultCap = 100

// Store persists an ordered, capped hash list per client. Appending beyond
// the cap evicts the oldest entry (FIFO).
type Store interface {
	Contains(ctx context.Context, clientID, hash string) (bool, error)
	Append(ctx context.Context, clientID, hash string, limit int) error
}

// Deduper decides whether a calculation still needs a CRM submission.
type Deduper struct {
	store Store
	cap   int
}

func NewDeduper(store Store) *Deduper {
	return &Deduper{store: store, cap: DefaultCap}
}

// ShouldSubmit reports whether the hash has not been submitted before.
// Store errors fail open: a broken dedup cache must not block leads.
func (d *Deduper) ShouldSubmit(ctx context.Context, clientID, hash string) bool {
	seen, err := d.store.Contains(ctx, clientID, hash)
	if err != nil {
		return true
	}
	return !seen
}

// RecordSubmitted appends the hash to the client's history. Called before
// the submission outcome is known: a failed remote submission still counts,
// an at-most-one-attempt policy that avoids retry storms on a downstream
// outage.
func (d *Deduper) RecordSubmitted(ctx context.Context, clientID, hash string) error {
	return d.store.Append(ctx, clientID, hash, d.cap)
}
