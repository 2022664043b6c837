// Package fleet tracks the set of aircraft currently broadcasting,
// keyed by UAS ID, with TTL-based expiry — the multi-aircraft analogue
// of a BFD session manager's discriminator-keyed registry, but aging
// entries out on a cache TTL instead of a detection timer.
package fleet

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/openflightid/godid/internal/odid"
)

// ErrNotFound indicates no tracked aircraft exists for the given key.
var ErrNotFound = errors.New("fleet: aircraft not found")

// Tracker holds one odid.UASData per aircraft, evicting entries that
// have not been refreshed within TTL.
type Tracker struct {
	store *cache.Cache
	log   *slog.Logger
}

// New constructs a Tracker with the given expiry TTL and periodic
// cleanup interval. cleanupInterval controls how often expired entries
// are swept from memory; it does not affect when an entry is considered
// expired for lookup purposes.
func New(ttl, cleanupInterval time.Duration, log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.Default()
	}
	t := &Tracker{
		store: cache.New(ttl, cleanupInterval),
		log:   log,
	}
	t.store.OnEvicted(func(key string, _ interface{}) {
		t.log.Debug("aircraft expired from fleet", "key", key)
	})
	return t
}

// Track registers key as a tracked aircraft, creating its aggregate if
// absent, and resets its TTL. Returns the aircraft's aggregate.
func (t *Tracker) Track(key string) *odid.UASData {
	if existing, ok := t.store.Get(key); ok {
		data := existing.(*odid.UASData)
		t.store.SetDefault(key, data)
		return data
	}
	data := odid.NewUASData()
	t.store.SetDefault(key, data)
	t.log.Info("tracking new aircraft", "key", key)
	return data
}

// Ingest decodes msg into the aircraft identified by key, creating the
// aircraft's aggregate if this is the first message seen for it, and
// refreshes its TTL.
func (t *Tracker) Ingest(key string, msg [odid.MessageSize]byte) (odid.MessageType, error) {
	data := t.Track(key)
	msgType, err := data.IngestMessage(msg)
	if err != nil {
		return msgType, fmt.Errorf("fleet: ingest for %s: %w", key, err)
	}
	t.store.SetDefault(key, data)
	return msgType, nil
}

// Get returns the aggregate tracked under key.
func (t *Tracker) Get(key string) (*odid.UASData, error) {
	v, ok := t.store.Get(key)
	if !ok {
		return nil, fmt.Errorf("fleet: %s: %w", key, ErrNotFound)
	}
	return v.(*odid.UASData), nil
}

// Remove stops tracking the aircraft identified by key.
func (t *Tracker) Remove(key string) {
	t.store.Delete(key)
}

// Len returns the number of aircraft currently tracked.
func (t *Tracker) Len() int {
	return t.store.ItemCount()
}

// Snapshot returns a point-in-time copy of every tracked aircraft, keyed
// by the same key passed to Track/Ingest.
func (t *Tracker) Snapshot() map[string]*odid.UASData {
	items := t.store.Items()
	out := make(map[string]*odid.UASData, len(items))
	for key, item := range items {
		out[key] = item.Object.(*odid.UASData)
	}
	return out
}
