package field

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/arenakita/arenakita-backend/internal/venue"
)

// Directory is the read-only field lookup used on the booking path.
// Entries may be up to ttl stale unless invalidated by a write.
// Only fields of approved venues are cached: approval is the one venue
// transition that changes bookability and it never reverts.
type Directory struct {
	repo  Repository
	cache *cache.Cache
}

// NewDirectory creates a Directory caching lookups for ttl.
func NewDirectory(repo Repository, ttl time.Duration) *Directory {
	return &Directory{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Get returns the field with id, or ErrNotFound.
func (d *Directory) Get(ctx context.Context, id string) (*Field, error) {
	if v, ok := d.cache.Get(id); ok {
		f := *v.(*Field)
		return &f, nil
	}

	f, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.VenueStatus == string(venue.StatusApproved) {
		cached := *f
		d.cache.SetDefault(id, &cached)
	}
	return f, nil
}

// Invalidate drops the cached entry for id.
func (d *Directory) Invalidate(id string) {
	d.cache.Delete(id)
}

// VenueChanged drops the cached fields of venueID, which carry its name and manager.
func (d *Directory) VenueChanged(venueID string) {
	for id, item := range d.cache.Items() {
		if f, ok := item.Object.(*Field); ok && f.VenueID == venueID {
			d.cache.Delete(id)
		}
	}
}
