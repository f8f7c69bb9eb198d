package field

import (
	"context"
	"strings"

	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/venue"
)

type Service interface {
	Create(ctx context.Context, p auth.Principal, req CreateRequest) (*Field, error)
	GetByID(ctx context.Context, p auth.Principal, id string) (*Field, error)
	// ListByVenue lists the fields of a venue visible to p.
	ListByVenue(ctx context.Context, p auth.Principal, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, p auth.Principal, id string, req UpdateRequest) (*Field, error)
}

// DefaultHours is applied to fields created without explicit operating hours.
type DefaultHours struct {
	Open  int
	Close int
}

type service struct {
	repo      Repository
	directory *Directory
	venues    venue.Service
	defaults  DefaultHours
}

func NewService(repo Repository, directory *Directory, venues venue.Service, defaults DefaultHours) Service {
	return &service{
		repo:      repo,
		directory: directory,
		venues:    venues,
		defaults:  defaults,
	}
}

func (s *service) Create(ctx context.Context, p auth.Principal, req CreateRequest) (*Field, error) {
	if err := s.venues.CheckManage(ctx, p, req.VenueID); err != nil {
		return nil, err
	}

	f := &Field{
		VenueID:      req.VenueID,
		Name:         strings.TrimSpace(req.Name),
		PricePerHour: req.PricePerHour,
		OpenHour:     s.defaults.Open,
		CloseHour:    s.defaults.Close,
	}
	if req.OpenHour != nil {
		f.OpenHour = *req.OpenHour
	}
	if req.CloseHour != nil {
		f.CloseHour = *req.CloseHour
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, f.ID)
}

func (s *service) GetByID(ctx context.Context, p auth.Principal, id string) (*Field, error) {
	f, err := s.directory.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visible(p, f) {
		return nil, ErrNotFound
	}
	return f, nil
}

func (s *service) ListByVenue(ctx context.Context, p auth.Principal, filter Filter) ([]*Field, int, error) {
	// Resolves venue visibility and 404s for unknown or hidden venues.
	if _, err := s.venues.Get(ctx, p, filter.VenueID); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, p auth.Principal, id string, req UpdateRequest) (*Field, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.venues.CheckManage(ctx, p, f.VenueID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.PricePerHour != nil {
		f.PricePerHour = *req.PricePerHour
	}
	if req.OpenHour != nil {
		f.OpenHour = *req.OpenHour
	}
	if req.CloseHour != nil {
		f.CloseHour = *req.CloseHour
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	s.directory.Invalidate(f.ID)
	return f, nil
}

// visible hides fields of unapproved venues from everyone but their manager and superadmins.
func visible(p auth.Principal, f *Field) bool {
	if f.VenueStatus == string(venue.StatusApproved) || p.IsSuperadmin() {
		return true
	}
	return p.Authenticated() && p.UserID == f.ManagerID
}

func validate(f *Field) error {
	if f.Name == "" {
		return ErrEmptyName
	}
	if f.PricePerHour < 0 {
		return ErrNegativePrice
	}
	if !ValidHours(f.OpenHour, f.CloseHour) {
		return ErrInvalidHours
	}
	return nil
}
