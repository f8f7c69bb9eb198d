package venue

import (
	"context"
	"log/slog"
	"strings"

	"github.com/arenakita/arenakita-backend/internal/auth"
)

type Service interface {
	Register(ctx context.Context, p auth.Principal, req CreateRequest) (*Venue, error)
	// Get returns an approved venue to anyone, and a pending or rejected one
	// only to its manager or a superadmin.
	Get(ctx context.Context, p auth.Principal, id string) (*Venue, error)
	// ListApproved is the public catalogue.
	ListApproved(ctx context.Context, filter Filter) ([]*Venue, int, error)
	ListMine(ctx context.Context, p auth.Principal, filter Filter) ([]*Venue, int, error)
	// ListForReview lists venues of any status for the superadmin.
	ListForReview(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, p auth.Principal, id string, req UpdateRequest) (*Venue, error)
	Approve(ctx context.Context, id string) (*Venue, error)
	Reject(ctx context.Context, id string, reason string) (*Venue, error)
	SetCoverPhoto(ctx context.Context, p auth.Principal, id string, fileID string) (*Venue, error)
	// CheckManage returns nil when p may modify the venue and its fields.
	CheckManage(ctx context.Context, p auth.Principal, venueID string) error
	IsManager(ctx context.Context, venueID, userID string) (bool, error)
}

// ChangeListener is told when a venue's details change.
type ChangeListener interface {
	VenueChanged(venueID string)
}

type service struct {
	repo      Repository
	logger    *slog.Logger
	listeners []ChangeListener
}

func NewService(repo Repository, logger *slog.Logger, listeners ...ChangeListener) Service {
	return &service{repo: repo, logger: logger, listeners: listeners}
}

func (s *service) changed(venueID string) {
	for _, l := range s.listeners {
		l.VenueChanged(venueID)
	}
}

func (s *service) Register(ctx context.Context, p auth.Principal, req CreateRequest) (*Venue, error) {
	if p.Role != auth.RoleManager {
		return nil, ErrManagerRoleNeeded
	}

	v := &Venue{
		ManagerID:   p.UserID,
		Name:        strings.TrimSpace(req.Name),
		City:        strings.TrimSpace(req.City),
		Address:     strings.TrimSpace(req.Address),
		Description: strings.TrimSpace(req.Description),
		Status:      StatusPending,
	}
	if err := validate(v); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "venue registered", "venue_id", v.ID, "manager_id", v.ManagerID)
	return v, nil
}

func (s *service) Get(ctx context.Context, p auth.Principal, id string) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status == StatusApproved || p.IsSuperadmin() || (p.Authenticated() && v.ManagerID == p.UserID) {
		return v, nil
	}
	// Unapproved venues are invisible to everyone else.
	return nil, ErrNotFound
}

func (s *service) ListApproved(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	filter.Status = StatusApproved
	filter.ManagerID = ""
	return s.repo.List(ctx, filter)
}

func (s *service) ListMine(ctx context.Context, p auth.Principal, filter Filter) ([]*Venue, int, error) {
	filter.ManagerID = p.UserID
	return s.repo.List(ctx, filter)
}

func (s *service) ListForReview(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, p auth.Principal, id string, req UpdateRequest) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsSuperadmin() && v.ManagerID != p.UserID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		v.City = strings.TrimSpace(*req.City)
	}
	if req.Address != nil {
		v.Address = strings.TrimSpace(*req.Address)
	}
	if req.Description != nil {
		v.Description = strings.TrimSpace(*req.Description)
	}
	if err := validate(v); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.changed(v.ID)
	return v, nil
}

func (s *service) Approve(ctx context.Context, id string) (*Venue, error) {
	v, err := s.repo.SetStatus(ctx, id, StatusPending, StatusApproved, nil)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "venue approved", "venue_id", id)
	return v, nil
}

func (s *service) Reject(ctx context.Context, id string, reason string) (*Venue, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	v, err := s.repo.SetStatus(ctx, id, StatusPending, StatusRejected, &reason)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "venue rejected", "venue_id", id)
	return v, nil
}

func (s *service) SetCoverPhoto(ctx context.Context, p auth.Principal, id string, fileID string) (*Venue, error) {
	if err := s.CheckManage(ctx, p, id); err != nil {
		return nil, err
	}
	if err := s.repo.SetCoverPhoto(ctx, id, fileID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) CheckManage(ctx context.Context, p auth.Principal, venueID string) error {
	if !p.Authenticated() {
		return ErrPermissionDenied
	}
	if p.IsSuperadmin() {
		// Still surface a 404 for unknown venues.
		_, err := s.repo.GetByID(ctx, venueID)
		return err
	}
	ok, err := s.repo.IsManager(ctx, venueID, p.UserID)
	if err != nil {
		return err
	}
	if !ok {
		if _, err := s.repo.GetByID(ctx, venueID); err != nil {
			return err
		}
		return ErrPermissionDenied
	}
	return nil
}

func (s *service) IsManager(ctx context.Context, venueID, userID string) (bool, error) {
	return s.repo.IsManager(ctx, venueID, userID)
}

func validate(v *Venue) error {
	if v.Name == "" {
		return ErrNameRequired
	}
	if v.City == "" {
		return ErrCityRequired
	}
	return nil
}
