package subscription

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parkreg/internal/logger"
	"parkreg/internal/metrics"
	"parkreg/internal/pricing"
	"parkreg/internal/plate"
)

var (
	ErrNotFound              = errors.New("subscription not found")
	ErrDuplicateSubscription = errors.New("a monthly subscription already exists for this plate")
	ErrInvalidPlate          = errors.New("invalid plate")
	ErrInvalidExpiration     = errors.New("invalid expiration date")
)

const DateLayout = "2006-01-02"

type Service interface {
	Add(ctx context.Context, req AddRequest) (*Subscription, error)
	Remove(ctx context.Context, id int) error
	Renew(ctx context.Context, id int, req RenewRequest) (*Subscription, error)
	Get(ctx context.Context, id int) (*View, error)
	List(ctx context.Context) ([]View, error)
}

type service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location, now func() time.Time) Service {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, loc: loc, now: now}
}

func (s *service) Add(ctx context.Context, req AddRequest) (*Subscription, error) {
	p := plate.Normalize(req.Plate)
	if !plate.Valid(p) {
		return nil, ErrInvalidPlate
	}

	vt, err := pricing.ParseVehicleType(req.VehicleType)
	if err != nil {
		return nil, err
	}

	expiration, err := ParseExpiration(req.ExpirationDate, s.loc)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.FindByPlate(ctx, p)
	switch {
	case err == nil:
		return nil, ErrDuplicateSubscription
	case !errors.Is(err, ErrNotFound):
		return nil, fmt.Errorf("lookup subscription %s: %w", p, err)
	}

	sub, err := s.repo.Create(ctx, NewSubscription{
		Plate:          p,
		VehicleType:    vt,
		Model:          strings.TrimSpace(req.Model),
		Phone:          strings.TrimSpace(req.Phone),
		ExpirationDate: expiration,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("monthly subscription created", "plate", sub.Plate, "expires", sub.ExpirationDate)
	metrics.RecordSubscription("created")
	return sub, nil
}

func (s *service) Remove(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("monthly subscription removed", "subscription_id", id)
	metrics.RecordSubscription("removed")
	return nil
}

func (s *service) Renew(ctx context.Context, id int, req RenewRequest) (*Subscription, error) {
	expiration, err := ParseExpiration(req.ExpirationDate, s.loc)
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.Renew(ctx, id, expiration)
	if err != nil {
		return nil, err
	}

	logger.Info("monthly subscription renewed", "plate", sub.Plate, "expires", sub.ExpirationDate)
	metrics.RecordSubscription("renewed")
	return sub, nil
}

func (s *service) Get(ctx context.Context, id int) (*View, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &View{Subscription: *sub, Expired: !sub.ActiveAt(s.now())}, nil
}

func (s *service) List(ctx context.Context) ([]View, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]View, 0, len(subs))
	for _, sub := range subs {
		views = append(views, View{Subscription: sub, Expired: !sub.ActiveAt(now)})
	}
	return views, nil
}

// ParseExpiration accepts a calendar date (midnight in loc) or an RFC 3339 timestamp.
func ParseExpiration(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiration, s)
}
