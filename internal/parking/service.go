package parking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkreg/internal/logger"
	"parkreg/internal/metrics"
	"parkreg/internal/plate"
	"parkreg/internal/pricing"
	"parkreg/internal/subscription"
)

// SubscriptionLookup is the part of the subscription registry entry needs.
type SubscriptionLookup interface {
	FindByPlate(ctx context.Context, plate string) (*subscription.Subscription, error)
}

// TicketEncoder turns a session id into a scannable PNG.
type TicketEncoder interface {
	Encode(ctx context.Context, id int64) ([]byte, error)
	EncodeBase64(ctx context.Context, id int64) (string, error)
}

type Service interface {
	RegisterEntry(ctx context.Context, req EntryRequest) (*EntryResult, error)
	RegisterExit(ctx context.Context, req ExitRequest) (*ExitResult, error)
	ListOpen(ctx context.Context) ([]OpenView, error)
	Get(ctx context.Context, id int64) (*Session, error)
	Ticket(ctx context.Context, id int64) ([]byte, error)
}

type service struct {
	repo    Repository
	subs    SubscriptionLookup
	calc    *pricing.Calculator
	tickets TicketEncoder
	now     func() time.Time
}

func NewService(
	repo Repository,
	subs SubscriptionLookup,
	calc *pricing.Calculator,
	tickets TicketEncoder,
	now func() time.Time,
) Service {
	if calc == nil {
		calc = pricing.NewCalculator(nil)
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:    repo,
		subs:    subs,
		calc:    calc,
		tickets: tickets,
		now:     now,
	}
}

func (s *service) RegisterEntry(ctx context.Context, req EntryRequest) (*EntryResult, error) {
	p := plate.Normalize(req.Plate)
	if !plate.Valid(p) {
		return nil, ErrInvalidPlate
	}

	vt, err := pricing.ParseVehicleType(req.VehicleType)
	if err != nil {
		return nil, err
	}

	at := s.at(req.At)

	monthly, err := s.isMonthly(ctx, p, at)
	if err != nil {
		if errors.Is(err, ErrSubscriptionExpired) {
			metrics.RecordRejectedEntry("subscription_expired")
			logger.Info("entry refused, subscription expired", "plate", p)
		}
		return nil, err
	}

	var session *Session
	err = s.repo.WithTx(ctx, func(tx Tx) error {
		var err error
		session, err = tx.Insert(ctx, NewSession{
			Plate:        p,
			VehicleType:  vt,
			EntryTime:    at,
			IsMonthly:    monthly,
			OperatorID:   req.Operator.ID,
			OperatorName: req.Operator.Username,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyParked) {
			metrics.RecordRejectedEntry("already_parked")
			return nil, err
		}
		return nil, fmt.Errorf("register entry for %s: %w", p, err)
	}

	metrics.RecordEntry(string(vt), monthly)
	logger.Info("vehicle entered",
		"session_id", session.ID,
		"plate", session.Plate,
		"vehicle_type", session.VehicleType,
		"is_monthly", session.IsMonthly,
		"operator", req.Operator.Username,
	)

	result := &EntryResult{Session: *session}
	if s.tickets != nil {
		// The session is committed; a ticket can be reissued from its id.
		ticket, err := s.tickets.EncodeBase64(ctx, session.ID)
		if err != nil {
			logger.WithError(err).Warn("failed to issue ticket", "session_id", session.ID)
		} else {
			result.Ticket = ticket
		}
	}
	return result, nil
}

func (s *service) isMonthly(ctx context.Context, p string, at time.Time) (bool, error) {
	if s.subs == nil {
		return false, nil
	}

	sub, err := s.subs.FindByPlate(ctx, p)
	if errors.Is(err, subscription.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup subscription for %s: %w", p, err)
	}
	if !sub.ActiveAt(at) {
		return false, ErrSubscriptionExpired
	}
	return true, nil
}

func (s *service) RegisterExit(ctx context.Context, req ExitRequest) (*ExitResult, error) {
	p := plate.Normalize(req.Plate)
	if req.SessionID == nil && p == "" {
		return nil, ErrMissingReference
	}

	at := s.at(req.At)

	var closed *Session
	err := s.repo.WithTx(ctx, func(tx Tx) error {
		session, err := resolve(ctx, tx, req.SessionID, p)
		if err != nil {
			return err
		}
		if !session.Open() {
			return ErrAlreadyClosed
		}
		if at.Before(session.EntryTime) {
			return pricing.ErrInvalidInterval
		}

		var cost int64
		if !session.IsMonthly {
			cost, err = s.calc.Fee(session.EntryTime, at, session.VehicleType)
			if err != nil {
				return err
			}
		}

		closed, err = tx.ApplyExit(ctx, ExitCommand{
			SessionID:        session.ID,
			ExitTime:         at,
			TotalCost:        cost,
			ExitOperatorID:   req.Operator.ID,
			ExitOperatorName: req.Operator.Username,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordExit(string(closed.VehicleType), closed.IsMonthly, closed.TotalCost)
	logger.Info("vehicle exited",
		"session_id", closed.ID,
		"plate", closed.Plate,
		"total_cost", closed.TotalCost,
		"is_monthly", closed.IsMonthly,
		"operator", req.Operator.Username,
	)

	return &ExitResult{
		Session:      *closed,
		ElapsedHours: pricing.Hours(closed.ExitTime.Sub(closed.EntryTime)),
	}, nil
}

// resolve locks the session an exit refers to. When both an id and a plate
// are given they must name the same vehicle.
func resolve(ctx context.Context, tx Tx, id *int64, p string) (*Session, error) {
	if id != nil {
		session, err := tx.LockByID(ctx, *id)
		if err != nil {
			return nil, err
		}
		if p != "" && session.Plate != p {
			return nil, ErrPlateMismatch
		}
		return session, nil
	}

	open, err := tx.LockOpenByPlate(ctx, p)
	if err != nil {
		return nil, err
	}
	switch len(open) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &open[0], nil
	default:
		logger.Error("open session invariant broken", "plate", p, "open_sessions", len(open))
		return nil, ErrIntegrityViolation
	}
}

func (s *service) ListOpen(ctx context.Context) ([]OpenView, error) {
	sessions, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]OpenView, 0, len(sessions))
	for _, session := range sessions {
		elapsed := now.Sub(session.EntryTime)
		if elapsed < 0 {
			elapsed = 0
		}
		view := OpenView{
			Session:      session,
			ElapsedHours: pricing.Hours(elapsed),
		}
		if !session.IsMonthly {
			view.EstimatedCost, err = s.calc.Quote(session.EntryTime, now, session.VehicleType)
			if err != nil {
				return nil, err
			}
		}
		views = append(views, view)
	}

	metrics.SetOpenSessions(len(views))
	return views, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Session, error) {
	return s.repo.GetByID(ctx, id)
}

// Ticket reissues the QR ticket of an existing session.
func (s *service) Ticket(ctx context.Context, id int64) ([]byte, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if s.tickets == nil {
		return nil, ErrTicketUnavailable
	}
	return s.tickets.Encode(ctx, id)
}

func (s *service) at(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t
}
