package booking

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/pedalshare/rental-booking-backend/internal/offer"
)

// RequestInput carries a booking request from the transport layer. The
// requester is the already-resolved actor identity, never credentials.
type RequestInput struct {
	OfferID     string
	RequesterID string
	From        time.Time
	To          time.Time
}

type Service interface {
	// Request validates the candidate booking, rejects it when an approved
	// booking already occupies an overlapping day and persists it otherwise.
	Request(ctx context.Context, in RequestInput) (*Booking, error)

	// Approve, Cancel and Reopen load the booking, run the state machine
	// guard for the given actor and persist the new state.
	Approve(ctx context.Context, id, actorID string) (*Booking, error)
	Cancel(ctx context.Context, id, actorID string) (*Booking, error)
	Reopen(ctx context.Context, id, actorID string) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)

	// ListForOffer returns every booking of an offer, newest first.
	// Restricted to the offer owner.
	ListForOffer(ctx context.Context, offerID, actorID string) ([]*Booking, error)

	// FindApprovedInInterval returns the approved bookings of an offer that
	// overlap the window, ordered by start date.
	FindApprovedInInterval(ctx context.Context, offerID string, from, to time.Time) ([]*Booking, error)

	// BookedDays reports every occupied calendar day of an offer inside the
	// window, one entry per approved booking per day.
	BookedDays(ctx context.Context, offerID string, from, to time.Time) ([]time.Time, error)
}

type service struct {
	repo   Repository
	offers offer.Service
}

func NewService(repo Repository, offers offer.Service) Service {
	return &service{
		repo:   repo,
		offers: offers,
	}
}

func (s *service) Request(ctx context.Context, in RequestInput) (*Booking, error) {
	off, err := s.offers.GetByID(ctx, in.OfferID)
	if err != nil {
		if errors.Is(err, offer.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	b, err := NewBooking(in.From, in.To, off.ID, off.OwnerID, in.RequesterID)
	if err != nil {
		return nil, err
	}

	// Conflict check against approved bookings only. The exclusion constraint
	// on the bookings table backs this up under concurrent requests.
	existing, err := s.repo.FindApprovedOverlapping(ctx, b.OfferID, b.Interval)
	if err != nil {
		return nil, err
	}
	if HasApprovedConflict(b.Interval, existing) {
		return nil, ErrBookingConflict
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Approve(ctx context.Context, id, actorID string) (*Booking, error) {
	return s.mutate(ctx, id, func(b *Booking) error {
		return b.Approve(actorID)
	})
}

func (s *service) Cancel(ctx context.Context, id, actorID string) (*Booking, error) {
	return s.mutate(ctx, id, func(b *Booking) error {
		return b.Cancel(actorID)
	})
}

func (s *service) Reopen(ctx context.Context, id, actorID string) (*Booking, error) {
	return s.mutate(ctx, id, func(b *Booking) error {
		return b.Reopen(actorID)
	})
}

// mutate loads a booking, applies a guarded transition and persists the
// result. A failed guard leaves the stored booking untouched.
func (s *service) mutate(ctx context.Context, id string, fn func(*Booking) error) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(b); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateState(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListForOffer(ctx context.Context, offerID, actorID string) ([]*Booking, error) {
	off, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, offer.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	if off.OwnerID != actorID {
		return nil, ErrNotOfferOwner
	}

	return s.repo.ListByOffer(ctx, offerID)
}

func (s *service) FindApprovedInInterval(ctx context.Context, offerID string, from, to time.Time) ([]*Booking, error) {
	window, err := reportWindow(from, to)
	if err != nil {
		return nil, err
	}

	if _, err := s.offers.GetByID(ctx, offerID); err != nil {
		if errors.Is(err, offer.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	return s.repo.FindApprovedOverlapping(ctx, offerID, window)
}

func (s *service) BookedDays(ctx context.Context, offerID string, from, to time.Time) ([]time.Time, error) {
	bookings, err := s.FindApprovedInInterval(ctx, offerID, from, to)
	if err != nil {
		return nil, err
	}

	window, err := reportWindow(from, to)
	if err != nil {
		return nil, err
	}

	return slices.Collect(BookedDays(window, bookings)), nil
}

// reportWindow normalizes a reporting window. Unlike NewInterval it accepts
// windows that start in the past, so callers can inspect the history of an
// offer's calendar.
func reportWindow(from, to time.Time) (Interval, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{From: startOfDay(from), To: endOfDay(to)}, nil
}
