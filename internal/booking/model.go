package booking

import (
	"net/http"
	"time"

	"github.com/pedalshare/rental-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidInterval   = apperror.New(http.StatusBadRequest, "invalid booking interval")
	ErrMissingReference  = apperror.New(http.StatusBadRequest, "booking requires an offer and a requester")
	ErrBookingConflict   = apperror.New(http.StatusConflict, "interval conflicts with an approved booking")
	ErrInvalidTransition = apperror.New(http.StatusForbidden, "state transition not allowed")
	ErrOfferNotFound     = apperror.New(http.StatusNotFound, "offer not found")
	ErrNotOfferOwner     = apperror.New(http.StatusForbidden, "offer is not owned by the user")
)

// State is the lifecycle state of a booking. It is the sole driver of which
// transitions are legal.
type State string

const (
	StateRequested State = "REQUEST"
	StateApproved  State = "APPROVED"
	StateCanceled  State = "CANCELED"
)

// Valid reports whether s is one of the known booking states.
func (s State) Valid() bool {
	switch s {
	case StateRequested, StateApproved, StateCanceled:
		return true
	}
	return false
}

// Booking is a rental request for an offer over a date interval.
// OwnerID is the offer owner's account id, snapshotted so transition guards
// are plain equality checks on opaque account references.
type Booking struct {
	ID          string
	OfferID     string
	OwnerID     string
	RequesterID string
	Interval    Interval
	State       State
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBooking builds a booking in the REQUEST state. The interval is validated
// and normalized; offer, owner and requester references must be non-empty.
func NewBooking(from, to time.Time, offerID, ownerID, requesterID string) (*Booking, error) {
	iv, err := NewInterval(from, to)
	if err != nil {
		return nil, err
	}
	if offerID == "" || ownerID == "" || requesterID == "" {
		return nil, ErrMissingReference
	}

	return &Booking{
		OfferID:     offerID,
		OwnerID:     ownerID,
		RequesterID: requesterID,
		Interval:    iv,
		State:       StateRequested,
	}, nil
}

type op string

const (
	opApprove op = "approve"
	opCancel  op = "cancel"
	opReopen  op = "reopen"
)

type actorRole int

const (
	roleOwner actorRole = iota
	roleRequester
)

type rule struct {
	to      State
	allowed []actorRole
}

// transitions is the full set of legal state transitions. Any (state, op)
// pair missing here is illegal regardless of the actor.
var transitions = map[State]map[op]rule{
	StateRequested: {
		opApprove: {to: StateApproved, allowed: []actorRole{roleOwner}},
		opCancel:  {to: StateCanceled, allowed: []actorRole{roleOwner, roleRequester}},
	},
	StateApproved: {
		opCancel: {to: StateCanceled, allowed: []actorRole{roleOwner, roleRequester}},
	},
	StateCanceled: {
		opReopen: {to: StateRequested, allowed: []actorRole{roleRequester}},
	},
}

// Approve moves a requested booking to APPROVED. Only the offer owner may
// approve; the requester approving their own booking is rejected.
func (b *Booking) Approve(actorID string) error {
	return b.transition(opApprove, actorID)
}

// Cancel moves a requested or approved booking to CANCELED. Both the offer
// owner and the requester may cancel. Cancellation is a state, not a removal.
func (b *Booking) Cancel(actorID string) error {
	return b.transition(opCancel, actorID)
}

// Reopen moves a canceled booking back to REQUEST. Only the requester may
// reopen.
func (b *Booking) Reopen(actorID string) error {
	return b.transition(opReopen, actorID)
}

func (b *Booking) transition(o op, actorID string) error {
	r, ok := transitions[b.State][o]
	if !ok {
		return ErrInvalidTransition
	}
	if !b.actorHasRole(actorID, r.allowed) {
		return ErrInvalidTransition
	}
	b.State = r.to
	return nil
}

func (b *Booking) actorHasRole(actorID string, roles []actorRole) bool {
	for _, role := range roles {
		switch role {
		case roleOwner:
			if actorID == b.OwnerID {
				return true
			}
		case roleRequester:
			if actorID == b.RequesterID {
				return true
			}
		}
	}
	return false
}
