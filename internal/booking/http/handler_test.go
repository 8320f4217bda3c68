package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedalshare/rental-booking-backend/internal/booking"
)

const (
	testOfferID     = "3f1c8a4e-9b2d-4c6f-8e1a-5d7b9c0e2f4a"
	testBookingID   = "7e0d2f8c-aaaa-4bbb-8ccc-000000000042"
	testOwnerID     = "a1b2c3d4-1111-4aaa-8bbb-000000000001"
	testRequesterID = "a1b2c3d4-2222-4aaa-8bbb-000000000002"
)

// stubService returns canned results so handler tests only exercise binding,
// auth extraction and error mapping.
type stubService struct {
	booking  *booking.Booking
	bookings []*booking.Booking
	days     []time.Time
	err      error

	lastInput booking.RequestInput
	lastActor string
}

func (s *stubService) Request(_ context.Context, in booking.RequestInput) (*booking.Booking, error) {
	s.lastInput = in
	return s.booking, s.err
}

func (s *stubService) Approve(_ context.Context, _, actorID string) (*booking.Booking, error) {
	s.lastActor = actorID
	return s.booking, s.err
}

func (s *stubService) Cancel(_ context.Context, _, actorID string) (*booking.Booking, error) {
	s.lastActor = actorID
	return s.booking, s.err
}

func (s *stubService) Reopen(_ context.Context, _, actorID string) (*booking.Booking, error) {
	s.lastActor = actorID
	return s.booking, s.err
}

func (s *stubService) GetByID(context.Context, string) (*booking.Booking, error) {
	return s.booking, s.err
}

func (s *stubService) ListForOffer(_ context.Context, _, actorID string) ([]*booking.Booking, error) {
	s.lastActor = actorID
	return s.bookings, s.err
}

func (s *stubService) FindApprovedInInterval(context.Context, string, time.Time, time.Time) ([]*booking.Booking, error) {
	return s.bookings, s.err
}

func (s *stubService) BookedDays(context.Context, string, time.Time, time.Time) ([]time.Time, error) {
	return s.days, s.err
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Stand-in for the JWT middleware: trust a test header.
	authMiddleware := func(c *gin.Context) {
		if uid := c.GetHeader("X-Test-User"); uid != "" {
			c.Set("userID", uid)
		}
		c.Next()
	}

	RegisterRoutes(r.Group("/v1"), NewHandler(svc), authMiddleware)
	return r
}

func sampleBooking(state booking.State) *booking.Booking {
	return &booking.Booking{
		ID:          testBookingID,
		OfferID:     testOfferID,
		OwnerID:     testOwnerID,
		RequesterID: testRequesterID,
		Interval: booking.Interval{
			From: time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2030, 6, 3, 23, 59, 59, 0, time.UTC),
		},
		State: state,
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestBookingEndpoint(t *testing.T) {
	svc := &stubService{booking: sampleBooking(booking.StateRequested)}
	r := newTestRouter(svc)

	body := `{"offer_id":"` + testOfferID + `","from":"2030-06-01","to":"2030-06-03"}`
	w := doRequest(t, r, http.MethodPost, "/v1/bookings", testRequesterID, body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testRequesterID, svc.lastInput.RequesterID)
	assert.Equal(t, testOfferID, svc.lastInput.OfferID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "REQUEST", resp.State)
}

func TestRequestBookingUnauthorized(t *testing.T) {
	r := newTestRouter(&stubService{})

	body := `{"offer_id":"` + testOfferID + `","from":"2030-06-01","to":"2030-06-03"}`
	w := doRequest(t, r, http.MethodPost, "/v1/bookings", "", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestBookingBadDate(t *testing.T) {
	r := newTestRouter(&stubService{})

	body := `{"offer_id":"` + testOfferID + `","from":"01.06.2030","to":"2030-06-03"}`
	w := doRequest(t, r, http.MethodPost, "/v1/bookings", testRequesterID, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestBookingConflictMapsTo409(t *testing.T) {
	svc := &stubService{err: booking.ErrBookingConflict}
	r := newTestRouter(svc)

	body := `{"offer_id":"` + testOfferID + `","from":"2030-06-01","to":"2030-06-03"}`
	w := doRequest(t, r, http.MethodPost, "/v1/bookings", testRequesterID, body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveForwardsActor(t *testing.T) {
	svc := &stubService{booking: sampleBooking(booking.StateApproved)}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/v1/bookings/"+testBookingID+"/approve", testOwnerID, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOwnerID, svc.lastActor)
}

func TestApproveInvalidTransitionMapsTo403(t *testing.T) {
	svc := &stubService{err: booking.ErrInvalidTransition}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/v1/bookings/"+testBookingID+"/approve", testRequesterID, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetBookingHiddenFromStrangers(t *testing.T) {
	svc := &stubService{booking: sampleBooking(booking.StateRequested)}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/v1/bookings/"+testBookingID, "a1b2c3d4-3333-4aaa-8bbb-000000000003", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodGet, "/v1/bookings/"+testBookingID, testRequesterID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookedDaysIsPublic(t *testing.T) {
	svc := &stubService{days: []time.Time{
		time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC),
	}}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/v1/offers/"+testOfferID+"/booked-days?from=2030-06-01&to=2030-06-30", "", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp BookedDaysResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, resp.Days)
}

func TestBookedDaysRequiresWindow(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := doRequest(t, r, http.MethodGet, "/v1/offers/"+testOfferID+"/booked-days", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListForOfferRequiresAuth(t *testing.T) {
	svc := &stubService{bookings: []*booking.Booking{sampleBooking(booking.StateRequested)}}
	r := newTestRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/v1/offers/"+testOfferID+"/bookings", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodGet, "/v1/offers/"+testOfferID+"/bookings", testOwnerID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
