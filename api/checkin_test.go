package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pduarte/aviacao/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCheckInUseCase is a mock implementation of checkin.CheckInUseCase
type MockCheckInUseCase struct {
	mock.Mock
}

func (m *MockCheckInUseCase) CheckIn(ctx context.Context, ticketID int64) (string, error) {
	args := m.Called(ctx, ticketID)
	return args.String(0), args.Error(1)
}

func TestCheckInHandler_checkIn(t *testing.T) {
	mockService := &MockCheckInUseCase{}
	handler := NewCheckInHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PUT", "/checkin/900", nil)
	c.Params = gin.Params{{Key: "bilhete", Value: "900"}}

	mockService.On("CheckIn", c.Request.Context(), int64(900)).Return("14C", nil)

	handler.checkIn(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response checkInResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "14C", response.Lugar)

	mockService.AssertExpectations(t)
}

func TestCheckInHandler_checkIn_BadTicketID(t *testing.T) {
	mockService := &MockCheckInUseCase{}
	handler := NewCheckInHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PUT", "/checkin/abc", nil)
	c.Params = gin.Params{{Key: "bilhete", Value: "abc"}}

	handler.checkIn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CheckIn")
}

func TestCheckInHandler_checkIn_ServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantKind   string
	}{
		{"ticket not found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"already checked in", domain.ErrAlreadyCheckedIn, http.StatusConflict, "already_checked_in"},
		{"no seat available", domain.ErrNoSeatAvailable, http.StatusConflict, "no_seat_available"},
		{"seat class mismatch", domain.ErrSeatClassMismatch, http.StatusConflict, "seat_class_mismatch"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockCheckInUseCase{}
			handler := NewCheckInHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("PUT", "/checkin/900", nil)
			c.Params = gin.Params{{Key: "bilhete", Value: "900"}}

			mockService.On("CheckIn", c.Request.Context(), int64(900)).Return("", tc.serviceErr)

			handler.checkIn(c)

			assert.Equal(t, tc.wantStatus, w.Code)

			var response map[string]string
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantKind, response["kind"])
		})
	}
}

type allowAllLimiter struct{ calls int }

func (l *allowAllLimiter) Allow(ctx context.Context, callerKey string, limit int64, window time.Duration) (bool, error) {
	l.calls++
	return true, nil
}

type denyLimiter struct{}

func (denyLimiter) Allow(ctx context.Context, callerKey string, limit int64, window time.Duration) (bool, error) {
	return false, nil
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(ctx context.Context, callerKey string, limit int64, window time.Duration) (bool, error) {
	return false, assert.AnError
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(limiter Limiter, perSecond int) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("PUT", "/checkin/900", nil)

		RateLimit(limiter, perSecond)(c)
		if !c.IsAborted() {
			c.Status(http.StatusOK)
		}
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		limiter := &allowAllLimiter{}
		w := run(limiter, 5)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, limiter.calls)
	})

	t.Run("denied", func(t *testing.T) {
		w := run(denyLimiter{}, 5)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))

		var response map[string]string
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "rate_limited", response["kind"])
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		w := run(brokenLimiter{}, 5)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nil limiter disables limiting", func(t *testing.T) {
		w := run(nil, 5)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
