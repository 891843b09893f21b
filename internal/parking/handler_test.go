package parking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkreg/internal/api"
	"parkreg/internal/auth"
	"parkreg/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) RegisterEntry(ctx context.Context, req EntryRequest) (*EntryResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EntryResult), args.Error(1)
}

func (m *MockService) RegisterExit(ctx context.Context, req ExitRequest) (*ExitResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ExitResult), args.Error(1)
}

func (m *MockService) ListOpen(ctx context.Context) ([]OpenView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OpenView), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int64) (*Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockService) Ticket(ctx context.Context, id int64) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

const testSecret = "test-secret"

func setupRouter(t *testing.T, svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	require.NoError(t, api.RegisterValidators())

	h := NewHandler(svc)
	r := gin.New()
	g := r.Group("/", auth.AuthMiddleware(testSecret, auth.NewSessionStore(testSecret, false)))
	g.POST("/vehicles/entry", h.RegisterEntry)
	g.POST("/vehicles/exit", h.RegisterExit)
	g.GET("/sessions/open", h.ListOpen)
	g.GET("/sessions/:id", h.Get)
	g.GET("/sessions/:id/ticket.png", h.Ticket)
	return r
}

func bearer(t *testing.T) string {
	token, err := auth.GenerateAccessToken(entryOp, testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func TestHandler_RegisterEntry(t *testing.T) {
	svc := new(MockService)
	entry := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	svc.On("RegisterEntry", mock.Anything, EntryRequest{Plate: "AB123CD", VehicleType: "car", Operator: entryOp}).
		Return(&EntryResult{
			Session: Session{ID: 1, Plate: "AB123CD", VehicleType: pricing.Car, EntryTime: entry, OperatorID: 1, OperatorName: "operador1"},
			Ticket:  "cG5n",
		}, nil)

	r := setupRouter(t, svc)
	w := do(t, r, http.MethodPost, "/vehicles/entry", `{"plate":"AB123CD","vehicle_type":"car"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ticket":"cG5n"`)
	assert.Contains(t, w.Body.String(), `"is_monthly":false`)
	assert.NotContains(t, w.Body.String(), "exit_time")
	svc.AssertExpectations(t)
}

func TestHandler_RequiresOperator(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/vehicles/entry", bytes.NewBufferString(`{"plate":"AB1","vehicle_type":"car"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "RegisterEntry", mock.Anything, mock.Anything)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"expired subscription", ErrSubscriptionExpired, http.StatusForbidden, api.CodeSubscriptionExpired},
		{"already parked", ErrAlreadyParked, http.StatusConflict, api.CodeAlreadyParked},
		{"not found", ErrNotFound, http.StatusNotFound, api.CodeNotFound},
		{"already closed", ErrAlreadyClosed, http.StatusConflict, api.CodeAlreadyClosed},
		{"integrity", ErrIntegrityViolation, http.StatusConflict, api.CodeIntegrityViolation},
		{"interval", pricing.ErrInvalidInterval, http.StatusBadRequest, api.CodeInvalidInterval},
		{"missing reference", ErrMissingReference, http.StatusBadRequest, api.CodeValidation},
		{"plate mismatch", ErrPlateMismatch, http.StatusBadRequest, api.CodePlateMismatch},
		{"store down", assert.AnError, http.StatusInternalServerError, api.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("RegisterExit", mock.Anything, mock.Anything).Return(nil, tt.err)
			r := setupRouter(t, svc)

			w := do(t, r, http.MethodPost, "/vehicles/exit", `{"plate":"AB123CD"}`)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}
}

func TestHandler_RegisterExitByID(t *testing.T) {
	svc := new(MockService)
	id := int64(17)
	exit := time.Date(2026, 10, 15, 11, 5, 0, 0, time.UTC)
	svc.On("RegisterExit", mock.Anything, ExitRequest{SessionID: &id, Operator: entryOp}).
		Return(&ExitResult{
			Session:      Session{ID: 17, Plate: "AB123CD", ExitTime: &exit, TotalCost: 750},
			ElapsedHours: 1.08,
		}, nil)

	r := setupRouter(t, svc)
	w := do(t, r, http.MethodPost, "/vehicles/exit", `{"session_id":17}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_cost":750`)
	assert.Contains(t, w.Body.String(), `"elapsed_hours":1.08`)

	w = do(t, r, http.MethodPost, "/vehicles/exit", `{"session_id":-3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListOpen(t *testing.T) {
	svc := new(MockService)
	svc.On("ListOpen", mock.Anything).Return([]OpenView{
		{Session: Session{ID: 1, Plate: "CAR1"}, ElapsedHours: 1.52, EstimatedCost: 1000},
	}, nil)

	r := setupRouter(t, svc)
	w := do(t, r, http.MethodGet, "/sessions/open", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"estimated_cost":1000`)
}

func TestHandler_GetAndTicket(t *testing.T) {
	svc := new(MockService)
	svc.On("Get", mock.Anything, int64(1)).Return(&Session{ID: 1, Plate: "AB12"}, nil)
	svc.On("Get", mock.Anything, int64(2)).Return(nil, ErrNotFound)
	svc.On("Ticket", mock.Anything, int64(1)).Return([]byte("\x89PNG"), nil)
	svc.On("Ticket", mock.Anything, int64(3)).Return(nil, ErrTicketUnavailable)

	r := setupRouter(t, svc)

	w := do(t, r, http.MethodGet, "/sessions/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/sessions/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/sessions/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/sessions/1/ticket.png", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", w.Body.String())

	w = do(t, r, http.MethodGet, "/sessions/3/ticket.png", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, api.CodeTicketUnavailable, errorCode(t, w))
}
