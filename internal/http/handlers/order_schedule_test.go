package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agrimarket-delivery/internal/apperr"
	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/service/negotiation"
	"agrimarket-delivery/internal/service/orderschedule"
	"agrimarket-delivery/internal/truckban"
)

type stubOrderScheduleUsecase struct {
	scheduleFn func(context.Context, domain.Caller, int64, orderschedule.ScheduleInput) (*orderschedule.Result, error)
	getFn      func(context.Context, domain.Caller, int64) (*domain.Order, error)
}

func (s *stubOrderScheduleUsecase) ScheduleAndValidate(ctx context.Context, c domain.Caller, id int64, in orderschedule.ScheduleInput) (*orderschedule.Result, error) {
	return s.scheduleFn(ctx, c, id, in)
}

func (s *stubOrderScheduleUsecase) Get(ctx context.Context, c domain.Caller, id int64) (*domain.Order, error) {
	return s.getFn(ctx, c, id)
}

func scheduledOrder() *domain.Order {
	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	hhmm := "10:00"
	exemption := "government"
	return &domain.Order{
		ID: 5, BuyerID: 1, SellerID: 2, Status: "pending",
		ScheduledDate: &date, ScheduledTime: &hhmm,
		IsExempt: true, ExemptionType: &exemption,
	}
}

func TestOrderScheduleHandler_Update_OK(t *testing.T) {
	t.Parallel()

	uc := &stubOrderScheduleUsecase{
		scheduleFn: func(_ context.Context, c domain.Caller, id int64, in orderschedule.ScheduleInput) (*orderschedule.Result, error) {
			require.Equal(t, int64(5), id)
			require.Equal(t, int64(2), c.UserID)
			require.True(t, in.IsExempt)
			require.Equal(t, "government", *in.ExemptionType)
			require.Equal(t, "10:00", in.ScheduledTime)
			return &orderschedule.Result{Order: scheduledOrder(), Warnings: []string{"route advisory"}}, nil
		},
	}
	body := `{"scheduledDate":"2025-03-04","scheduledTime":"10:00","truckWeightKg":9000,"isExempt":true,"exemptionType":"government"}`
	req := asCaller(withURLParam(newRequest(http.MethodPatch, "/orders/5/schedule", body), "id", "5"), domain.Caller{UserID: 2})
	rr := httptest.NewRecorder()
	NewOrderScheduleHandler(nil, uc).Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[orderScheduleResponse](t, rr)
	require.Equal(t, int64(5), got.Order.OrderID)
	require.Equal(t, "2025-03-04", *got.Order.ScheduledDate)
	require.True(t, got.Order.IsExempt)
	require.Equal(t, []string{"route advisory"}, got.Warnings)
}

func TestOrderScheduleHandler_Update_Violation(t *testing.T) {
	t.Parallel()

	uc := &stubOrderScheduleUsecase{
		scheduleFn: func(context.Context, domain.Caller, int64, orderschedule.ScheduleInput) (*orderschedule.Result, error) {
			return nil, &negotiation.ViolationError{Result: truckban.Result{
				Violations:  []string{"in ban window"},
				Warnings:    []string{"EDSA advisory"},
				Suggestions: []string{"try 9:01 PM"},
			}}
		},
	}
	req := withURLParam(newRequest(http.MethodPatch, "/orders/5/schedule", `{"scheduledDate":"2025-03-04","scheduledTime":"12:00"}`), "id", "5")
	rr := httptest.NewRecorder()
	NewOrderScheduleHandler(nil, uc).Update(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{
		"error": "delivery schedule violates truck ban regulations",
		"violations": ["in ban window"],
		"warnings": ["EDSA advisory"],
		"suggestions": ["try 9:01 PM"]
	}`, rr.Body.String())
}

func TestOrderScheduleHandler_Update_InvalidInput(t *testing.T) {
	t.Parallel()

	uc := &stubOrderScheduleUsecase{
		scheduleFn: func(context.Context, domain.Caller, int64, orderschedule.ScheduleInput) (*orderschedule.Result, error) {
			return nil, apperr.Invalidf("scheduledTime %q must be HH:mm", "25:00")
		},
	}
	req := withURLParam(newRequest(http.MethodPatch, "/orders/5/schedule", `{"scheduledDate":"2025-03-04","scheduledTime":"25:00"}`), "id", "5")
	rr := httptest.NewRecorder()
	NewOrderScheduleHandler(nil, uc).Update(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, `scheduledTime "25:00" must be HH:mm`, decodeBody[errResponse](t, rr).Error)
}

func TestOrderScheduleHandler_Get(t *testing.T) {
	t.Parallel()

	uc := &stubOrderScheduleUsecase{
		getFn: func(_ context.Context, _ domain.Caller, id int64) (*domain.Order, error) {
			if id == 404 {
				return nil, negotiation.ErrOrderNotFound
			}
			if id == 500 {
				return nil, errors.New("boom")
			}
			return scheduledOrder(), nil
		},
	}
	h := NewOrderScheduleHandler(nil, uc)

	rr := httptest.NewRecorder()
	h.Get(rr, withURLParam(newRequest(http.MethodGet, "/orders/5/schedule", ""), "id", "5"))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "10:00", *decodeBody[orderScheduleDTO](t, rr).ScheduledTime)

	rr = httptest.NewRecorder()
	h.Get(rr, withURLParam(newRequest(http.MethodGet, "/orders/404/schedule", ""), "id", "404"))
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.Get(rr, withURLParam(newRequest(http.MethodGet, "/orders/500/schedule", ""), "id", "500"))
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = httptest.NewRecorder()
	h.Get(rr, withURLParam(newRequest(http.MethodGet, "/orders/-1/schedule", ""), "id", "-1"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderScheduleToDTO_Unscheduled(t *testing.T) {
	t.Parallel()

	dto := orderScheduleToDTO(&domain.Order{ID: 3, Status: "pending"})
	require.Nil(t, dto.ScheduledDate)
	require.Nil(t, dto.ScheduledTime)
}
