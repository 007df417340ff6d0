// Package paymentdelivery manages delivery layer of payments.
package paymentdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/altx-finance/ledger-engine/internal/cardcontrol"
	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/idempotencyservice"
	"github.com/altx-finance/ledger-engine/internal/interbank"
	"github.com/altx-finance/ledger-engine/internal/middleware"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"
	"github.com/altx-finance/ledger-engine/pkg/jsonresponse"
)

// paymentsEndpoint scopes idempotency records of the payment endpoint.
const paymentsEndpoint = "POST /payments"

// Service provides service layer interface needed by payment delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package paymentdelivery
type Service interface {
	CreatePayment(ctx context.Context, actor string, arg domain.CreatePaymentParams) (domain.PaymentResult, error)
	GetSchedule(ctx context.Context, id int64, owner string) (domain.PaymentSchedule, error)
	ListSchedules(ctx context.Context, owner string) ([]domain.PaymentSchedule, error)
	CancelSchedule(ctx context.Context, actor string, id int64, owner string) (domain.PaymentSchedule, error)
}

// Guard wraps mutating requests with stored-response replay.
type Guard interface {
	Execute(ctx context.Context, key, endpoint, scope string, payload interface{}, fn func(ctx context.Context) (int, interface{}, error)) (idempotencyservice.Outcome, error)
}

// Handler facilitates payment delivery layer logic.
type Handler struct {
	service Service
	guard   Guard
}

// NewHandler returns payment handler.
func NewHandler(s Service, g Guard) *Handler {
	return &Handler{service: s, guard: g}
}

type createRequest struct {
	FromAccountID   int64      `json:"from_account_id" binding:"required,min=1"`
	ToAccountID     *int64     `json:"to_account_id" binding:"omitempty,min=1"`
	Amount          string     `json:"amount" binding:"required"`
	Currency        string     `json:"currency" binding:"required,currency"`
	IdempotencyKey  string     `json:"idempotency_key" binding:"required"`
	TransferType    string     `json:"transfer_type" binding:"omitempty,oneof=INTERNAL INTERBANK"`
	CardToken       string     `json:"card_token"`
	MCC             *int       `json:"mcc"`
	GeoLocation     string     `json:"geo_location"`
	BeneficiaryIBAN string     `json:"beneficiary_iban"`
	BeneficiaryBank string     `json:"beneficiary_bank"`
	Description     string     `json:"description"`
	ScheduledFor    *time.Time `json:"scheduled_for"`
}

type paymentData struct {
	Payment domain.PaymentResult `json:"payment"`
}
type paymentResponse struct {
	Data paymentData `json:"data,omitempty"`
}

// Create handles http request to execute a payment. The whole pipeline runs
// under the idempotency guard: a retry with the same key and payload replays
// the stored response, whatever it was.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	actor := middleware.Actor(gctx)

	arg := domain.CreatePaymentParams{
		FromAccountID:   req.FromAccountID,
		ToAccountID:     req.ToAccountID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		IdempotencyKey:  req.IdempotencyKey,
		TraceID:         gctx.GetHeader("X-Request-ID"),
		TransferType:    domain.TransferType(req.TransferType),
		CardToken:       req.CardToken,
		MCC:             req.MCC,
		GeoLocation:     req.GeoLocation,
		BeneficiaryIBAN: req.BeneficiaryIBAN,
		BeneficiaryBank: req.BeneficiaryBank,
		Description:     req.Description,
		ScheduledFor:    req.ScheduledFor,
	}

	outcome, err := h.guard.Execute(ctx, req.IdempotencyKey, paymentsEndpoint, middleware.Owner(gctx), req,
		func(ctx context.Context) (int, interface{}, error) {
			result, err := h.service.CreatePayment(ctx, actor, arg)
			if err != nil {
				status, public := statusForError(err)
				return status, jsonresponse.Error(public), err
			}

			return http.StatusOK, paymentResponse{Data: paymentData{result}}, nil
		})
	if err != nil {
		l.Info().Err(err).Send()

		status, public := statusForError(err)
		gctx.JSON(status, jsonresponse.Error(public))

		return
	}

	gctx.Data(outcome.Status, "application/json; charset=utf-8", outcome.Body)
}

// statusForError maps pipeline rejections to HTTP statuses. Unrecognized
// errors are masked as internal.
func statusForError(err error) (int, error) {
	switch err {
	case
		domain.ErrInvalidIdempotencyKey,
		domain.ErrRecipientRequired,
		domain.ErrBeneficiaryRequired,
		domain.ErrInvalidAmount,
		domain.ErrNegativeAmount,
		domain.ErrSameAccountTransfer,
		domain.ErrCurrencyMismatch,
		domain.ErrInsufficientBalance,
		domain.ErrAccountInactive:
		return http.StatusBadRequest, err
	case
		domain.ErrAccountNotFound,
		cardcontrol.ErrCardNotFound:
		return http.StatusNotFound, err
	case domain.ErrKYCNotVerified:
		return http.StatusForbidden, err
	case
		cardcontrol.ErrCardFrozen,
		cardcontrol.ErrMCCNotAllowed,
		cardcontrol.ErrGeoNotAllowed,
		cardcontrol.ErrCardLimitExceeded:
		return http.StatusUnprocessableEntity, err
	case
		domain.ErrConcurrentModification,
		domain.ErrIdempotencyConflict,
		domain.ErrIdempotencyInProgress:
		return http.StatusConflict, err
	case interbank.ErrGatewayUnavailable:
		return http.StatusBadGateway, err
	}

	if errors.Is(err, domain.ErrFraudSuspected) || errors.Is(err, domain.ErrLimitExceeded) {
		return http.StatusUnprocessableEntity, err
	}

	return http.StatusInternalServerError, errorspkg.ErrInternal
}

type scheduleURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type scheduleData struct {
	Schedule domain.PaymentSchedule `json:"schedule"`
}
type scheduleResponse struct {
	Data scheduleData `json:"data,omitempty"`
}

type schedulesData struct {
	Schedules []domain.PaymentSchedule `json:"schedules"`
}
type schedulesResponse struct {
	Data schedulesData `json:"data,omitempty"`
}

// GetSchedule handles http request to get one of the owner's schedules.
func (h *Handler) GetSchedule(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri scheduleURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	schedule, err := h.service.GetSchedule(ctx, uri.ID, middleware.Owner(gctx))
	if err != nil {
		if err == domain.ErrScheduleNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, scheduleResponse{Data: scheduleData{schedule}})
}

// ListSchedules handles http request to list the owner's schedules.
func (h *Handler) ListSchedules(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	schedules, err := h.service.ListSchedules(ctx, middleware.Owner(gctx))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, schedulesResponse{Data: schedulesData{schedules}})
}

// CancelSchedule handles http request to cancel a schedule that has not run.
func (h *Handler) CancelSchedule(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri scheduleURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	schedule, err := h.service.CancelSchedule(ctx, middleware.Actor(gctx), uri.ID, middleware.Owner(gctx))
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrScheduleNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))

			return
		case domain.ErrScheduleNotCancellable:
			gctx.JSON(http.StatusConflict, jsonresponse.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, scheduleResponse{Data: scheduleData{schedule}})
}
