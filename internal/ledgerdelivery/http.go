// Package ledgerdelivery manages delivery layer of the ledger core.
package ledgerdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/ledgerrepo"
	"github.com/altx-finance/ledger-engine/internal/middleware"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"
	"github.com/altx-finance/ledger-engine/pkg/jsonresponse"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	RecordTransfer(ctx context.Context, actor string, arg domain.RecordTransferParams) (ledgerrepo.TransferResult, error)
	GetHistory(ctx context.Context, accountID int64, limit, offset int32) ([]domain.LedgerEntry, error)
	VerifyAccountBalance(ctx context.Context, accountID int64) (domain.BalanceVerification, error)
	ReconcileAccountBalance(ctx context.Context, actor string, accountID int64) (domain.ReconciliationResult, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type transferRequest struct {
	DebitAccountID  int64  `json:"debit_account_id" binding:"required,min=1"`
	CreditAccountID int64  `json:"credit_account_id" binding:"required,min=1"`
	Amount          string `json:"amount" binding:"required"`
	Currency        string `json:"currency" binding:"required,currency"`
	IdempotencyKey  string `json:"idempotency_key" binding:"required"`
	TraceID         string `json:"trace_id"`
}

type transferData struct {
	Transfer ledgerrepo.TransferResult `json:"transfer"`
}
type transferResponse struct {
	Data transferData `json:"data,omitempty"`
}

// RecordTransfer handles http request to commit a double-entry transfer.
func (h *Handler) RecordTransfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	arg := domain.RecordTransferParams{
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		IdempotencyKey:  req.IdempotencyKey,
		TraceID:         req.TraceID,
	}

	result, err := h.service.RecordTransfer(ctx, middleware.Actor(gctx), arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case
			domain.ErrInvalidIdempotencyKey,
			domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrSameAccountTransfer,
			domain.ErrCurrencyMismatch,
			domain.ErrInsufficientBalance,
			domain.ErrAccountInactive:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

			return
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))

			return
		case
			domain.ErrConcurrentModification,
			domain.ErrIdempotencyConflict:
			gctx.JSON(http.StatusConflict, jsonresponse.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transferResponse{Data: transferData{result}})
}

type accountURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type historyRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type historyData struct {
	Entries []domain.LedgerEntry `json:"entries"`
}
type historyResponse struct {
	Data historyData `json:"data,omitempty"`
}

// GetHistory handles http request to list an account's ledger entries.
func (h *Handler) GetHistory(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req historyRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	entries, err := h.service.GetHistory(ctx, uri.ID, req.PageSize, (req.PageID-1)*req.PageSize)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, historyResponse{Data: historyData{entries}})
}

type verifyData struct {
	Verification domain.BalanceVerification `json:"verification"`
}
type verifyResponse struct {
	Data verifyData `json:"data,omitempty"`
}

// VerifyBalance handles http request to verify an account balance against
// its entries.
func (h *Handler) VerifyBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	verification, err := h.service.VerifyAccountBalance(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, verifyResponse{Data: verifyData{verification}})
}

type reconcileData struct {
	Reconciliation domain.ReconciliationResult `json:"reconciliation"`
}
type reconcileResponse struct {
	Data reconcileData `json:"data,omitempty"`
}

// ReconcileBalance handles http request to reconcile a drifted account
// balance through the clearing account.
func (h *Handler) ReconcileBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	result, err := h.service.ReconcileAccountBalance(ctx, middleware.Actor(gctx), uri.ID)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))

			return
		case domain.ErrInsufficientBalance, domain.ErrAccountInactive:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

			return
		case domain.ErrConcurrentModification:
			gctx.JSON(http.StatusConflict, jsonresponse.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, reconcileResponse{Data: reconcileData{result}})
}
