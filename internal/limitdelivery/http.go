// Package limitdelivery manages delivery layer of limit rules.
package limitdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/middleware"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"
	"github.com/altx-finance/ledger-engine/pkg/jsonresponse"
)

// Service provides service layer interface needed by limit delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package limitdelivery
type Service interface {
	CreateRule(ctx context.Context, actor string, arg domain.CreateLimitRuleParams) (domain.LimitRule, error)
	ListRules(ctx context.Context) ([]domain.LimitRule, error)
}

// Handler facilitates limit delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns limit handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type createRequest struct {
	Scope     domain.LimitScope `json:"scope" binding:"required,oneof=PER_TRANSACTION DAILY MONTHLY"`
	Threshold string            `json:"threshold" binding:"required"`
	AccountID *int64            `json:"account_id" binding:"omitempty,min=1"`
	Owner     *string           `json:"owner"`
	MCC       *int              `json:"mcc"`
	Geo       *string           `json:"geo"`
	Active    *bool             `json:"active"`
}

type data struct {
	Rule domain.LimitRule `json:"rule"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to create a limit rule.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	arg := domain.CreateLimitRuleParams{
		Scope:     req.Scope,
		Threshold: req.Threshold,
		AccountID: req.AccountID,
		Owner:     req.Owner,
		MCC:       req.MCC,
		Geo:       req.Geo,
		Active:    active,
	}

	rule, err := h.service.CreateRule(ctx, middleware.Actor(gctx), arg)
	if err != nil {
		if err == domain.ErrInvalidAmount {
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{rule}})
}

type dataRules struct {
	Rules []domain.LimitRule `json:"rules"`
}
type responseRules struct {
	Data dataRules `json:"data,omitempty"`
}

// List handles http request to list limit rules.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rules, err := h.service.ListRules(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseRules{Data: dataRules{rules}})
}
