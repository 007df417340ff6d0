// Package carddelivery manages delivery layer of card controls.
package carddelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/altx-finance/ledger-engine/internal/cardcontrol"
	"github.com/altx-finance/ledger-engine/internal/middleware"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"
	"github.com/altx-finance/ledger-engine/pkg/jsonresponse"
)

// Service provides service layer interface needed by card delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package carddelivery
type Service interface {
	Register(ctx context.Context, actor string, accountID int64, token string) (cardcontrol.Card, error)
	SetStatus(ctx context.Context, actor, token string, status cardcontrol.Status) (cardcontrol.Card, error)
	UpdateLimits(ctx context.Context, actor, token string, mcc []int, geo []string, dailyLimit, monthlyLimit string) (cardcontrol.Card, error)
}

// Handler facilitates card delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns card handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type data struct {
	Card cardcontrol.Card `json:"card"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type registerRequest struct {
	AccountID int64  `json:"account_id" binding:"required,min=1"`
	Token     string `json:"token" binding:"required"`
}

// Register handles http request to register a card token.
func (h *Handler) Register(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req registerRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	card, err := h.service.Register(ctx, middleware.Actor(gctx), req.AccountID, req.Token)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{card}})
}

type tokenURI struct {
	Token string `uri:"token" binding:"required"`
}

type setStatusRequest struct {
	Status cardcontrol.Status `json:"status" binding:"required,oneof=ACTIVE FROZEN"`
}

// SetStatus handles http request to freeze or unfreeze a card.
func (h *Handler) SetStatus(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri tokenURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req setStatusRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	card, err := h.service.SetStatus(ctx, middleware.Actor(gctx), uri.Token, req.Status)
	if err != nil {
		if err == cardcontrol.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{card}})
}

type updateLimitsRequest struct {
	MCCWhitelist []int    `json:"mcc_whitelist"`
	GeoWhitelist []string `json:"geo_whitelist"`
	DailyLimit   string   `json:"daily_limit"`
	MonthlyLimit string   `json:"monthly_limit"`
}

// UpdateLimits handles http request to replace a card's controls.
func (h *Handler) UpdateLimits(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri tokenURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req updateLimitsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	card, err := h.service.UpdateLimits(ctx, middleware.Actor(gctx), uri.Token,
		req.MCCWhitelist, req.GeoWhitelist, req.DailyLimit, req.MonthlyLimit)
	if err != nil {
		if err == cardcontrol.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{card}})
}
