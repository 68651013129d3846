package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"buybot/internal/core"
	"buybot/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Status = "GET /{$}"
	Rank   = "GET /rank"
)

type PurchaseHandler struct {
	logs             *zap.SugaredLogger
	service          string
	requestValidator RequestValidator
	leaderboard      Leaderboard
}

func NewPurchaseHandler(logger *zap.SugaredLogger, service string, requestValidator RequestValidator, leaderboard Leaderboard) *PurchaseHandler {
	return &PurchaseHandler{
		logs:             logger,
		service:          service,
		requestValidator: requestValidator,
		leaderboard:      leaderboard,
	}
}

func (h *PurchaseHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	h.respond(w, StatusResponse{
		Status:  "ok",
		Service: h.service,
	}, http.StatusOK, middleware.RequestID(r.Context()))
}

func (h *PurchaseHandler) HandleRank(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	rankReq, err := h.requestValidator.DecodeRankQuery(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("invalid rank query: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate rank query",
			"error", err,
			"handler", Rank,
			"request_id", requestId)
		return
	}

	buyers, err := h.leaderboard.TopBuyers(r.Context(), rankReq.Limit)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve rankings",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get top buyers",
			"error", err,
			"handler", Rank,
			"request_id", requestId)
		return
	}

	h.logs.Infow("rankings retrieved",
		"count", len(buyers),
		"limit", rankReq.Limit,
		"handler", Rank,
		"request_id", requestId)

	resp := RankResponse{Rankings: buyers}
	if len(buyers) == 0 {
		resp.Rankings = []core.BuyerTotal{}
		resp.Message = noPurchasesYet
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *PurchaseHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
