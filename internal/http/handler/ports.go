package handler

import (
	"context"
	"net/http"

	"buybot/internal/core"
	"buybot/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Leaderboard . Leaderboard
type Leaderboard interface {
	TopBuyers(ctx context.Context, limit int) ([]core.BuyerTotal, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeRankQuery(r *http.Request) (payload.RankRequest, error)
}
