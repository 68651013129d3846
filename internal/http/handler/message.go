package handler

import "buybot/internal/core"

const (
	oopsErr        = "Oops! Something went wrong. Please try again later."
	noPurchasesYet = "No purchases yet."
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type RankResponse struct {
	Rankings []core.BuyerTotal `json:"rankings"`
	Message  string            `json:"message,omitempty"` // set when rankings is empty
}
