package discord

import (
	"context"

	"buybot/internal/core"

	"github.com/bwmarrin/discordgo"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PurchaseService . PurchaseService
type PurchaseService interface {
	VerifyAndNotify(ctx context.Context, txHash string) core.Detection
	TopBuyers(ctx context.Context, limit int) ([]core.BuyerTotal, error)
}

// Responder is the part of *discordgo.Session used to answer interactions.
//
//counterfeiter:generate -o fake -fake-name Responder . Responder
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
