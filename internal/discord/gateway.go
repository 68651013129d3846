package discord

import (
	"context"
	"strings"
	"sync"

	"buybot/internal/http/payload"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Gateway answers slash command interactions. Every command is acknowledged
// before any chain, store or webhook work starts.
type Gateway struct {
	logs      *zap.SugaredLogger
	purchases PurchaseService
	responder Responder

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewGateway(logger *zap.SugaredLogger, purchases PurchaseService, responder Responder) *Gateway {
	return &Gateway{
		logs:      logger,
		purchases: purchases,
		responder: responder,
	}
}

// HandleInteraction dispatches one interaction. Verification runs in the
// background and reports through a follow-up message.
func (g *Gateway) HandleInteraction(ctx context.Context, i *discordgo.Interaction) {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	g.logs.Infow("command received",
		"command", data.Name,
		"user", userName(i),
		"interaction_id", i.ID)

	switch data.Name {
	case CommandVerify:
		g.handleVerify(ctx, i, data)
	case CommandRank:
		g.handleRank(ctx, i, data)
	case CommandPing:
		g.reply(i, pongMessage, false)
	default:
		g.reply(i, unknownCommandMsg, true)
	}
}

// Wait stops accepting new verifications and blocks until the running ones finished.
func (g *Gateway) Wait() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.wg.Wait()
}

// track registers a background verification unless the gateway is closed.
func (g *Gateway) track() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return false
	}
	g.wg.Add(1)
	return true
}

func (g *Gateway) handleVerify(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) {
	req := payload.VerifyRequest{}
	for _, opt := range data.Options {
		if opt.Name == optionTxHash && opt.Type == discordgo.ApplicationCommandOptionString {
			req.TxHash = strings.TrimSpace(opt.StringValue())
		}
	}

	if err := req.Validate(); err != nil {
		g.reply(i, invalidRequestMessage(err), true)
		return
	}

	if !g.track() {
		g.reply(i, shuttingDownMsg, true)
		return
	}

	if !g.deferResponse(i) {
		g.wg.Done()
		return
	}

	go func() {
		defer g.wg.Done()

		detection := g.purchases.VerifyAndNotify(ctx, req.TxHash)
		g.logs.Infow("verification finished",
			"tx_hash", req.TxHash,
			"status", detection.Status.String())

		g.followup(i, verifyOutcomeMessage(req.TxHash, detection))
	}()
}

func (g *Gateway) handleRank(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) {
	req := payload.RankRequest{Limit: payload.DefaultRankLimit}
	for _, opt := range data.Options {
		if opt.Name == optionLimit && opt.Type == discordgo.ApplicationCommandOptionInteger {
			req.Limit = int(opt.IntValue())
		}
	}

	if err := req.Validate(); err != nil {
		g.reply(i, invalidRequestMessage(err), true)
		return
	}

	if !g.deferResponse(i) {
		return
	}

	buyers, err := g.purchases.TopBuyers(ctx, req.Limit)
	if err != nil {
		g.logs.Errorw("failed to load top buyers",
			"limit", req.Limit,
			"error", err)
		g.followup(i, rankUnavailable)
		return
	}

	g.followup(i, rankMessage(buyers))
}

func (g *Gateway) deferResponse(i *discordgo.Interaction) bool {
	err := g.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		g.logs.Errorw("failed to acknowledge interaction",
			"interaction_id", i.ID,
			"error", err)
		return false
	}
	return true
}

func (g *Gateway) reply(i *discordgo.Interaction, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := g.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		g.logs.Errorw("failed to respond to interaction",
			"interaction_id", i.ID,
			"error", err)
	}
}

func (g *Gateway) followup(i *discordgo.Interaction, content string) {
	_, err := g.responder.FollowupMessageCreate(i, true, &discordgo.WebhookParams{Content: content})
	if err != nil {
		g.logs.Errorw("failed to send follow-up",
			"interaction_id", i.ID,
			"error", err)
	}
}

func userName(i *discordgo.Interaction) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.Username
	case i.User != nil:
		return i.User.Username
	default:
		return ""
	}
}
