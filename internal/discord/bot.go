package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot owns the gateway connection and feeds interactions to a Gateway.
type Bot struct {
	logs    *zap.SugaredLogger
	session *discordgo.Session
	gateway *Gateway
}

// NewSession creates an unopened bot session for token.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return session, nil
}

func NewBot(logger *zap.SugaredLogger, session *discordgo.Session, gateway *Gateway) *Bot {
	return &Bot{
		logs:    logger,
		session: session,
		gateway: gateway,
	}
}

// Start registers the handlers and opens the connection. Commands are synced
// once the session is ready; a sync failure is logged only.
func (b *Bot) Start(ctx context.Context) error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		_, err := s.ApplicationCommandBulkOverwrite(r.User.ID, "", Commands())
		if err != nil {
			b.logs.Errorw("command sync failed", "error", err)
		} else {
			b.logs.Infow("commands synced", "count", len(Commands()))
		}
		b.logs.Infow("logged in", "user", r.User.Username)
	})

	b.session.AddHandler(func(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
		b.gateway.HandleInteraction(ctx, ic.Interaction)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	return nil
}

// Close disconnects and waits for in-flight verifications.
func (b *Bot) Close() error {
	err := b.session.Close()
	b.gateway.Wait()
	if err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}
	return nil
}
