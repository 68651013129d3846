package discord

import (
	"buybot/internal/http/payload"

	"github.com/bwmarrin/discordgo"
)

const (
	CommandVerify = "verify"
	CommandRank   = "rank"
	CommandPing   = "ping"

	optionTxHash = "txhash"
	optionLimit  = "limit"
)

// Commands returns the slash commands registered on startup.
func Commands() []*discordgo.ApplicationCommand {
	minLimit := float64(1)

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandVerify,
			Description: "Verify a Uniswap purchase txhash",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionTxHash,
					Description: "Transaction hash (0x...)",
					Required:    true,
				},
			},
		},
		{
			Name:        CommandRank,
			Description: "Show top buyers",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optionLimit,
					Description: "Number of top buyers",
					MinValue:    &minLimit,
					MaxValue:    payload.MaxRankLimit,
				},
			},
		},
		{
			Name:        CommandPing,
			Description: "Check the bot is alive",
		},
	}
}
