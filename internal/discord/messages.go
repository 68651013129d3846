package discord

import (
	"fmt"
	"strings"

	"buybot/internal/core"
)

const (
	pongMessage       = "pong 🐸"
	noPurchasesYet    = "No purchases yet."
	rankUnavailable   = "❌ Could not load the leaderboard, try again later."
	unknownCommandMsg = "Unknown command."
	shuttingDownMsg   = "The bot is shutting down, try again shortly."
)

func verifyOutcomeMessage(txHash string, detection core.Detection) string {
	switch detection.Status {
	case core.StatusQualified:
		return fmt.Sprintf("✅ Verification submitted for `%s`", txHash)
	case core.StatusNotQualified:
		return fmt.Sprintf("❌ `%s` did not qualify", txHash)
	default:
		return fmt.Sprintf("❌ Could not verify `%s`", txHash)
	}
}

func invalidRequestMessage(err error) string {
	return fmt.Sprintf("❌ Invalid request: %s", err)
}

func rankMessage(buyers []core.BuyerTotal) string {
	if len(buyers) == 0 {
		return noPurchasesYet
	}

	var b strings.Builder
	b.WriteString("🏆 Top Buyers:")
	for i, buyer := range buyers {
		fmt.Fprintf(&b, "\n%d. `%s` — %s", i+1, buyer.Buyer, buyer.Total.String())
	}
	return b.String()
}
