package discord_test

import (
	"context"
	"errors"
	"strings"

	"buybot/internal/core"
	"buybot/internal/discord"
	"buybot/internal/discord/fake"
	"buybot/internal/repository"

	"github.com/bwmarrin/discordgo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func command(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:   "interaction-1",
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: options,
		},
		User: &discordgo.User{Username: "frog"},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

var _ = Describe("Gateway", func() {
	var (
		fakeService   *fake.PurchaseService
		fakeResponder *fake.Responder
		gateway       *discord.Gateway
		interaction   *discordgo.Interaction
		txHash        string
	)

	followups := func() []string {
		var out []string
		for n := 0; n < fakeResponder.FollowupMessageCreateCallCount(); n++ {
			_, _, params, _ := fakeResponder.FollowupMessageCreateArgsForCall(n)
			out = append(out, params.Content)
		}
		return out
	}

	BeforeEach(func() {
		fakeService = new(fake.PurchaseService)
		fakeResponder = new(fake.Responder)
		gateway = discord.NewGateway(zap.NewNop().Sugar(), fakeService, fakeResponder)
		txHash = "0x" + strings.Repeat("ab", 32)
	})

	JustBeforeEach(func() {
		gateway.HandleInteraction(context.Background(), interaction)
		gateway.Wait()
	})

	Describe("verify", func() {
		BeforeEach(func() {
			interaction = command(discord.CommandVerify, stringOption("txhash", txHash))
		})

		When("the purchase qualifies", func() {
			BeforeEach(func() {
				fakeService.VerifyAndNotifyReturns(core.Detection{
					Status:   core.StatusQualified,
					Purchase: &core.PurchaseRecord{TxHash: txHash},
				})
			})

			It("should acknowledge first and then report success", func() {
				Expect(fakeResponder.InteractionRespondCallCount()).To(Equal(1))
				_, resp, _ := fakeResponder.InteractionRespondArgsForCall(0)
				Expect(resp.Type).To(Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource))

				Expect(fakeService.VerifyAndNotifyCallCount()).To(Equal(1))
				_, hash := fakeService.VerifyAndNotifyArgsForCall(0)
				Expect(hash).To(Equal(txHash))

				Expect(followups()).To(Equal([]string{"✅ Verification submitted for `" + txHash + "`"}))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeService.VerifyAndNotifyReturns(core.Detection{Status: core.StatusLookupFailed, Err: errors.New("rpc down")})
			})

			It("should report that it could not verify", func() {
				Expect(followups()).To(Equal([]string{"❌ Could not verify `" + txHash + "`"}))
			})
		})

		When("the purchase does not qualify", func() {
			BeforeEach(func() {
				fakeService.VerifyAndNotifyReturns(core.Detection{Status: core.StatusNotQualified})
			})

			It("should say so", func() {
				Expect(followups()).To(Equal([]string{"❌ `" + txHash + "` did not qualify"}))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				interaction = command(discord.CommandVerify, stringOption("txhash", "0x123"))
			})

			It("should reject it without running the pipeline", func() {
				Expect(fakeService.VerifyAndNotifyCallCount()).To(Equal(0))
				Expect(fakeResponder.InteractionRespondCallCount()).To(Equal(1))
				_, resp, _ := fakeResponder.InteractionRespondArgsForCall(0)
				Expect(resp.Type).To(Equal(discordgo.InteractionResponseChannelMessageWithSource))
				Expect(resp.Data.Flags).To(Equal(discordgo.MessageFlagsEphemeral))
				Expect(resp.Data.Content).To(HavePrefix("❌ Invalid request"))
			})
		})

		When("the gateway is already shutting down", func() {
			BeforeEach(func() {
				gateway.Wait()
			})

			It("should turn the command away without starting work", func() {
				Expect(fakeService.VerifyAndNotifyCallCount()).To(Equal(0))
				Expect(fakeResponder.FollowupMessageCreateCallCount()).To(Equal(0))
				Expect(fakeResponder.InteractionRespondCallCount()).To(Equal(1))
				_, resp, _ := fakeResponder.InteractionRespondArgsForCall(0)
				Expect(resp.Type).To(Equal(discordgo.InteractionResponseChannelMessageWithSource))
				Expect(resp.Data.Flags).To(Equal(discordgo.MessageFlagsEphemeral))
				Expect(resp.Data.Content).To(ContainSubstring("shutting down"))
			})
		})

		When("the acknowledgement fails", func() {
			BeforeEach(func() {
				fakeResponder.InteractionRespondReturns(errors.New("unknown interaction"))
			})

			It("should not run the pipeline", func() {
				Expect(fakeService.VerifyAndNotifyCallCount()).To(Equal(0))
				Expect(fakeResponder.FollowupMessageCreateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("rank", func() {
		BeforeEach(func() {
			interaction = command(discord.CommandRank, intOption("limit", 2))
			fakeService.TopBuyersReturns([]core.BuyerTotal{
				{Buyer: "buyerB", Total: decimal.NewFromInt(10)},
				{Buyer: "buyerA", Total: decimal.NewFromInt(7)},
			}, nil)
		})

		It("should list the top buyers", func() {
			_, limit := fakeService.TopBuyersArgsForCall(0)
			Expect(limit).To(Equal(2))
			Expect(followups()).To(Equal([]string{
				"🏆 Top Buyers:\n1. `buyerB` — 10\n2. `buyerA` — 7",
			}))
		})

		When("no limit is given", func() {
			BeforeEach(func() {
				interaction = command(discord.CommandRank)
			})

			It("should ask for ten", func() {
				_, limit := fakeService.TopBuyersArgsForCall(0)
				Expect(limit).To(Equal(10))
			})
		})

		When("there are no purchases", func() {
			BeforeEach(func() {
				fakeService.TopBuyersReturns([]core.BuyerTotal{}, nil)
			})

			It("should say so explicitly", func() {
				Expect(followups()).To(Equal([]string{"No purchases yet."}))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.TopBuyersReturns(nil, repository.ErrPersistence)
			})

			It("should report the leaderboard as unavailable", func() {
				Expect(followups()).To(HaveLen(1))
				Expect(followups()[0]).To(HavePrefix("❌ Could not load the leaderboard"))
			})
		})

		When("the limit is out of range", func() {
			BeforeEach(func() {
				interaction = command(discord.CommandRank, intOption("limit", 100))
			})

			It("should reject it", func() {
				Expect(fakeService.TopBuyersCallCount()).To(Equal(0))
				_, resp, _ := fakeResponder.InteractionRespondArgsForCall(0)
				Expect(resp.Data.Content).To(HavePrefix("❌ Invalid request"))
			})
		})
	})

	Describe("ping", func() {
		BeforeEach(func() {
			interaction = command(discord.CommandPing)
		})

		It("should answer pong", func() {
			Expect(fakeResponder.InteractionRespondCallCount()).To(Equal(1))
			_, resp, _ := fakeResponder.InteractionRespondArgsForCall(0)
			Expect(resp.Type).To(Equal(discordgo.InteractionResponseChannelMessageWithSource))
			Expect(resp.Data.Content).To(Equal("pong 🐸"))
		})
	})

	Describe("non command interactions", func() {
		BeforeEach(func() {
			interaction = &discordgo.Interaction{Type: discordgo.InteractionPing}
		})

		It("should be ignored", func() {
			Expect(fakeResponder.InteractionRespondCallCount()).To(Equal(0))
		})
	})
})

var _ = Describe("Commands", func() {
	It("should define verify, rank and ping", func() {
		names := []string{}
		for _, c := range discord.Commands() {
			names = append(names, c.Name)
		}
		Expect(names).To(ConsistOf("verify", "rank", "ping"))
	})
})
