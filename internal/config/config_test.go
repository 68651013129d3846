package config_test

import (
	"os"
	"time"

	"buybot/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var configKeys = []string{
	"API_PORT", "RPC_URL", "DISCORD_BOT_TOKEN", "DISCORD_WEBHOOK", "TOKEN_ADDRESS",
	"MIN_TOKEN_AMOUNT", "RUN_POLL", "POLL_INTERVAL", "HTTP_TIMEOUT", "LOG_LEVEL",
	"KAFKA_BROKER_ADDRESS", "KAFKA_TOPIC", "DATABASE_URL", "DB_HOST", "DB_PORT",
	"DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
}

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		for _, key := range configKeys {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
		Expect(os.Setenv("DISCORD_BOT_TOKEN", "bot-token")).To(Succeed())
		Expect(os.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")).To(Succeed())
	})

	AfterEach(func() {
		for _, key := range configKeys {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the required variables are set", func() {
		It("should fill in defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.NodeURL).To(Equal("https://base.publicnode.com"))
			Expect(app.TokenAddress).To(Equal("0xe509B5232AbCa3c7f15672366ceAFF8E7285bA50"))
			Expect(app.MinTokenAmount.Equal(decimal.NewFromInt(1))).To(BeTrue())
			Expect(app.RunPoll).To(BeFalse())
			Expect(app.PollInterval).To(Equal(6 * time.Second))
			Expect(app.HTTPTimeout).To(Equal(15 * time.Second))
			Expect(app.KafkaTopic).To(Equal("token-purchases"))
			Expect(app.NotificationsEnabled()).To(BeFalse())
		})
	})

	When("the bot token is missing", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("DISCORD_BOT_TOKEN")).To(Succeed())
		})

		It("should refuse to start", func() {
			Expect(err).To(MatchError(config.ErrEnvVarNotFound))
			Expect(err.Error()).To(ContainSubstring("DISCORD_BOT_TOKEN"))
		})
	})

	When("no store connection parameters are set", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("DATABASE_URL")).To(Succeed())
		})

		It("should refuse to start", func() {
			Expect(err).To(MatchError(config.ErrEnvVarNotFound))
		})
	})

	When("discrete store parameters are set", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("DATABASE_URL")).To(Succeed())
			Expect(os.Setenv("DB_HOST", "db.internal")).To(Succeed())
			Expect(os.Setenv("DB_PORT", "6543")).To(Succeed())
			Expect(os.Setenv("DB_USER", "frog")).To(Succeed())
			Expect(os.Setenv("DB_PASSWORD", "secret")).To(Succeed())
			Expect(os.Setenv("DB_NAME", "purchases")).To(Succeed())
			Expect(os.Setenv("DB_SSLMODE", "disable")).To(Succeed())
		})

		It("should build a key/value DSN", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.DBConnectionURL).To(Equal("host=db.internal port=6543 user=frog password=secret dbname=purchases sslmode=disable"))
		})
	})

	When("polling is enabled", func() {
		BeforeEach(func() {
			Expect(os.Setenv("RUN_POLL", "Yes")).To(Succeed())
			Expect(os.Setenv("POLL_INTERVAL", "12")).To(Succeed())
		})

		It("should parse the flag and interval", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.RunPoll).To(BeTrue())
			Expect(app.PollInterval).To(Equal(12 * time.Second))
		})
	})

	When("the poll interval is zero", func() {
		BeforeEach(func() {
			Expect(os.Setenv("POLL_INTERVAL", "0")).To(Succeed())
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("PollInterval")))
		})
	})

	When("the threshold is negative", func() {
		BeforeEach(func() {
			Expect(os.Setenv("MIN_TOKEN_AMOUNT", "-0.5")).To(Succeed())
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("must not be negative")))
		})
	})

	When("the threshold is not a number", func() {
		BeforeEach(func() {
			Expect(os.Setenv("MIN_TOKEN_AMOUNT", "lots")).To(Succeed())
		})

		It("should return a parse error", func() {
			Expect(err).To(MatchError(ContainSubstring("parse MIN_TOKEN_AMOUNT")))
		})
	})

	When("the token address is malformed", func() {
		BeforeEach(func() {
			Expect(os.Setenv("TOKEN_ADDRESS", "0x1234")).To(Succeed())
		})

		It("should fail validation", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("TokenAddress"))
		})
	})

	When("the webhook is set", func() {
		BeforeEach(func() {
			Expect(os.Setenv("DISCORD_WEBHOOK", "https://discord.com/api/webhooks/1/abc")).To(Succeed())
		})

		It("should enable notifications", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.NotificationsEnabled()).To(BeTrue())
		})
	})

	When("the webhook is not a URL", func() {
		BeforeEach(func() {
			Expect(os.Setenv("DISCORD_WEBHOOK", "not a url")).To(Succeed())
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("must be an absolute URL")))
		})
	})
})
