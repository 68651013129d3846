package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var ErrEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	rpcURLEnvKey       = "RPC_URL"
	botTokenEnvKey     = "DISCORD_BOT_TOKEN"
	webhookEnvKey      = "DISCORD_WEBHOOK"
	tokenAddressEnvKey = "TOKEN_ADDRESS"
	minAmountEnvKey    = "MIN_TOKEN_AMOUNT"
	runPollEnvKey      = "RUN_POLL"
	pollIntervalEnvKey = "POLL_INTERVAL"
	httpTimeoutEnvKey  = "HTTP_TIMEOUT"
	logLevelEnvKey     = "LOG_LEVEL"
	kafkaBrokerEnvKey  = "KAFKA_BROKER_ADDRESS"
	kafkaTopicEnvKey   = "KAFKA_TOPIC"

	dbConnEnvKey     = "DATABASE_URL"
	dbHostEnvKey     = "DB_HOST"
	dbPortEnvKey     = "DB_PORT"
	dbUserEnvKey     = "DB_USER"
	dbPasswordEnvKey = "DB_PASSWORD"
	dbNameEnvKey     = "DB_NAME"
	dbSSLModeEnvKey  = "DB_SSLMODE"
)

const (
	defaultPort         = "8080"
	defaultRPCURL       = "https://base.publicnode.com"
	defaultTokenAddress = "0xe509B5232AbCa3c7f15672366ceAFF8E7285bA50"
	defaultMinAmount    = "1"
	defaultPollInterval = 6
	defaultHTTPTimeout  = 15
	defaultKafkaTopic   = "token-purchases"
	defaultLogLevel     = "info"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// App is the process-wide configuration. It is read once at startup and never mutated.
type App struct {
	Port            string
	NodeURL         string
	BotToken        string
	WebhookURL      string
	TokenAddress    string
	MinTokenAmount  decimal.Decimal
	RunPoll         bool
	PollInterval    time.Duration
	HTTPTimeout     time.Duration
	DBConnectionURL string
	KafkaBroker     string
	KafkaTopic      string
	LogLevel        string
}

// NewApp loads the configuration from the environment. A .env file in the
// working directory is honoured but never overrides variables already set.
func NewApp() (App, error) {
	_ = godotenv.Load()

	botToken, ok := os.LookupEnv(botTokenEnvKey)
	if !ok || botToken == "" {
		return App{}, fmt.Errorf("%w: %s", ErrEnvVarNotFound, botTokenEnvKey)
	}

	dbConn, err := dbConnectionURL()
	if err != nil {
		return App{}, err
	}

	minAmount, err := decimal.NewFromString(getEnv(minAmountEnvKey, defaultMinAmount))
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", minAmountEnvKey, err)
	}

	pollInterval, err := getEnvAsInt(pollIntervalEnvKey, defaultPollInterval)
	if err != nil {
		return App{}, err
	}

	httpTimeout, err := getEnvAsInt(httpTimeoutEnvKey, defaultHTTPTimeout)
	if err != nil {
		return App{}, err
	}

	app := App{
		Port:            getEnv(apiPortEnvKey, defaultPort),
		NodeURL:         getEnv(rpcURLEnvKey, defaultRPCURL),
		BotToken:        botToken,
		WebhookURL:      os.Getenv(webhookEnvKey),
		TokenAddress:    getEnv(tokenAddressEnvKey, defaultTokenAddress),
		MinTokenAmount:  minAmount,
		RunPoll:         isTruthy(os.Getenv(runPollEnvKey)),
		PollInterval:    time.Duration(pollInterval) * time.Second,
		HTTPTimeout:     time.Duration(httpTimeout) * time.Second,
		DBConnectionURL: dbConn,
		KafkaBroker:     os.Getenv(kafkaBrokerEnvKey),
		KafkaTopic:      getEnv(kafkaTopicEnvKey, defaultKafkaTopic),
		LogLevel:        getEnv(logLevelEnvKey, defaultLogLevel),
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

// Validate checks the value ranges NewApp cannot enforce while parsing.
func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.NodeURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&a.BotToken, validation.Required),
		validation.Field(&a.WebhookURL, validation.By(absoluteURL)),
		validation.Field(&a.TokenAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&a.MinTokenAmount, validation.By(nonNegative)),
		validation.Field(&a.PollInterval, validation.Required, validation.Min(time.Second)),
		validation.Field(&a.HTTPTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&a.DBConnectionURL, validation.Required),
	)
}

// NotificationsEnabled reports whether purchases are announced on the webhook.
func (a App) NotificationsEnabled() bool {
	return a.WebhookURL != ""
}

func dbConnectionURL() (string, error) {
	if dsn, ok := os.LookupEnv(dbConnEnvKey); ok && dsn != "" {
		return dsn, nil
	}

	host, ok := os.LookupEnv(dbHostEnvKey)
	if !ok || host == "" {
		return "", fmt.Errorf("%w: %s or %s", ErrEnvVarNotFound, dbConnEnvKey, dbHostEnvKey)
	}

	port, err := getEnvAsInt(dbPortEnvKey, 5432)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host,
		port,
		getEnv(dbUserEnvKey, "postgres"),
		os.Getenv(dbPasswordEnvKey),
		getEnv(dbNameEnvKey, "postgres"),
		getEnv(dbSSLModeEnvKey, "require"),
	), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

func nonNegative(value any) error {
	d, _ := value.(decimal.Decimal)
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}
