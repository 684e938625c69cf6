package internal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	GatewayAddress     string `env:"GATEWAY_ADDRESS,default=localhost:9090" validate:"required,hostname_port"`
	LedgerRPCURL       string `env:"LEDGER_RPC_URL,default=http://localhost:8899" validate:"required,url"`
	FallbackFundingURL string `env:"FALLBACK_FUNDING_URL" validate:"omitempty,url"`
	Commitment         string `env:"COMMITMENT,default=confirmed" validate:"oneof=processed confirmed finalized"`
	LogLevel           string `env:"LOG_LEVEL,default=info"`

	TurnInterval        time.Duration `env:"TURN_INTERVAL,default=5s" validate:"min=100ms"`
	StreamBackoff       time.Duration `env:"STREAM_BACKOFF,default=5s" validate:"min=100ms"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"min=10ms"`
	HeartbeatInterval   time.Duration `env:"HEARTBEAT_INTERVAL,default=5s" validate:"min=1s"`
	ConfirmPollInterval time.Duration `env:"CONFIRM_POLL_INTERVAL,default=500ms" validate:"min=50ms"`
	ConfirmTimeout      time.Duration `env:"CONFIRM_TIMEOUT,default=30s" validate:"min=1s"`

	// FILE_TRANSFER_MODULUS selects how often a bot sends a file transfer
	// instead of a text message (every Nth successful dispatch).
	FileTransferModulus uint64 `env:"FILE_TRANSFER_MODULUS,default=2" validate:"min=2"`

	AirdropLamports      uint64 `env:"AIRDROP_LAMPORTS,default=1000000000" validate:"gt=0"`
	DepositLamports      uint64 `env:"DEPOSIT_LAMPORTS,default=100000000" validate:"gt=0"`
	StickerPriceLamports uint64 `env:"STICKER_PRICE_LAMPORTS,default=1000000" validate:"gt=0"`
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ParseLogLevel maps a LOG_LEVEL string to a slog level, defaulting to Info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
