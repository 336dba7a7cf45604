package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/roothash-pay/nft-forge/pkg/service"
)

const (
	LevelFlagName  = "log.level"
	FormatFlagName = "log.format"
	ColorFlagName  = "log.color"
)

// CLIFlags creates flag definitions for the logging utils.
// Warning: flags are not safe to reuse due to an upstream urfave default-value
// mutation bug in GenericFlag.
func CLIFlags(envPrefix string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    LevelFlagName,
			Usage:   "The lowest log level that will be output",
			Value:   "info",
			EnvVars: service.PrefixEnvVar(envPrefix, "LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    FormatFlagName,
			Usage:   "Format the log output. Supported formats: 'text', 'terminal', 'logfmt', 'json'",
			Value:   "text",
			EnvVars: service.PrefixEnvVar(envPrefix, "LOG_FORMAT"),
		},
		&cli.BoolFlag{
			Name:    ColorFlagName,
			Usage:   "Color the log output if in terminal mode",
			EnvVars: service.PrefixEnvVar(envPrefix, "LOG_COLOR"),
		},
	}
}

type CLIConfig struct {
	Level  slog.Level
	Color  bool
	Format string
}

func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Level:  slog.LevelInfo,
		Format: "text",
	}
}

func ReadCLIConfig(ctx *cli.Context) CLIConfig {
	cfg := DefaultCLIConfig()
	cfg.Level = levelFromString(ctx.String(LevelFlagName))
	cfg.Format = ctx.String(FormatFlagName)
	cfg.Color = ctx.Bool(ColorFlagName)
	return cfg
}

func levelFromString(lvlString string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvlString)) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error", "crit":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a new configured logger writing to the given writer.
func NewLogger(w io.Writer, cfg CLIConfig) log.Logger {
	return log.NewLogger(handler(w, cfg))
}

func handler(w io.Writer, cfg CLIConfig) slog.Handler {
	switch cfg.Format {
	case "json":
		return log.JSONHandlerWithLevel(w, cfg.Level)
	case "logfmt":
		return log.LogfmtHandlerWithLevel(w, cfg.Level)
	case "", "text", "terminal":
		return log.NewTerminalHandlerWithLevel(w, cfg.Level, cfg.Color)
	default:
		panic(fmt.Errorf("unknown log format: %s", cfg.Format))
	}
}
