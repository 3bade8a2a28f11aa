// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config はロガー設定です。internal/configから LOG_ プレフィックスで読み込まれます。
type Config struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// NoColor はtext形式でANSIカラーを無効にします。
	NoColor bool `env:"NO_COLOR" envDefault:"false"`
}

// Err はエラーを "err" 属性として出力します。
var Err = tint.Err

// New はtextならtint、jsonならslog.JSONHandlerのロガーを返します。
func New(w io.Writer, cfg Config) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var h slog.Handler
	if strings.EqualFold(cfg.Format, FormatJSON) {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = tint.NewHandler(w, &tint.Options{Level: level, TimeFormat: time.DateTime, NoColor: cfg.NoColor})
	}
	return slog.New(h)
}

// ParseLevel は未知の値をInfoとして扱います。
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
