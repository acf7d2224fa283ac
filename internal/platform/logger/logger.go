package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/ogurasousui/codex-staff-roster/internal/platform/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New は設定から zap.Logger を構築します。標準出力は名簿の出力専用のため使用しません。
// 返却される cleanup はバッファをフラッシュし、ログファイルを閉じます。
func New(cfg config.LoggingConfig) (*zap.Logger, func() error, error) {
	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, nil, err
	}

	encoder, err := newEncoder(cfg.Encoding)
	if err != nil {
		return nil, nil, err
	}

	sink, closer := newWriteSyncer(cfg)
	l := zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())

	cleanup := func() error {
		_ = l.Sync()
		if closer == nil {
			return nil
		}
		if err := closer.Close(); err != nil {
			return fmt.Errorf("logger: close %s: %w", cfg.File, err)
		}
		return nil
	}

	return l, cleanup, nil
}

func newEncoder(encoding string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch encoding {
	case config.EncodingJSON:
		return zapcore.NewJSONEncoder(encoderConfig), nil
	case config.EncodingConsole, "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("logger: unsupported encoding %q", encoding)
	}
}

func newWriteSyncer(cfg config.LoggingConfig) (zapcore.WriteSyncer, io.Closer) {
	if cfg.File == "" {
		return zapcore.Lock(os.Stderr), nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return zapcore.AddSync(rotator), rotator
}
