package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Staff   []StaffConfig `yaml:"staff"`
}

// LoggingConfig はログ出力に関する設定です。File が空の場合は標準エラー出力へ書き出します。
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// StaffConfig は名簿に載せる社員 1 名分の設定です。
type StaffConfig struct {
	Name           string   `yaml:"name"`
	Age            int      `yaml:"age"`
	Salary         float64  `yaml:"salary"`
	ID             int      `yaml:"id"`
	Department     *string  `yaml:"department"`
	AdjustedSalary *float64 `yaml:"adjusted_salary"`
}

// Default は設定ファイルが指定されない場合の設定を返します。
func Default() *Config {
	sales := "Sales"
	cfg := &Config{
		Staff: []StaffConfig{
			{Name: "John", Age: 32, Salary: 5000, ID: 1},
			{Name: "Shamim Ahsan", Age: 30, Salary: 5000, ID: 1, Department: &sales},
		},
	}
	cfg.Logging.applyDefaults()
	return cfg
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if len(c.Staff) == 0 {
		return fmt.Errorf("config: staff must not be empty")
	}

	if err := c.Logging.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (l *LoggingConfig) applyDefaults() {
	if l.Level == "" {
		l.Level = "warn"
	}
	if l.Encoding == "" {
		l.Encoding = EncodingConsole
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = 10
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = 5
	}
	if l.MaxAgeDays == 0 {
		l.MaxAgeDays = 30
	}
}

func (l *LoggingConfig) validateAndNormalize() error {
	l.applyDefaults()

	if _, err := l.ZapLevel(); err != nil {
		return err
	}

	switch l.Encoding {
	case EncodingConsole, EncodingJSON:
	default:
		return fmt.Errorf("config: logging.encoding must be %q or %q, got %q", EncodingConsole, EncodingJSON, l.Encoding)
	}

	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		return fmt.Errorf("config: logging rotation values must not be negative")
	}

	return nil
}

// ZapLevel はログレベルを zapcore.Level に変換します。
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return level, fmt.Errorf("config: logging.level: %w", err)
	}
	return level, nil
}
