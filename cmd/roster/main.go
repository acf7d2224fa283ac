package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ogurasousui/codex-staff-roster/internal/core/roster"
	"github.com/ogurasousui/codex-staff-roster/internal/platform/config"
	"github.com/ogurasousui/codex-staff-roster/internal/platform/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, cleanup, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if err := run(os.Stdout, cfg, zl); err != nil {
		zl.Error("roster failed", zap.Error(err))
		_ = cleanup()
		os.Exit(1)
	}

	if err := cleanup(); err != nil {
		log.Printf("failed to close logger: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(w io.Writer, cfg *config.Config, zl *zap.Logger) error {
	svc := roster.NewService(zl)

	members, err := svc.Build(toMemberInputs(cfg.Staff))
	if err != nil {
		return fmt.Errorf("build roster: %w", err)
	}

	return svc.Print(w, members)
}

func toMemberInputs(staff []config.StaffConfig) []roster.MemberInput {
	inputs := make([]roster.MemberInput, 0, len(staff))
	for _, s := range staff {
		inputs = append(inputs, roster.MemberInput{
			Name:           s.Name,
			Age:            s.Age,
			Salary:         s.Salary,
			ID:             s.ID,
			Department:     s.Department,
			AdjustedSalary: s.AdjustedSalary,
		})
	}
	return inputs
}
