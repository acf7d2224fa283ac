package roster

import (
	"fmt"
	"io"

	"github.com/ogurasousui/codex-staff-roster/internal/core/employee"
	"go.uber.org/zap"
)

// MemberInput はメンバー生成時の入力です。Department が指定されるとマネージャーになります。
type MemberInput struct {
	Name           string
	Age            int
	Salary         float64
	ID             int
	Department     *string
	AdjustedSalary *float64
}

// Service は社員名簿のユースケースをまとめます。
type Service struct {
	logger *zap.Logger
}

// NewService は Service を生成します。
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Build は入力順にメンバーを生成します。
// AdjustedSalary は生成後に SetSalary で適用され、拒否された場合は結果を返しません。
func (s *Service) Build(inputs []MemberInput) ([]employee.Describable, error) {
	if len(inputs) == 0 {
		return nil, ErrNoMembers
	}

	members := make([]employee.Describable, 0, len(inputs))
	for i, in := range inputs {
		member, err := s.buildMember(in)
		if err != nil {
			return nil, fmt.Errorf("roster: member %d: %w", i, err)
		}
		members = append(members, member)
	}

	s.logger.Info("roster built",
		zap.Int("members", len(members)),
		zap.String("company", employee.CompanyName()),
	)
	return members, nil
}

func (s *Service) buildMember(in MemberInput) (employee.Describable, error) {
	var (
		member   employee.Describable
		salaried interface{ SetSalary(float64) error }
		field    zap.Field
	)

	if in.Department != nil {
		mgr := employee.NewManager(in.Name, in.Age, in.Salary, in.ID, *in.Department)
		member, salaried, field = mgr, mgr, zap.Object("manager", mgr)
	} else {
		emp := employee.NewEmployee(in.Name, in.Age, in.Salary, in.ID)
		member, salaried, field = emp, emp, zap.Object("employee", emp)
	}

	if in.AdjustedSalary != nil {
		if err := salaried.SetSalary(*in.AdjustedSalary); err != nil {
			s.logger.Warn("salary adjustment rejected", field, zap.Error(err))
			return nil, err
		}
	}

	s.logger.Debug("member built", field)
	return member, nil
}

// Describe は各メンバーの説明文を順番に返します。
func (s *Service) Describe(members []employee.Describable) []string {
	lines := make([]string, 0, len(members))
	for _, m := range members {
		lines = append(lines, m.Details())
	}
	return lines
}

// Print は各メンバーの説明文を 1 行ずつ w へ書き出します。
func (s *Service) Print(w io.Writer, members []employee.Describable) error {
	for _, line := range s.Describe(members) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("roster: write: %w", err)
		}
	}
	return nil
}
