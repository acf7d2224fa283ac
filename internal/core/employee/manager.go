package employee

import (
	"go.uber.org/zap/zapcore"
)

// Manager は部署を持つ社員です。Employee の振る舞いと給与の制約をそのまま引き継ぎます。
type Manager struct {
	Employee
	department string
}

// NewManager は Manager を生成します。
func NewManager(name string, age int, salary float64, id int, department string) *Manager {
	return &Manager{
		Employee:   *NewEmployee(name, age, salary, id),
		department: department,
	}
}

// Department は所属部署を返します。
func (m *Manager) Department() string {
	return m.department
}

// Details は社員としての説明文に所属部署を付け加えます。
func (m *Manager) Details() string {
	return m.Employee.Details() + ", works in " + m.department
}

// MarshalLogObject は zap 向けにマネージャーをエンコードします。
func (m *Manager) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := m.Employee.MarshalLogObject(enc); err != nil {
		return err
	}
	enc.AddString("department", m.department)
	return nil
}
