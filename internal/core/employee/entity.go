package employee

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

const companyName = "John's Company"

// Describable は説明文を生成できるエンティティを表します。
type Describable interface {
	Details() string
}

// CompanyName は全社員に共通する会社名を返します。インスタンスは不要です。
func CompanyName() string {
	return companyName
}

// Employee は社員エンティティです。
// salary は Salary / SetSalary 経由でのみ読み書きでき、id はパッケージ外から参照できません。
type Employee struct {
	Name   string
	Age    int
	salary float64
	id     int
}

// NewEmployee は Employee を生成します。
// 初期給与は SetSalary を経由せずそのまま保持されます。
func NewEmployee(name string, age int, salary float64, id int) *Employee {
	return &Employee{
		Name:   name,
		Age:    age,
		salary: salary,
		id:     id,
	}
}

// Salary は現在の給与を返します。
func (e *Employee) Salary() float64 {
	return e.salary
}

// SetSalary は給与を更新します。負の値は ErrInvalidSalary となり、給与は変更されません。
func (e *Employee) SetSalary(salary float64) error {
	if salary < 0 {
		return fmt.Errorf("set salary %s: %w", formatAmount(salary), ErrInvalidSalary)
	}
	e.salary = salary
	return nil
}

// Details は社員の説明文を返します。
func (e *Employee) Details() string {
	return fmt.Sprintf("%s is %d years old and earns $%s per month", e.Name, e.Age, formatAmount(e.Salary()))
}

// MarshalLogObject は zap 向けに社員をエンコードします。
func (e *Employee) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("id", e.id)
	enc.AddString("name", e.Name)
	enc.AddInt("age", e.Age)
	enc.AddFloat64("salary", e.Salary())
	return nil
}

// formatAmount は数値を表示用に文字列化します。
// 整数値は小数部なし、-0 は 0、絶対値が 1e21 以上または 1e-6 未満は指数表記 (1e+21, 1e-7) になります。
func formatAmount(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		n, _ := strconv.Atoi(exp)
		sign := "+"
		if n < 0 {
			sign, n = "-", -n
		}
		return mantissa + "e" + sign + strconv.Itoa(n)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
