package employee

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestEmployee_Details(t *testing.T) {
	t.Parallel()

	emp := NewEmployee("John", 32, 5000, 1)

	want := "John is 32 years old and earns $5000 per month"
	if got := emp.Details(); got != want {
		t.Fatalf("unexpected details. want %q got %q", want, got)
	}
}

func TestEmployee_Details_Format(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		age    int
		salary float64
		want   string
	}{
		{name: "Taro", age: 0, salary: 0, want: "Taro is 0 years old and earns $0 per month"},
		{name: "", age: 41, salary: 1234.5, want: " is 41 years old and earns $1234.5 per month"},
		{name: "Hanako Sato", age: 28, salary: 0.1, want: "Hanako Sato is 28 years old and earns $0.1 per month"},
		{name: "Big", age: 65, salary: 1e7, want: "Big is 65 years old and earns $10000000 per month"},
		{name: "Zero", age: 20, salary: math.Copysign(0, -1), want: "Zero is 20 years old and earns $0 per month"},
		{name: "Huge", age: 50, salary: 1e21, want: "Huge is 50 years old and earns $1e+21 per month"},
		{name: "Huger", age: 50, salary: 1.5e300, want: "Huger is 50 years old and earns $1.5e+300 per month"},
		{name: "Tiny", age: 50, salary: 1e-7, want: "Tiny is 50 years old and earns $1e-7 per month"},
		{name: "Small", age: 50, salary: 0.000001, want: "Small is 50 years old and earns $0.000001 per month"},
		{name: "NegTiny", age: 50, salary: -2.5e-8, want: "NegTiny is 50 years old and earns $-2.5e-8 per month"},
	}

	for _, tc := range cases {
		emp := NewEmployee(tc.name, tc.age, tc.salary, 7)
		if got := emp.Details(); got != tc.want {
			t.Errorf("Details(%q, %d, %v): want %q got %q", tc.name, tc.age, tc.salary, tc.want, got)
		}
	}
}

func TestEmployee_SetSalary_NonNegative(t *testing.T) {
	t.Parallel()

	for _, salary := range []float64{0, 0.01, 1, 5000, 7250.75, math.MaxFloat64} {
		emp := NewEmployee("John", 32, 5000, 1)
		if err := emp.SetSalary(salary); err != nil {
			t.Fatalf("SetSalary(%v) returned error: %v", salary, err)
		}
		if got := emp.Salary(); got != salary {
			t.Fatalf("expected salary %v, got %v", salary, got)
		}
	}
}

func TestEmployee_SetSalary_Negative(t *testing.T) {
	t.Parallel()

	for _, salary := range []float64{-1, -0.01, -100, -math.MaxFloat64} {
		emp := NewEmployee("John", 32, 5000, 1)

		err := emp.SetSalary(salary)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("SetSalary(%v): expected ErrInvalidArgument, got %v", salary, err)
		}
		if !errors.Is(err, ErrInvalidSalary) {
			t.Fatalf("SetSalary(%v): expected ErrInvalidSalary, got %v", salary, err)
		}
		if got := emp.Salary(); got != 5000 {
			t.Fatalf("salary should stay unchanged after rejection, got %v", got)
		}
	}
}

func TestEmployee_SetSalary_NegativeZero(t *testing.T) {
	t.Parallel()

	emp := NewEmployee("John", 32, 5000, 1)
	if err := emp.SetSalary(math.Copysign(0, -1)); err != nil {
		t.Fatalf("SetSalary(-0) returned error: %v", err)
	}

	want := "John is 32 years old and earns $0 per month"
	if got := emp.Details(); got != want {
		t.Fatalf("unexpected details. want %q got %q", want, got)
	}
}

func TestEmployee_SetSalary_RejectedKeepsDetails(t *testing.T) {
	t.Parallel()

	emp := NewEmployee("John", 32, 5000, 1)
	if err := emp.SetSalary(6000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := emp.SetSalary(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	want := "John is 32 years old and earns $6000 per month"
	if got := emp.Details(); got != want {
		t.Fatalf("unexpected details. want %q got %q", want, got)
	}
}

func TestNewEmployee_StoresNegativeSalaryUnchecked(t *testing.T) {
	t.Parallel()

	emp := NewEmployee("John", 32, -100, 1)

	if emp.Salary() != -100 {
		t.Fatalf("expected constructor to keep -100, got %v", emp.Salary())
	}
	if !strings.Contains(emp.Details(), "$-100 per month") {
		t.Fatalf("expected details to embed -100, got %q", emp.Details())
	}
}

func TestCompanyName(t *testing.T) {
	t.Parallel()

	if got := CompanyName(); got != "John's Company" {
		t.Fatalf("unexpected company name before any instance: %q", got)
	}

	emp := NewEmployee("John", 32, 5000, 1)
	if err := emp.SetSalary(1); err != nil {
		t.Fatalf("SetSalary returned error: %v", err)
	}
	_ = NewManager("Shamim Ahsan", 30, 5000, 1, "Sales")

	if got := CompanyName(); got != "John's Company" {
		t.Fatalf("unexpected company name after instances: %q", got)
	}
}

func TestEmployee_MarshalLogObject(t *testing.T) {
	t.Parallel()

	enc := zapcore.NewMapObjectEncoder()
	emp := NewEmployee("John", 32, 5000, 42)

	if err := emp.MarshalLogObject(enc); err != nil {
		t.Fatalf("MarshalLogObject returned error: %v", err)
	}

	if enc.Fields["id"] != 42 {
		t.Errorf("expected id 42, got %v", enc.Fields["id"])
	}
	if enc.Fields["name"] != "John" {
		t.Errorf("expected name John, got %v", enc.Fields["name"])
	}
	if enc.Fields["salary"] != float64(5000) {
		t.Errorf("expected salary 5000, got %v", enc.Fields["salary"])
	}
}

func ExampleEmployee_Details() {
	emp := NewEmployee("John", 32, 5000, 1)
	fmt.Println(emp.Details())
	// Output: John is 32 years old and earns $5000 per month
}
