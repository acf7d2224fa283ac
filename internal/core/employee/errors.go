package employee

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument は引数が不正な場合に返却されます。
	ErrInvalidArgument = errors.New("employee: invalid argument")
	// ErrInvalidSalary は給与が負の値の場合に返却されます。
	ErrInvalidSalary = fmt.Errorf("%w: salary must be a positive number", ErrInvalidArgument)
)
