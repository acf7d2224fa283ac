package roster

import "errors"

var (
	// ErrNoMembers は構築対象のメンバーが存在しない場合に返却されます。
	ErrNoMembers = errors.New("roster: no members")
)
