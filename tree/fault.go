package tree

import "fmt"

// Codes carried by a Fault.
const (
	ErrLink      = "E-LINK"
	ErrUnlink    = "E-UNLINK"
	ErrRole      = "E-ROLE"
	ErrRotate    = "E-ROT"
	ErrRebalance = "E-REBAL"
	ErrMax       = "E-MAX"
	ErrRemove    = "E-REMOVE"
)

// Fault is the panic value raised when a tree finds one of its own
// invariants broken. It is never returned as an error: a corrupted
// tree cannot be repaired by the caller.
type Fault struct {
	Code string
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("avl [%s]: %s", f.Code, f.Msg)
}

// Fail panics with a *Fault.
func Fail(code, msg string) {
	panic(&Fault{Code: code, Msg: msg})
}
