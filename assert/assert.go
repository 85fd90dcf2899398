package assert

import (
	"fmt"

	"github.com/usharplibs/engine/logging"
)

// T panics with the formatted message when check is false. It is meant for
// engine invariants that only break through programmer error.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	formatted := fmt.Sprintf(msg, args...)
	logging.Error("Assert failed", "msg", formatted)
	panic("Assert failed: " + formatted)
}
