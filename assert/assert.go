package assert

import (
	"github.com/bloeys/nvox/logging"
)

// T panics with a formatted message if check is false.
// Use it for programming-contract violations, not for recoverable errors.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	logging.ErrLog.Panicf("Assert failed: "+msg, args...)
}
