package keccak

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
)

// logger writes to stderr directly so a fault is reported even when the
// embedding program never configured the root logger.
var logger = log.NewLogger(log.NewTerminalHandler(os.Stderr, false)).With("pkg", "keccak")

// abort reports a broken sponge configuration and terminates the process.
// Only caller bugs get here; the fixed-size entry points never do.
func abort(msg string, ctx ...interface{}) {
	logger.Crit(msg, ctx...)
	panic("keccak: " + msg) // Crit exits; unreachable
}
