package wasmmem

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the wasmmem package's logger, a no-op logger until
// SetLogger is called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the wasmmem package's logger. It may be called at
// any time. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
