// Package global holds an explicitly constructed process-wide tracker for
// applications that want a single gate shared across call sites. It is a
// convenience over passing a *ratelog.RateLog by handle; isolated instances
// stay the primary API.
package global

import (
	"sync"
	"sync/atomic"

	"github.com/toolink/ratelog"
)

// defaultRateLog is the global tracker used before SetRateLog is called.
func defaultRateLog() *atomic.Value {
	v := &atomic.Value{}
	v.Store(ratelog.New(ratelog.Count(ratelog.DefaultCountLimit)))
	return v
}

var globalRateLog = defaultRateLog()

// logMu serializes Log callers. A RateLog tracks one sequential stream and
// carries no internal locking, so fan-in is serialized here instead.
var logMu sync.Mutex

// SetRateLog sets the global tracker instance.
func SetRateLog(r *ratelog.RateLog) {
	globalRateLog.Store(r)
}

// GetRateLog returns the global tracker instance.
func GetRateLog() *ratelog.RateLog {
	return globalRateLog.Load().(*ratelog.RateLog)
}

// Log submits a message through the global tracker.
func Log(message string) error {
	logMu.Lock()
	defer logMu.Unlock()
	return GetRateLog().Log(message)
}
