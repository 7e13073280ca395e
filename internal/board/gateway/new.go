package gateway

import (
	"time"

	"qa-board-sync/pkg/log"
	"qa-board-sync/pkg/tracker"
)

// implGateway is the single write path for external label state.
type implGateway struct {
	tracker tracker.ITracker
	timeout time.Duration
	l       log.Logger
}

// New creates the label mutation gateway. timeout bounds each outbound
// call so a hung tracker triggers the caller's revert path instead of
// leaving the transition pending.
func New(trk tracker.ITracker, timeout time.Duration, l log.Logger) *implGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &implGateway{
		tracker: trk,
		timeout: timeout,
		l:       l,
	}
}
