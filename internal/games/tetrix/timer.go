package tetrix

import "time"

// Timer is the scheduler the board arms for gravity and for the short
// pause after clearing lines. Start replaces any pending interval. The
// owner calls Board.Tick each time the interval elapses.
//
// The arcade adapter uses core.StepTimer, which runs on simulated time.
type Timer interface {
	Start(interval time.Duration)
	Stop()
}
