package domain

import "time"

// Clock is the engine's time source. Operations read it once and pass the
// value down.
type Clock interface {
	Now() time.Time
}
