package ports

import "time"

// Clock supplies the current time. Injected so handlers that stamp
// pickup and token expiry moments stay deterministic in tests.
type Clock interface {
	Now() time.Time
}
