package ports

import "time"

// Clock supplies the current instant. Every temporal comparison in the
// services goes through it so that status derivation and conflict checks are
// deterministic under test.
type Clock interface {
	Now() time.Time
}
