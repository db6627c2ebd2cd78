// Package lifecycle holds the bounds shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds any single start or stop hook.
const DefaultTimeout = 10 * time.Second
