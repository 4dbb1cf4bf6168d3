// Package lifecycle holds shared start/stop timing constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
