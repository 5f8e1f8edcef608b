package flagkit

import (
	"os"
	"strconv"
	"time"
)

// envDuration reads a whole-seconds duration from the environment,
// falling back to def when unset or unparseable.
func envDuration(name string, def time.Duration) time.Duration {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	secs, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return def
	}
	return time.Duration(secs) * time.Second
}
