package world

import "errors"

var (
	// ErrConfig reports invalid construction parameters. Fatal: callers
	// must not attempt generation.
	ErrConfig = errors.New("invalid floor configuration")

	// ErrRoomPlacement reports that the room placer exhausted its attempt
	// budget before reaching the minimum room count. Recoverable: callers
	// may regenerate with a different seed.
	ErrRoomPlacement = errors.New("room placement budget exhausted")

	// ErrDisconnected reports that the carved floor failed connectivity
	// validation. This is an internal invariant violation in the corridor
	// connector, not a user-facing condition; callers should retry with a
	// bounded retry count and escalate if retries exhaust.
	ErrDisconnected = errors.New("floor is not fully connected")
)
