package caststate

// Sink receives the channel states derived from device snapshots. It is the
// only way the updater talks to the outside world: it owns channel storage,
// subscriber bookkeeping and publication.
type Sink interface {
	// SetConnectivity records whether the device session is reachable.
	SetConnectivity(Connectivity)

	// UpdateState stores a new value for the named channel.
	UpdateState(channel string, state State)

	// IsLinked reports whether the channel currently has a subscriber.
	// Unlinked channels must not trigger expensive derivations.
	IsLinked(channel string) bool

	// Channels enumerates every channel identifier bound to the entity the
	// updater feeds. It drives the generic metadata projection.
	Channels() []string
}

// Fetcher resolves an image URL into its binary content. The call blocks on
// the caller's goroutine; retry and timeout policy belong to the
// implementation.
type Fetcher interface {
	Fetch(url string) (*Image, error)
}
