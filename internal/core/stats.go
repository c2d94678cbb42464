package core

// Stats is a per-frame snapshot of simulation state for display purposes.
type Stats struct {
	Pattern    string
	Generation int
	Population int
	TPS        int
	Paused     bool
}
