package nodelist

// Counter accumulates link-level operation counts for the whole package.
// Attach and detach run on nodes without a list reference, so the counts
// cannot be kept per list.
type Counter struct {
	Attached uint64 `statsd:"attached"`
	Detached uint64 `statsd:"detached"`
	Moved    uint64 `statsd:"moved"`
	Cleared  uint64 `statsd:"cleared"`
}

var counter = &Counter{}

// GetCounter returns the counts accumulated since the previous call and
// resets them, satisfying the stats Countable contract.
func (c *Counter) GetCounter() interface{} {
	counter, c = &Counter{}, counter
	return c
}

// StatsCounter returns the package counter for registration with the stats
// package, e.g. stats.RegisterCountable("nodelist", nodelist.StatsCounter()).
func StatsCounter() *Counter {
	return counter
}
