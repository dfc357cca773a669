package dos

// Options are options for creating a new round
type Options struct {
	// EnforceTurnOrder rejects moves from any seat other than the current turn
	EnforceTurnOrder bool
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		EnforceTurnOrder: true,
	}
}
