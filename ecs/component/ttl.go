package component

// TTL destroys an entity after Seconds of simulation time.
type TTL struct {
	Seconds float64
}

var TTLComponent = NewComponent[TTL]()
