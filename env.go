package envplus

import "os"

// Environment is the key-value store a load pass writes into. The default is
// the real process environment table; tests and embedded hosts can substitute
// a map-backed one to keep loads out of process-wide state.
type Environment interface {
	// Lookup reports the current value of key and whether it is set at all.
	Lookup(key string) (string, bool)
	// Set binds key to value, replacing any previous binding.
	Set(key, value string) error
}

type osEnvironment struct{}

// OSEnvironment returns the Environment backed by the process environment
// table. Writes through it are visible to the whole process and to child
// processes spawned afterwards.
func OSEnvironment() Environment { return osEnvironment{} }

func (osEnvironment) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

func (osEnvironment) Set(key, value string) error { return os.Setenv(key, value) }

type mapEnvironment map[string]string

// MapEnvironment returns an in-memory Environment seeded with a copy of the
// given entries. A nil seed starts empty.
func MapEnvironment(seed map[string]string) Environment {
	m := make(mapEnvironment, len(seed))
	for k, v := range seed {
		m[k] = v
	}
	return m
}

func (m mapEnvironment) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapEnvironment) Set(key, value string) error {
	m[key] = value
	return nil
}
