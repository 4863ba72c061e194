package service

import "time"

// LocationResolver resolves IANA timezone identifiers. It exists as an
// interface so tests can pin zones without depending on the host machine's
// timezone database or locale.
type LocationResolver interface {
	Resolve(name string) (*time.Location, error)
}

// SystemLocationResolver resolves against the runtime's timezone database.
type SystemLocationResolver struct{}

// Resolve implements LocationResolver.
func (SystemLocationResolver) Resolve(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
