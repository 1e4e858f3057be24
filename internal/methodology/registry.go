package methodology

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknown is returned when a profile name is not registered.
var ErrUnknown = errors.New("unknown methodology")

// Registry holds the built-in profiles plus any custom registrations.
// Lookups return defensive copies so callers cannot mutate shared state.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry returns a registry seeded with the built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	for _, p := range []Profile{daniels, lydiard, pfitzinger, hudson} {
		r.profiles[p.Name] = p.clone()
	}
	return r
}

// Get looks up a profile by name, case-insensitively.
func (r *Registry) Get(name string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}
	p, ok := r.profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return p.clone(), nil
}

// Register adds a custom profile. Built-in profiles cannot be replaced.
func (r *Registry) Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	key := strings.ToLower(strings.TrimSpace(p.Name))
	switch key {
	case Daniels, Lydiard, Pfitzinger, Hudson:
		return fmt.Errorf("methodology %q is built in and cannot be replaced", key)
	}
	cp := p.clone()
	cp.Name = key
	r.profiles[key] = cp
	return nil
}

// Names lists all registered profile names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
