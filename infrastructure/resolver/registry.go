// Package resolver manages the registry of upstream version sources.
package resolver

import "github.com/johnsirmon/ai-dev-workstation-mac/domain"

// Registry holds all registered resolvers. Registration order is the
// resolver priority order: the update detector queries resolvers in the
// order they were registered and stops at the first non-empty answer.
type Registry struct {
	resolvers []domain.Resolver
}

// NewRegistry creates an empty resolver registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a resolver. Priority follows registration order.
func (r *Registry) Register(res domain.Resolver) {
	r.resolvers = append(r.resolvers, res)
}

// All returns the resolvers in priority order.
func (r *Registry) All() []domain.Resolver {
	return r.resolvers
}

// Get returns the resolver with the given name, or nil if not registered.
func (r *Registry) Get(name string) domain.Resolver {
	for _, res := range r.resolvers {
		if res.Name() == name {
			return res
		}
	}
	return nil
}

// Names returns the registered resolver names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for _, res := range r.resolvers {
		names = append(names, res.Name())
	}
	return names
}
