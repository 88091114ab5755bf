/*
  provider.go
  Description: the pluggable metadata provider registry
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:18:02 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

// FileContext carries everything a Provider needs to answer a Lookup: the
// path under render and, separately, any user-defined variables already
// bound by earlier {var:...} fields in the same render. Providers that
// don't care about variables (file stat, clock) simply ignore Vars.
type FileContext struct {
	Path string
	Vars map[string]MetaValue
}

// ErrorPolicy controls what a Registry does when a Provider's Lookup
// returns an error: Soft downgrades the field to Null so the render
// continues, Hard aborts the whole render with a KindProvider error.
// clinaresl-pgnparser has no analogue for this (getField always calls
// log.Fatal on failure); providers.RegisterDefaults registers every one of
// its providers as Soft.
type ErrorPolicy int

const (
	Soft ErrorPolicy = iota
	Hard
)

// Provider answers metadata lookups for one or more field names.
type Provider interface {
	// Names lists every top-level field name this provider answers.
	Names() []string

	// Lookup returns the value of field name's subfield (empty when the
	// field carried no ":subfield" clause) for the given context, per
	// spec.md §6's lookup(name, subfield, ctx) contract.
	Lookup(name, subfield string, ctx FileContext) (MetaValue, error)
}

// registryEntry pairs a provider with the policy to apply to its errors.
type registryEntry struct {
	provider Provider
	policy   ErrorPolicy
}

// Registry dispatches field names to the Provider that answers them. It is
// the generalization of pgncollection.go's single hard-coded template.FuncMap:
// MTL needs an open set of named value sources rather than one closed set of
// template functions.
type Registry struct {
	entries map[string]registryEntry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register binds every name p.Names() reports to p, under the given error
// policy. A later call for the same name overrides an earlier one, so
// callers can layer providers.RegisterDefaults and then override individual
// fields with custom providers.
func (r *Registry) Register(p Provider, policy ErrorPolicy) {
	for _, name := range p.Names() {
		r.entries[name] = registryEntry{provider: p, policy: policy}
	}
}

// Lookup resolves name (and its optional subfield) against the registry. ok
// is false when no provider answers this name at all (the caller should
// raise KindUnknownField).
func (r *Registry) Lookup(name, subfield string, ctx FileContext) (value MetaValue, err error, ok bool) {
	entry, found := r.entries[name]
	if !found {
		return Null(), nil, false
	}
	v, lookupErr := entry.provider.Lookup(name, subfield, ctx)
	if lookupErr != nil {
		if entry.policy == Hard {
			return Null(), lookupErr, true
		}
		return Null(), nil, true
	}
	return v, nil, true
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
