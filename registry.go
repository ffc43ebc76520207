package argolis

import "unicode/utf8"

// Registry is an ordered list of options. It doesn't check names uniqueness:
// the first matching option wins
type Registry struct {
	specs []OptSpec
}

func NewRegistry(specs ...OptSpec) *Registry {
	return &Registry{
		specs: append([]OptSpec(nil), specs...),
	}
}

func (r *Registry) Add(spec OptSpec) {
	r.specs = append(r.specs, spec)
}

func (r *Registry) Len() int {
	return len(r.specs)
}

// Specs returns a copy of the registered options in registration order
func (r *Registry) Specs() []OptSpec {
	return append([]OptSpec(nil), r.specs...)
}

// Find looks up an option by name. A one-char name matches short names only,
// longer names match long names only
func (r *Registry) Find(name string) (OptSpec, bool) {
	if name == "" {
		return OptSpec{}, false
	}
	if shortName, size := utf8.DecodeRuneInString(name); size == len(name) {
		for _, spec := range r.specs {
			if spec.shortName != NoShortName && spec.shortName == shortName {
				return spec, true
			}
		}
		return OptSpec{}, false
	}
	for _, spec := range r.specs {
		if spec.longName == name {
			return spec, true
		}
	}
	return OptSpec{}, false
}
