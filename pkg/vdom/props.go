package vdom

import "iter"

// Props is an insertion-ordered attribute map. Plain Go maps do not keep
// order, and the string renderer must emit attributes in the order the
// component wrote them, so Props pairs a key slice with a lookup map.
//
// A nil *Props behaves as an empty set for all read operations.
type Props struct {
	keys []string
	vals map[string]PropValue
}

// NewProps builds a Props from attributes in order. Later duplicates
// overwrite earlier values but keep the original position.
func NewProps(attrs ...Attr) *Props {
	p := &Props{}
	for _, a := range attrs {
		if !a.IsZero() {
			p.Set(a.Key, a.Value)
		}
	}
	return p
}

// Set adds or replaces the value for key. An existing key keeps its
// insertion position.
func (p *Props) Set(key string, v PropValue) {
	if p.vals == nil {
		p.vals = make(map[string]PropValue)
	}
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = v
}

// Get returns the value for key.
func (p *Props) Get(key string) (PropValue, bool) {
	if p == nil || p.vals == nil {
		return nil, false
	}
	v, ok := p.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of attributes.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// All iterates key/value pairs in insertion order.
func (p *Props) All() iter.Seq2[string, PropValue] {
	return func(yield func(string, PropValue) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.vals[k]) {
				return
			}
		}
	}
}

// Keys returns the attribute names in insertion order.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}
