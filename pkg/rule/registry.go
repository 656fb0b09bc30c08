package rule

import (
	"slices"

	"github.com/rwjstewart/gfsbuddy/pkg/message"
)

// Registry is an ordered, name-unique collection of rules.
//
// Iteration order is the insertion order of first introduction: setting a
// rule whose name is already present replaces the existing entry in place,
// preserving its original position. The registry is built during single-
// threaded setup and treated as read-only during evaluation.
type Registry struct {
	index map[string]int
	rules []*Rule
}

// NewRegistry creates a registry holding the given rules, in order.
func NewRegistry(rules ...*Rule) *Registry {
	rg := &Registry{
		index: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		rg.Set(r)
	}

	return rg
}

// Set inserts r, or replaces the rule sharing its name at the same ordinal
// position.
func (rg *Registry) Set(r *Rule) {
	if i, ok := rg.index[r.Name]; ok {
		rg.rules[i] = r

		return
	}

	rg.index[r.Name] = len(rg.rules)
	rg.rules = append(rg.rules, r)
}

// Get returns the rule with the given name. Absence is not an error; callers
// decide whether a miss is fatal.
func (rg *Registry) Get(name string) (*Rule, bool) {
	i, ok := rg.index[name]
	if !ok {
		return nil, false
	}

	return rg.rules[i], true
}

// All returns the rules in evaluation order. The returned slice is a copy;
// the rules themselves are shared.
func (rg *Registry) All() []*Rule {
	return slices.Clone(rg.rules)
}

// Len returns the number of live rules.
func (rg *Registry) Len() int {
	return len(rg.rules)
}

// SetEnabled updates the enabled state of the named rule, reporting whether
// the rule exists.
func (rg *Registry) SetEnabled(name string, enabled bool) bool {
	r, ok := rg.Get(name)
	if !ok {
		return false
	}

	r.Enabled = enabled

	return true
}

// SetMessage replaces the message of the named rule, reporting whether the
// rule exists.
func (rg *Registry) SetMessage(name string, msg message.Message) bool {
	r, ok := rg.Get(name)
	if !ok {
		return false
	}

	r.SetMessage(msg)

	return true
}
