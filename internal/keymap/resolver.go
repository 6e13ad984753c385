package keymap

import "strings"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys, in binding order
	short    map[Action]string   // action -> description
}

// NewResolver creates a resolver from bindings. A key bound twice keeps
// the later action.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		short:    make(map[Action]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
		if _, ok := r.short[b.Action]; !ok {
			r.short[b.Action] = b.Description
		}
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Default returns a resolver over Bindings.
func Default() *Resolver {
	return NewResolver(Bindings)
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Hint formats "key description" pairs for a footer, using the first key
// of each action. Unbound actions are skipped.
func (r *Resolver) Hint(actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		keys := r.byAction[a]
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keys[0]+" "+strings.ToLower(r.short[a]))
	}
	return strings.Join(parts, " · ")
}

// dedupe removes duplicate strings from a slice, keeping the first.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
