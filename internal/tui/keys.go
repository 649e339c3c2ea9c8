package tui

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/sumform/internal/config"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps pressed keys to actions per scope. Lookups that miss a
// scope fall back to scopeGlobal.
type KeyRegistry struct {
	byScope map[string][]*Binding
	index   map[string]map[string]*Binding
}

const (
	scopeGlobal = "global"
	scopeForm   = "form"
	scopeHelp   = "help"
)

const (
	actionQuit      Action = "quit"
	actionNext      Action = "next"
	actionPrev      Action = "prev"
	actionAdd       Action = "add"
	actionRemove    Action = "remove"
	actionCalculate Action = "calculate"
	actionActivate  Action = "activate"
	actionHelp      Action = "help"
	actionClose     Action = "close"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		byScope: make(map[string][]*Binding),
		index:   make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	// Form footer order: navigation, edits, calculate, help, quit.
	reg(scopeForm, actionNext, []string{"tab", "down"}, "next")
	reg(scopeForm, actionPrev, []string{"shift+tab", "up"}, "prev")
	reg(scopeForm, actionAdd, []string{"ctrl+n"}, "add number")
	reg(scopeForm, actionRemove, []string{"ctrl+d"}, "remove number")
	reg(scopeForm, actionCalculate, []string{"ctrl+s"}, "calculate")
	reg(scopeForm, actionActivate, []string{"enter"}, "press")
	reg(scopeForm, actionHelp, []string{"f1"}, "help")
	reg(scopeForm, actionQuit, []string{"esc", "ctrl+c"}, "quit")

	reg(scopeHelp, actionClose, []string{"esc", "f1"}, "close")

	return r
}

// Register adds b to each of its scopes. Keys already taken in a scope are
// dropped from b there; a binding left with no keys is not added.
func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			continue
		}
		var free []string
		for _, k := range normalizeKeys(b.Keys) {
			if _, taken := r.index[scope][k]; !taken {
				free = append(free, k)
			}
		}
		if len(free) == 0 {
			continue
		}
		added := &Binding{Action: b.Action, Keys: free, Help: b.Help, Scopes: []string{scope}}
		r.byScope[scope] = append(r.byScope[scope], added)
		if r.index[scope] == nil {
			r.index[scope] = make(map[string]*Binding)
		}
		for _, k := range free {
			r.index[scope][k] = added
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.byScope[scope]))
	for _, b := range r.byScope[scope] {
		out = append(out, *b)
	}
	return out
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil {
		return nil
	}
	k := normalizeKey(keyName)
	if k == "" {
		return nil
	}
	if b := r.index[scope][k]; b != nil {
		return b
	}
	return r.index[scopeGlobal][k]
}

// HelpBindings converts a scope's bindings for the bubbles help footer. The
// first key of each binding is the one shown.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if n := normalizeKey(k); n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// normalizeKey lowercases k and accepts "control+" and "return" as spellings
// of "ctrl+" and "enter".
func normalizeKey(k string) string {
	s := strings.ToLower(strings.ReplaceAll(k, " ", ""))
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	if s == "return" {
		s = "enter"
	}
	return s
}

// ApplyKeybindingConfig replaces the keys of existing (scope, action) pairs.
// All overrides are checked before any is applied, so on error the registry
// is unchanged.
func (r *KeyRegistry) ApplyKeybindingConfig(items []config.KeybindingConfig) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	staged := make(map[*Binding][]string, len(items))
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		action := Action(strings.TrimSpace(o.Action))
		keys := normalizeKeys(o.Keys)
		switch {
		case scope == "":
			return fmt.Errorf("keybinding override: scope is required")
		case action == "":
			return fmt.Errorf("keybinding override scope=%q: action is required", scope)
		case len(keys) == 0:
			return fmt.Errorf("keybinding override scope=%q action=%q: keys are required", scope, action)
		}
		bindings, ok := r.byScope[scope]
		if !ok {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown scope", scope, action)
		}
		i := slices.IndexFunc(bindings, func(b *Binding) bool { return b.Action == action })
		if i < 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown action in scope", scope, action)
		}
		if _, dup := staged[bindings[i]]; dup {
			return fmt.Errorf("keybinding override scope=%q action=%q: duplicated override entry", scope, action)
		}
		staged[bindings[i]] = keys
	}

	scopes := make([]string, 0, len(r.byScope))
	for scope := range r.byScope {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	for _, scope := range scopes {
		owner := make(map[string]Action)
		for _, b := range r.byScope[scope] {
			keys := b.Keys
			if k, ok := staged[b]; ok {
				keys = k
			}
			for _, k := range keys {
				if prev, taken := owner[k]; taken {
					return fmt.Errorf("keybinding override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				owner[k] = b.Action
			}
		}
	}

	for b, keys := range staged {
		b.Keys = keys
	}
	r.reindex()
	return nil
}

func (r *KeyRegistry) reindex() {
	r.index = make(map[string]map[string]*Binding, len(r.byScope))
	for scope, bindings := range r.byScope {
		r.index[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.index[scope][k] = b
			}
		}
	}
}
