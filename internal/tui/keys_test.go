package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sumform/internal/config"
)

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	add := r.Lookup("ctrl+n", scopeForm)
	if add == nil {
		t.Fatal("expected add binding in form scope")
	}
	if add.Action != actionAdd {
		t.Fatalf("add action = %q, want %q", add.Action, actionAdd)
	}

	if got := r.Lookup("ctrl+n", scopeHelp); got != nil {
		t.Fatalf("did not expect add binding in help scope, got %q", got.Action)
	}

	quit := r.Lookup("ctrl+c", scopeHelp)
	if quit == nil || quit.Action != actionQuit {
		t.Fatal("expected global quit to be reachable from help scope")
	}
}

func TestKeyRegistryNormalizesNames(t *testing.T) {
	r := NewKeyRegistry()
	for _, k := range []string{"Control+N", " ctrl+n ", "CTRL + N"} {
		if b := r.Lookup(k, scopeForm); b == nil || b.Action != actionAdd {
			t.Fatalf("Lookup(%q) did not resolve to add", k)
		}
	}
	if b := r.Lookup("return", scopeForm); b == nil || b.Action != actionActivate {
		t.Fatal("expected return to normalize to enter")
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		byScope: make(map[string][]*Binding),
		index:   make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionAdd, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionRemove, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionRemove, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 {
		t.Fatalf("scope_a bindings = %d, want 1", len(a))
	}
	if a[0].Action != actionAdd {
		t.Fatalf("scope_a action = %q, want %q", a[0].Action, actionAdd)
	}

	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != actionRemove {
		t.Fatalf("scope_b bindings = %+v, want one remove binding", b)
	}
}

func TestKeyRegistryKeepsFreeKeysOfClashingBinding(t *testing.T) {
	r := NewKeyRegistry()
	r.Register(Binding{Action: actionCalculate, Keys: []string{"ctrl+n", "ctrl+r"}, Help: "again", Scopes: []string{scopeForm}})

	if b := r.Lookup("ctrl+n", scopeForm); b == nil || b.Action != actionAdd {
		t.Fatal("expected ctrl+n to stay bound to add")
	}
	if b := r.Lookup("ctrl+r", scopeForm); b == nil || b.Action != actionCalculate {
		t.Fatal("expected ctrl+r to be bound to calculate")
	}
}

func TestKeyRegistryHelpBindings(t *testing.T) {
	r := NewKeyRegistry()

	help := r.HelpBindings(scopeForm)
	if len(help) == 0 {
		t.Fatal("expected form help bindings")
	}
	entry := help[0].Help()
	if entry.Key != "tab" {
		t.Fatalf("help key = %q, want %q", entry.Key, "tab")
	}
	if entry.Desc != "next" {
		t.Fatalf("help desc = %q, want %q", entry.Desc, "next")
	}
}

func TestApplyKeybindingConfig(t *testing.T) {
	r := NewKeyRegistry()
	err := r.ApplyKeybindingConfig([]config.KeybindingConfig{
		{Scope: scopeForm, Action: string(actionAdd), Keys: []string{"ctrl+a"}},
	})
	if err != nil {
		t.Fatalf("ApplyKeybindingConfig: %v", err)
	}
	if b := r.Lookup("ctrl+a", scopeForm); b == nil || b.Action != actionAdd {
		t.Fatal("expected ctrl+a to add after override")
	}
	if b := r.Lookup("ctrl+n", scopeForm); b != nil {
		t.Fatalf("expected ctrl+n to be unbound after override, got %q", b.Action)
	}
}

func TestApplyKeybindingConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []config.KeybindingConfig
	}{
		{name: "unknown scope", items: []config.KeybindingConfig{{Scope: "nope", Action: "add", Keys: []string{"x"}}}},
		{name: "unknown action", items: []config.KeybindingConfig{{Scope: scopeForm, Action: "nope", Keys: []string{"x"}}}},
		{name: "missing keys", items: []config.KeybindingConfig{{Scope: scopeForm, Action: "add"}}},
		{name: "conflict", items: []config.KeybindingConfig{{Scope: scopeForm, Action: "add", Keys: []string{"ctrl+d"}}}},
		{name: "duplicate", items: []config.KeybindingConfig{
			{Scope: scopeForm, Action: "add", Keys: []string{"ctrl+a"}},
			{Scope: scopeForm, Action: "add", Keys: []string{"ctrl+b"}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewKeyRegistry()
			if err := r.ApplyKeybindingConfig(tc.items); err == nil {
				t.Fatal("expected error")
			}
			if b := r.Lookup("ctrl+n", scopeForm); b == nil || b.Action != actionAdd {
				t.Fatal("failed override must leave the registry unchanged")
			}
		})
	}
}

func TestOverriddenKeyDrivesModel(t *testing.T) {
	keys := NewKeyRegistry()
	if err := keys.ApplyKeybindingConfig([]config.KeybindingConfig{
		{Scope: scopeForm, Action: string(actionCalculate), Keys: []string{"ctrl+e"}},
	}); err != nil {
		t.Fatalf("ApplyKeybindingConfig: %v", err)
	}
	m := New(Options{Keys: keys, HelpStyle: "ascii"})
	m = applyMsgs(t, m, typeKeys("8"), tea.KeyMsg{Type: tea.KeyCtrlE})
	if sum, ok := m.Form().Sum(); !ok || sum != 8 {
		t.Fatalf("sum = %v (present %v), want 8", sum, ok)
	}
}
