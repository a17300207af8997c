package core

import (
	"sort"
	"testing"
)

// ============================================================================
// Registry Tests
// ============================================================================

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}

func TestRegisterSchema(t *testing.T) {
	schema := InputSchema{
		Key:               "registry-test-a",
		Label:             "Registry Test A",
		CodeColumn:        "Code",
		DescriptionColumn: "Desc",
		QuantityColumn:    "Qty",
	}
	RegisterSchema(schema)

	got, ok := GetSchema("registry-test-a")
	if !ok {
		t.Fatal("GetSchema() did not find registered schema")
	}
	if got.Label != "Registry Test A" {
		t.Errorf("Label = %q", got.Label)
	}

	t.Run("duplicate key panics", func(t *testing.T) {
		mustPanic(t, func() { RegisterSchema(schema) })
	})

	t.Run("invalid schema panics", func(t *testing.T) {
		mustPanic(t, func() {
			RegisterSchema(InputSchema{Key: "registry-test-invalid"})
		})
	})
}

func TestGetSchemaUnknown(t *testing.T) {
	if _, ok := GetSchema("no-such-schema"); ok {
		t.Error("GetSchema() found an unregistered key")
	}
}

func TestSchemasSorted(t *testing.T) {
	RegisterSchema(InputSchema{
		Key: "registry-test-z", Label: "Z",
		CodeColumn: "C", DescriptionColumn: "D", QuantityColumn: "Q",
	})
	RegisterSchema(InputSchema{
		Key: "registry-test-b", Label: "B",
		CodeColumn: "C", DescriptionColumn: "D", QuantityColumn: "Q",
	})

	all := Schemas()
	keys := make([]string, len(all))
	for i, s := range all {
		keys[i] = s.Key
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("Schemas() not sorted: %v", keys)
	}
}

func TestRegisterProfile(t *testing.T) {
	profile := FormatProfile{
		Key:             "registry-test-profile",
		Label:           "Registry Test Profile",
		Layout:          LayoutSingle,
		QuantityPolicy:  PolicyExact,
		LineTermination: TermNone,
	}
	RegisterProfile(profile)

	got, ok := GetProfile("registry-test-profile")
	if !ok {
		t.Fatal("GetProfile() did not find registered profile")
	}
	if got.Layout != LayoutSingle {
		t.Errorf("Layout = %q", got.Layout)
	}

	t.Run("duplicate key panics", func(t *testing.T) {
		mustPanic(t, func() { RegisterProfile(profile) })
	})

	t.Run("invalid profile panics", func(t *testing.T) {
		mustPanic(t, func() {
			RegisterProfile(FormatProfile{Key: "registry-test-bad", Layout: "sideways"})
		})
	})
}

func TestBuiltinProfilesRegistered(t *testing.T) {
	tests := []struct {
		key         string
		layout      Layout
		policy      QuantityPolicy
		termination LineTermination
	}{
		{key: "pm42-triple-split", layout: LayoutTriple, policy: PolicySplit, termination: TermNone},
		{key: "pm42-single-exact", layout: LayoutSingle, policy: PolicyExact, termination: TermNone},
		{key: "pm42-preview", layout: LayoutTriple, policy: PolicySplit, termination: TermCRLF},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, ok := GetProfile(tt.key)
			if !ok {
				t.Fatalf("built-in profile %s not registered", tt.key)
			}
			if p.Layout != tt.layout || p.QuantityPolicy != tt.policy || p.LineTermination != tt.termination {
				t.Errorf("profile = %+v", p)
			}
			if p.TextWidth != DefaultTextWidth {
				t.Errorf("TextWidth = %d, want %d", p.TextWidth, DefaultTextWidth)
			}
		})
	}
}

func TestProfilesSorted(t *testing.T) {
	all := Profiles()
	keys := make([]string, len(all))
	for i, p := range all {
		keys[i] = p.Key
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("Profiles() not sorted: %v", keys)
	}
}
