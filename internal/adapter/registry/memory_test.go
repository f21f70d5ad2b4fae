package registry

import (
	"context"
	"testing"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory()

	if name, err := reg.Lookup(ctx, "42"); err != nil || name != "" {
		t.Fatalf("expected empty lookup, got %q err %v", name, err)
	}

	if err := reg.Register(ctx, "42", "alice"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register(ctx, "43", "bob"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register(ctx, "42", "alice2"); err != nil {
		t.Fatalf("re-register failed: %v", err)
	}

	if name, _ := reg.Lookup(ctx, "42"); name != "alice2" {
		t.Fatalf("expected overwrite to alice2, got %q", name)
	}

	all, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 2 || all["43"] != "bob" {
		t.Fatalf("unexpected registry contents: %v", all)
	}
}
