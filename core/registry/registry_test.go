package registry

import "testing"

func TestRegistry_SetGet(t *testing.T) {
	r := &Registry{global: map[string]interface{}{}, locked: map[string]bool{}}
	r.SetGlobal("k", 1)
	v, ok := r.GetGlobal("k")
	if !ok || v != 1 {
		t.Errorf("GetGlobal = %v, %v", v, ok)
	}
	if _, ok := r.GetGlobal("missing"); ok {
		t.Error("want missing key to be absent")
	}
}

func TestRegistry_Lock(t *testing.T) {
	r := &Registry{global: map[string]interface{}{}, locked: map[string]bool{}}
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Fatal("want locked")
	}
	defer func() {
		if recover() == nil {
			t.Error("want panic on locked set")
		}
	}()
	r.SetGlobal("k", 1)
}

func TestRegistry_UnlockForTesting(t *testing.T) {
	r := &Registry{global: map[string]interface{}{}, locked: map[string]bool{}}
	r.Lock("k")
	r.UnlockForTesting("k")
	r.SetGlobal("k", 2)
	if v, _ := r.GetGlobal("k"); v != 2 {
		t.Errorf("GetGlobal = %v, want 2", v)
	}
}
