package pom

import "testing"

func TestNewPropertiesSortsKeys(t *testing.T) {
	props := NewProperties(map[string]string{"b": "2", "a": "1", "c": "3"})

	var keys []string
	for _, p := range props {
		keys = append(keys, p.Key)
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys = %v, want [a b c]", keys)
	}
}

func TestPropertiesSet(t *testing.T) {
	var props Properties
	props.Set("x", "1")
	props.Set("y", "2")
	props.Set("x", "3")

	if len(props) != 2 {
		t.Fatalf("len = %d, want 2", len(props))
	}
	if v, ok := props.Get("x"); !ok || v != "3" {
		t.Errorf("Get(x) = %q, %v; want 3, true", v, ok)
	}
	if props[0].Key != "x" {
		t.Error("Set should replace in place, keeping order")
	}
	if _, ok := props.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
	if m := props.Map(); m["y"] != "2" {
		t.Errorf("Map() = %v", m)
	}
}
