package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Expected hit with value v, got %q found=%v", val, found)
	}
}

func TestMemoryCache_DeleteClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected a deleted")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected b cleared")
	}
}

func TestKey(t *testing.T) {
	k1 := Key("How many patients had severe adverse events?")
	k2 := Key("How many patients had severe adverse events?")
	k3 := Key("different question")

	if k1 != k2 {
		t.Error("Expected identical questions to produce identical keys")
	}
	if k1 == k3 {
		t.Error("Expected different questions to produce different keys")
	}
	if len(k1) == 0 || k1[:10] != "aequery:v1" {
		t.Errorf("Unexpected key format: %s", k1)
	}
}
