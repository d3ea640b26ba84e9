package kv

import (
	"bytes"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	if _, ok, err := s.Get("cart"); err != nil || ok {
		t.Fatalf("expected absent record, got ok=%v err=%v", ok, err)
	}
	if err := s.Set("cart", []byte(`[{"productId":"1","quantity":2}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get("cart")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if !bytes.Contains(got, []byte("productId")) {
		t.Fatalf("unexpected record: %s", got)
	}
	if err := s.Delete("cart"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("cart"); ok {
		t.Fatalf("expected record gone after delete")
	}
	if err := s.Delete("cart"); err != nil {
		t.Fatalf("delete absent key should not error: %v", err)
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	s := NewMemory()
	if err := s.Set("currentUser", []byte("original")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _, _ := s.Get("currentUser")
	got[0] = 'X'
	again, _, _ := s.Get("currentUser")
	if string(again) != "original" {
		t.Fatalf("stored record mutated through returned slice: %s", again)
	}
}
