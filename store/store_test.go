package store

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPutGetString(t *testing.T) {
	db := openTemp(t)

	if err := db.PutString("greeting", "hello"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	raw, err := db.Get("greeting")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != "hello" {
		t.Errorf("Get = %q, want hello", raw)
	}
}

func TestPutGetUint32(t *testing.T) {
	db := openTemp(t)

	if err := db.PutUint32("last_seed:FemaleOutfitNode", 4294967295); err != nil {
		t.Fatalf("PutUint32: %v", err)
	}
	v, ok := db.GetUint32("last_seed:FemaleOutfitNode")
	if !ok || v != 4294967295 {
		t.Errorf("GetUint32 = %d, %v", v, ok)
	}

	if _, ok := db.GetUint32("never-written"); ok {
		t.Error("missing key reported present")
	}
}

func TestPutBytesRoundTrip(t *testing.T) {
	db := openTemp(t)

	payload := bytes.Repeat([]byte(`{"selections":{"torso":"t-shirt"}}`), 100)
	if err := db.PutBytes("result:blob", payload); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}
	raw, err := db.Get("result:blob")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(raw, payload) {
		t.Error("round-tripped bytes differ")
	}
}

func TestHasAndDelete(t *testing.T) {
	db := openTemp(t)

	if db.Has("key") {
		t.Error("Has on empty store")
	}
	if err := db.PutString("key", "v"); err != nil {
		t.Fatal(err)
	}
	if !db.Has("key") {
		t.Error("Has after Put")
	}
	if err := db.Delete("key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if db.Has("key") {
		t.Error("Has after Delete")
	}
}

func TestCacheKeyIsStable(t *testing.T) {
	a := CacheKey("some key")
	b := CacheKey("some key")
	if !bytes.Equal(a, b) {
		t.Error("CacheKey not deterministic")
	}
	if bytes.Equal(a, CacheKey("other key")) {
		t.Error("distinct keys collide")
	}
}
