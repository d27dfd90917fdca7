package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocalStore(dir, "/gallery")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	url, err := st.Save(ctx, "before/one.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "/gallery/before/one.jpg" {
		t.Fatalf("expected public url, got %q", url)
	}

	data, errRead := os.ReadFile(filepath.Join(dir, "before", "one.jpg"))
	if errRead != nil {
		t.Fatalf("read stored object: %v", errRead)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("unexpected object contents %q", data)
	}

	if errRemove := st.Remove(ctx, "before/one.jpg"); errRemove != nil {
		t.Fatalf("remove: %v", errRemove)
	}
	if _, errStat := os.Stat(filepath.Join(dir, "before", "one.jpg")); !os.IsNotExist(errStat) {
		t.Fatalf("expected object removed, stat err %v", errStat)
	}
}

func TestLocalStore_RemoveMissingObject(t *testing.T) {
	st, err := NewLocalStore(t.TempDir(), "/gallery")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if errRemove := st.Remove(context.Background(), "missing.jpg"); errRemove == nil {
		t.Fatal("expected error removing a missing object")
	}
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	st, err := NewLocalStore(t.TempDir(), "/gallery")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	for _, objectPath := range []string{"", "../outside.jpg", "a/../../outside.jpg"} {
		if _, errSave := st.Save(ctx, objectPath, strings.NewReader("x")); errSave == nil {
			t.Fatalf("expected save rejection for path %q", objectPath)
		}
		if errRemove := st.Remove(ctx, objectPath); errRemove == nil {
			t.Fatalf("expected remove rejection for path %q", objectPath)
		}
	}
}
