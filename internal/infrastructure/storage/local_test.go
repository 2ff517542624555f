package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLocalStore_SaveAndList(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	store.now = func() time.Time { return time.UnixMilli(1750000000000) }

	publicPath, err := store.Save(t.Context(), "Portada Final.JPG", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/news/1750000000000-") || !strings.HasSuffix(publicPath, ".jpg") {
		t.Fatalf("unexpected public path %q", publicPath)
	}

	files, err := store.ListFiles(t.Context())
	if err != nil {
		t.Fatalf("list files failed: %v", err)
	}
	if len(files) != 1 || files[0] != publicPath {
		t.Fatalf("expected [%s], got %v", publicPath, files)
	}
}

func TestLocalStore_SaveRejections(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 10)
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	if _, err := store.Save(t.Context(), "script.svg", []byte{1}); err == nil {
		t.Fatal("expected error for disallowed extension")
	}
	if _, err := store.Save(t.Context(), "big.png", make([]byte, 11)); err == nil {
		t.Fatal("expected error for oversized payload")
	}
}

func TestLocalStore_DeleteGuardsPrefix(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, 0)
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	publicPath, err := store.Save(t.Context(), "foto.png", []byte{1, 2})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.Delete(t.Context(), "/etc/passwd"); err == nil {
		t.Fatal("expected error for path outside upload prefix")
	}
	if err := store.Delete(t.Context(), "/uploads/news/../escape.png"); err == nil {
		t.Fatal("expected error for traversal path")
	}

	if err := store.Delete(t.Context(), publicPath); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	name := strings.TrimPrefix(publicPath, "/uploads/news/")
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}

	// deleting a missing file is not an error
	if err := store.Delete(t.Context(), publicPath); err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
}
