package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDescriptorFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.excclass")

	content := "# comment\nConnectionError Exception\nTimeoutError ConnectionError\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	descriptors, err := parseDescriptorFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descriptors))
	}

	if descriptors[0].Name != "ConnectionError" || descriptors[0].ParentName != "Exception" {
		t.Fatalf("unexpected first descriptor: %+v", descriptors[0])
	}

	if descriptors[1].Name != "TimeoutError" || descriptors[1].ParentName != "ConnectionError" {
		t.Fatalf("unexpected second descriptor: %+v", descriptors[1])
	}
}

func TestParseDescriptorFileDefaultsParentToThrowable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bare.excclass")

	if err := os.WriteFile(path, []byte("LoneError\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	descriptors, err := parseDescriptorFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if descriptors[0].ParentName != "Throwable" {
		t.Fatalf("expected default parent Throwable, got %q", descriptors[0].ParentName)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hot.excclass")

	if err := os.WriteFile(path, []byte("HotReloadError\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New("^1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("HotReloadError\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads():
		if r.Err != nil {
			t.Fatalf("unexpected reload error: %v", r.Err)
		}
	case err := <-w.Errors():
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload notification")
	}
}
