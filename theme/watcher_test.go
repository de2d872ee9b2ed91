package theme

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatcherErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewWatcher(filepath.Join(dir, "missing")); errorCode(err) != ErrCodeWatchFailed {
		t.Errorf("missing dir: got %v want code %s", err, ErrCodeWatchFailed)
	}

	file := filepath.Join(dir, "file.json")
	if err := os.WriteFile(file, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewWatcher(file); errorCode(err) != ErrCodeWatchFailed {
		t.Errorf("file: got %v want code %s", err, ErrCodeWatchFailed)
	}
}

func TestWatcherSignalsTemplateWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx)
	}()

	// Ignored: hidden files and other suffixes.
	if err := os.WriteFile(filepath.Join(dir, ".swap.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Updates():
		t.Fatal("update for non-template file")
	case <-time.After(150 * time.Millisecond):
	}

	if err := os.WriteFile(filepath.Join(dir, "fern.yaml"), []byte(mossYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case _, ok := <-w.Updates():
		if !ok {
			t.Fatal("updates closed early")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no update after template write")
	}

	r := NewRegistry("", nil)
	if _, err := r.LoadDir(w.Dir()); err != nil {
		t.Fatal(err)
	}
	if r.Get("fern") == nil {
		t.Error("fern not loaded after update")
	}

	cancel()
	select {
	case err := <-done:
		if !stderrors.Is(err, context.Canceled) {
			t.Errorf("got %v want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	if _, ok := <-w.Updates(); ok {
		t.Error("updates not closed after stop")
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	w.settle = 100 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	// Nothing pending: no update while idle.
	select {
	case <-w.Updates():
		t.Fatal("update without any write")
	case <-time.After(250 * time.Millisecond):
	}

	for _, name := range []string{"a.json", "b.json", "a.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Updates():
	case <-time.After(2 * time.Second):
		t.Fatal("no update after burst")
	}
	select {
	case <-w.Updates():
		t.Fatal("burst produced more than one update")
	case <-time.After(300 * time.Millisecond):
	}
}
