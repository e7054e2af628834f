package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestNew(t *testing.T) {
	w, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.watcher == nil {
		t.Error("w.watcher is nil")
	}
	if w.debounce == nil {
		t.Error("w.debounce is nil")
	}

	_ = w.Stop()
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Debounce != 500*time.Millisecond {
		t.Errorf("config.Debounce = %v, want 500ms", config.Debounce)
	}
	if len(config.Extensions) != 1 || config.Extensions[0] != ".sur" {
		t.Errorf("config.Extensions = %v, want [.sur]", config.Extensions)
	}
	if !config.SkipHidden {
		t.Error("config.SkipHidden = false, want true")
	}
}

func TestWatcher_Watch_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "song.sur")

	content := "%%CONFIG\nname: Watch Me\n%%SCALE\nS -> Sa\n%%COMPOSITION\n#A\nb: S R G\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.Path = tmpFile
	config.Debounce = 50 * time.Millisecond

	w, err := New(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	var changeCount atomic.Int32
	changeCalled := make(chan string, 10)

	onChange := func(path string) error {
		changeCount.Add(1)
		select {
		case changeCalled <- path:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Watch(ctx, onChange)
	}()

	// Wait for watcher to start
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(tmpFile, []byte(content+"b: P D N\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changeCalled:
		if path != tmpFile {
			t.Errorf("onChange path = %q, want %q", path, tmpFile)
		}
	case <-time.After(500 * time.Millisecond):
		t.Error("onChange not called after file modification")
	}

	cancel()
	time.Sleep(50 * time.Millisecond)

	if changeCount.Load() == 0 {
		t.Error("onChange was never called")
	}
}

func TestWatcher_Watch_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "song.sur")

	content := "%%CONFIG\nname: Watch Me\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.Path = tmpDir
	config.Debounce = 50 * time.Millisecond

	w, err := New(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	changeCalled := make(chan string, 10)
	onChange := func(path string) error {
		select {
		case changeCalled <- path:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Watch(ctx, onChange)
	}()

	time.Sleep(100 * time.Millisecond)

	newFile := filepath.Join(tmpDir, "second.sur")
	if err := os.WriteFile(newFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changeCalled:
	case <-time.After(500 * time.Millisecond):
		t.Error("onChange not called after creating new file")
	}
}

func TestWatcher_Debouncing(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "song.sur")

	content := "%%CONFIG\nname: Debounce\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.Path = tmpFile
	config.Debounce = 200 * time.Millisecond

	w, err := New(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	var changeCount atomic.Int32
	onChange := func(string) error {
		changeCount.Add(1)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Watch(ctx, onChange)
	}()

	time.Sleep(100 * time.Millisecond)

	// Rapid modifications, all within the debounce window.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(tmpFile, []byte(content+string(rune('0'+i))), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(30 * time.Millisecond)
	}

	time.Sleep(300 * time.Millisecond)

	count := changeCount.Load()
	if count == 0 {
		t.Error("onChange was never called")
	}
	if count > 2 {
		t.Errorf("onChange called %d times, want <= 2 (debouncing failed)", count)
	}
}

func TestWatcher_DoubleStart(t *testing.T) {
	tmpDir := t.TempDir()
	config := DefaultConfig()
	config.Path = tmpDir

	w, err := New(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Watch(ctx, func(string) error { return nil })
	}()

	time.Sleep(50 * time.Millisecond)

	if err := w.Watch(ctx, func(string) error { return nil }); err == nil {
		t.Error("second Watch() call error = nil, want error")
	}
}

func TestWatcher_FilterExtensions(t *testing.T) {
	w, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	tests := []struct {
		ext   string
		valid bool
	}{
		{".sur", true},
		{".txt", false},
		{".yaml", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := w.hasValidExtension(tt.ext); got != tt.valid {
				t.Errorf("hasValidExtension(%q) = %v, want %v", tt.ext, got, tt.valid)
			}
		})
	}
}

func TestWatcher_ShouldProcessEvent(t *testing.T) {
	w, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Stop() }()

	tests := []struct {
		name        string
		event       fsnotify.Event
		shouldAllow bool
	}{
		{"write to sur file", fsnotify.Event{Name: "/songs/a.sur", Op: fsnotify.Write}, true},
		{"uppercase extension", fsnotify.Event{Name: "/songs/a.SUR", Op: fsnotify.Write}, true},
		{"create sur file", fsnotify.Event{Name: "/songs/a.sur", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "/songs/a.sur", Op: fsnotify.Chmod}, false},
		{"other extension", fsnotify.Event{Name: "/songs/a.txt", Op: fsnotify.Write}, false},
		{"hidden file", fsnotify.Event{Name: "/songs/.a.sur", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.shouldProcessEvent(tt.event); got != tt.shouldAllow {
				t.Errorf("shouldProcessEvent(%q) = %v, want %v", tt.event.Name, got, tt.shouldAllow)
			}
		})
	}
}

func TestDebouncer_Trigger(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)
	defer debouncer.Stop()

	var callCount atomic.Int32
	callback := func() {
		callCount.Add(1)
	}

	for i := 0; i < 5; i++ {
		debouncer.Trigger(callback)
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if count := callCount.Load(); count != 1 {
		t.Errorf("callback called %d times, want 1", count)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)

	var callCount atomic.Int32
	debouncer.Trigger(func() {
		callCount.Add(1)
	})

	debouncer.Stop()

	time.Sleep(150 * time.Millisecond)

	if count := callCount.Load(); count != 0 {
		t.Errorf("callback called %d times after Stop(), want 0", count)
	}
}
