// Package watcher provides filesystem watching for notation files.
//
// It backs the --watch flag of the fmt and lint commands: a Watcher
// observes a .sur file or a directory tree of them and invokes a
// callback when files change. Rapid event bursts, which editors emit on
// every save, are debounced so the callback runs once per quiet period.
//
//	w, err := watcher.New(&watcher.Config{Path: "songs/"}, logger)
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//
//	err = w.Watch(ctx, func(path string) error {
//	    return relint(path)
//	})
package watcher
