package ports

// Watcher monitors files for changes.
type Watcher interface {
	// Watch starts monitoring the given files and calls onChange with the
	// path of each file that changes.
	Watch(paths []string, onChange func(path string)) error

	// Stop ends monitoring and releases resources. Safe to call twice.
	Stop() error
}
