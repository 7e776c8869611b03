package ports

// Storage persists scan history. The automaton itself is never stored —
// it is always rebuilt from the pattern list.
type Storage interface {
	// SaveScan appends a scan record and returns its assigned ID.
	SaveScan(rec *ScanRecord) (uint64, error)

	// ListScans returns the most recent records, newest first, up to limit.
	// A limit <= 0 means no limit.
	ListScans(limit int) ([]*ScanRecord, error)

	// LoadScan retrieves one record by ID. Returns nil, nil if absent.
	LoadScan(id uint64) (*ScanRecord, error)

	// Close releases the underlying database.
	Close() error
}
