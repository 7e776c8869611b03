// Package loader reads pattern lists and scan text from disk.
package loader

import (
	"bufio"
	"fmt"
	"os"
)

// Patterns reads one pattern per line, skipping empty lines. A file that
// yields no patterns is an error — the matcher rejects empty lists anyway,
// so fail early with the file name attached.
func Patterns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			patterns = append(patterns, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("pattern file %s contains no patterns", path)
	}
	return patterns, nil
}

// Text reads a whole text file.
func Text(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}
