package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the text grid format from r and builds a Grid.
// One line per row; a trailing '\r' is stripped so CRLF files load the same.
// Read failures are wrapped; format failures come from Build.
func Load(r io.Reader, registry Registry) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: read grid: %w", err)
	}

	return Build(rows, registry)
}

// LoadFile opens path and calls Load.
func LoadFile(path string, registry Registry) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f, registry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
