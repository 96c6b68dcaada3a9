// Package progress loads the caller-supplied written/correct question
// id sets. The sets are read-only input; nothing here ever writes them.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/abhisek/querydrill/internal/highlight"
)

// file is the on-disk shape. Both arrays are optional.
type file struct {
	Written []int `json:"written"`
	Correct []int `json:"correct"`
}

// Parse decodes progress JSON into the highlight sets.
func Parse(data []byte) (highlight.Progress, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return highlight.Progress{}, fmt.Errorf("decode progress: %w", err)
	}
	return highlight.NewProgress(f.Written, f.Correct), nil
}

// Load reads a progress file. An empty path or a missing file yields
// empty progress; any other failure is an error.
func Load(path string) (highlight.Progress, error) {
	if path == "" {
		return highlight.Progress{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return highlight.Progress{}, nil
		}
		return highlight.Progress{}, fmt.Errorf("read progress file: %w", err)
	}
	return Parse(data)
}
