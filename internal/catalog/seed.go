package catalog

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed catalog.json
var seedData []byte

var (
	seedOnce  sync.Once
	seedIndex *Index
	seedErr   error
)

// Default returns the index built from the embedded catalog.
// The embedded catalog is part of the binary; failing to parse it is a
// build defect, reported once and cached.
func Default() (*Index, error) {
	seedOnce.Do(func() {
		seedIndex, seedErr = Parse(seedData)
		if seedErr != nil {
			seedErr = fmt.Errorf("embedded catalog: %w", seedErr)
		}
	})
	return seedIndex, seedErr
}
