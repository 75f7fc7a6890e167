package genome

import (
	"fmt"

	"github.com/justmarler/Clojush/internal/random"
)

// RandomGenomeSize draws a genome length uniform over [1, maxGenomeSize].
// Both genome builders share this policy.
func RandomGenomeSize(src *random.Source, maxGenomeSize int) (int, error) {
	if maxGenomeSize < 1 {
		return 0, fmt.Errorf("max genome size must be >= 1, got %d", maxGenomeSize)
	}
	return 1 + random.Ensure(src).Intn(maxGenomeSize), nil
}
