package genome

import "github.com/google/uuid"

// Gene is one unit of a Plush genome: an unordered marker-to-value mapping
// that always contains the instruction marker and exactly the epigenetic
// markers the configuration requested.
type Gene map[Marker]any

// Instruction returns the gene's resolved instruction value.
func (g Gene) Instruction() any {
	return g[MarkerInstruction]
}

// CloseCount returns the close marker value, if present.
func (g Gene) CloseCount() (int, bool) {
	v, ok := g[MarkerClose].(int)
	return v, ok
}

// Silent returns the silent marker value, if present.
func (g Gene) Silent() (bool, bool) {
	v, ok := g[MarkerSilent].(bool)
	return v, ok
}

// UUID returns the uuid marker value, if present.
func (g Gene) UUID() (uuid.UUID, bool) {
	v, ok := g[MarkerUUID].(uuid.UUID)
	return v, ok
}

// Plush is a linear genome: an ordered gene sequence whose length lies in
// [1, max-genome-size].
type Plush []Gene
