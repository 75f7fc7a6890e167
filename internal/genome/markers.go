package genome

import "errors"

// Marker names one attribute of a gene. Every gene carries the instruction
// marker; the rest are epigenetic and attached only when requested.
type Marker string

const (
	MarkerInstruction     Marker = "instruction"
	MarkerClose           Marker = "close"
	MarkerSilent          Marker = "silent"
	MarkerUUID            Marker = "uuid"
	MarkerRandomInsertion Marker = "random-insertion"
)

var ErrUnknownMarker = errors.New("unrecognized epigenetic marker")

// markerOrder fixes the order in which marker values are drawn from the
// random stream, so a fixed seed reproduces genes bit-identically.
var markerOrder = []Marker{
	MarkerInstruction,
	MarkerClose,
	MarkerSilent,
	MarkerUUID,
	MarkerRandomInsertion,
}

func isKnownMarker(m Marker) bool {
	for _, known := range markerOrder {
		if m == known {
			return true
		}
	}
	return false
}
