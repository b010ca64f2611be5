package mesh

import (
	"github.com/pkg/errors"
)

// MappingMode is the granularity a layer element varies at.
type MappingMode int

const (
	MappingNone MappingMode = iota
	MappingByControlPoint
	MappingByPolygonVertex
	MappingByPolygon
	MappingByEdge
	MappingAllSame
)

func ParseMappingMode(s string) (MappingMode, error) {
	switch s {
	case "ByControlPoint", "ByVertex", "ByVertice":
		return MappingByControlPoint, nil
	case "ByPolygonVertex":
		return MappingByPolygonVertex, nil
	case "ByPolygon":
		return MappingByPolygon, nil
	case "ByEdge":
		return MappingByEdge, nil
	case "AllSame":
		return MappingAllSame, nil
	case "NoMappingInformation":
		return MappingNone, nil
	}
	return MappingNone, errors.Errorf("Failed to parse mapping mode: got %q", s)
}

func (m MappingMode) String() string {
	switch m {
	case MappingByControlPoint:
		return "ByControlPoint"
	case MappingByPolygonVertex:
		return "ByPolygonVertex"
	case MappingByPolygon:
		return "ByPolygon"
	case MappingByEdge:
		return "ByEdge"
	case MappingAllSame:
		return "AllSame"
	}
	return "None"
}

// ReferenceMode tells whether values are addressed directly or through
// an index array.
type ReferenceMode int

const (
	ReferenceDirect ReferenceMode = iota
	ReferenceIndexToDirect
)

func ParseReferenceMode(s string) (ReferenceMode, error) {
	switch s {
	case "Direct":
		return ReferenceDirect, nil
	case "IndexToDirect", "Index":
		return ReferenceIndexToDirect, nil
	}
	return ReferenceDirect, errors.Errorf("Failed to parse reference mode: got %q", s)
}

func (m ReferenceMode) String() string {
	if m == ReferenceIndexToDirect {
		return "IndexToDirect"
	}
	return "Direct"
}

// ReferenceInformation is a reference mode with its index array, used
// only by IndexToDirect.
type ReferenceInformation struct {
	Mode    ReferenceMode
	Indices []int32
}

func Direct() ReferenceInformation {
	return ReferenceInformation{Mode: ReferenceDirect}
}

func IndexToDirect(indices []int32) ReferenceInformation {
	return ReferenceInformation{Mode: ReferenceIndexToDirect, Indices: indices}
}

// MappedIndex computes the index selected by the mapping mode, before
// any reference indirection.
func MappedIndex(mapping MappingMode, tris *TriangleVertices, tvi TriangleVertexIndex) (int, error) {
	pvi, ok := tris.PolygonVertexIndex(tvi)
	if !ok {
		return 0, &IndexOutOfRangeError{What: "triangle vertex", Index: int(tvi), Len: tris.Len()}
	}

	switch mapping {
	case MappingAllSame:
		return 0, nil
	case MappingByControlPoint:
		pv, ok := tris.polygonVertices.PolygonVertex(pvi)
		if !ok {
			return 0, &IndexOutOfRangeError{What: "polygon vertex", Index: int(pvi), Len: tris.polygonVertices.Len()}
		}
		return int(pv.ControlPointIndex()), nil
	case MappingByPolygonVertex:
		return int(pvi), nil
	case MappingByPolygon:
		poly, ok := tris.PolygonIndex(tvi)
		if !ok {
			return 0, &IndexOutOfRangeError{What: "triangle", Index: int(tvi.TriangleIndex()), Len: tris.NumTriangles()}
		}
		return int(poly), nil
	}
	return 0, errors.Wrapf(ErrUnsupportedMapping, "%v", mapping)
}

// ResolveIndex returns the address of the value of triangle vertex tvi in
// an attribute array of length logical elements.
func ResolveIndex(ref ReferenceInformation, mapping MappingMode, tris *TriangleVertices, length int, tvi TriangleVertexIndex) (int, error) {
	index, err := MappedIndex(mapping, tris, tvi)
	if err != nil {
		return 0, err
	}

	if ref.Mode == ReferenceIndexToDirect {
		if index >= len(ref.Indices) {
			return 0, &IndexOutOfRangeError{What: "index array", Index: index, Len: len(ref.Indices)}
		}
		v := ref.Indices[index]
		if v < 0 {
			return 0, &NegativeIndexError{What: "index-to-direct", Slot: index, Value: v}
		}
		index = int(v)
	}

	if index >= length {
		return 0, &IndexOutOfRangeError{What: "attribute", Index: index, Len: length}
	}
	return index, nil
}
