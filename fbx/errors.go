package fbx

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mogaika/fbxdom/tree"
)

var (
	// ErrMissingNode is returned when a required top-level node is absent.
	ErrMissingNode = errors.New("missing required node")
	// ErrMalformedNode is returned when a node has unexpected attributes.
	ErrMalformedNode       = errors.New("malformed node")
	ErrDuplicateObject     = errors.New("duplicate object id")
	ErrDuplicateConnection = errors.New("duplicate connection")
	// ErrMissingConnection is returned by navigation methods whose target
	// must exist for the document to be consistent.
	ErrMissingConnection = errors.New("missing connection")
)

// DuplicateConnectionError names both conflicting C nodes.
type DuplicateConnectionError struct {
	Source      ObjectID
	Destination ObjectID
	Label       string
	Labeled     bool

	Index          int
	NodeID         tree.NodeID
	PreviousIndex  int
	PreviousNodeID tree.NodeID
}

func (e *DuplicateConnectionError) Error() string {
	label := "<none>"
	if e.Labeled {
		label = fmt.Sprintf("%q", e.Label)
	}
	return fmt.Sprintf("duplicate connection: source=%d destination=%d label=%s: "+
		"connection #%d (node %d) conflicts with connection #%d (node %d)",
		e.Source, e.Destination, label, e.Index, e.NodeID, e.PreviousIndex, e.PreviousNodeID)
}

func (e *DuplicateConnectionError) Unwrap() error {
	return ErrDuplicateConnection
}

func missingNode(path string) error {
	return errors.Wrapf(ErrMissingNode, "expected %q node", path)
}

func malformed(node tree.Node, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedNode, "%s: %s", node.Path(), fmt.Sprintf(format, args...))
}
