package fbx

import (
	"fmt"

	"github.com/mogaika/fbxdom/tree"
)

// ConnectedNodeType is the kind of a connection endpoint.
type ConnectedNodeType int

const (
	ConnectedObject ConnectedNodeType = iota
	ConnectedProperty
)

func (t ConnectedNodeType) String() string {
	if t == ConnectedProperty {
		return "Property"
	}
	return "Object"
}

type connection struct {
	source          ObjectID
	destination     ObjectID
	sourceType      ConnectedNodeType
	destinationType ConnectedNodeType
	label           symbol
	labeled         bool
	node            tree.NodeID
	index           int
}

type connectionKey struct {
	source      ObjectID
	destination ObjectID
	label       symbol
	labeled     bool
}

type connectionsCache struct {
	connections   []connection
	bySource      map[ObjectID][]int
	byDestination map[ObjectID][]int
	labels        *symbolTable
}

// parseConnectionType decodes "OO", "OP", "PO" and "PP". The first letter
// is the destination kind.
func parseConnectionType(code string) (destination, source ConnectedNodeType, ok bool) {
	if len(code) != 2 {
		return 0, 0, false
	}
	kind := func(b byte) (ConnectedNodeType, bool) {
		switch b {
		case 'O':
			return ConnectedObject, true
		case 'P':
			return ConnectedProperty, true
		}
		return 0, false
	}
	destination, ok1 := kind(code[0])
	source, ok2 := kind(code[1])
	return destination, source, ok1 && ok2
}

func newConnectionsCache(t *tree.Tree) (*connectionsCache, error) {
	root, ok := t.Root().FirstChildByName("Connections")
	if !ok {
		return nil, missingNode("/Connections")
	}

	c := &connectionsCache{
		bySource:      make(map[ObjectID][]int),
		byDestination: make(map[ObjectID][]int),
		labels:        newSymbolTable(),
	}
	registered := make(map[connectionKey]int)

	for index, node := range root.ChildrenByName("C") {
		conn, err := c.parse(node, index)
		if err != nil {
			return nil, err
		}
		key := connectionKey{
			source:      conn.source,
			destination: conn.destination,
			label:       conn.label,
			labeled:     conn.labeled,
		}
		if prev, dup := registered[key]; dup {
			e := &DuplicateConnectionError{
				Source:         conn.source,
				Destination:    conn.destination,
				Labeled:        conn.labeled,
				Index:          index,
				NodeID:         conn.node,
				PreviousIndex:  prev,
				PreviousNodeID: c.connections[prev].node,
			}
			if conn.labeled {
				e.Label = c.labels.resolve(conn.label)
			}
			return nil, e
		}
		registered[key] = index
		c.connections = append(c.connections, conn)
		c.bySource[conn.source] = append(c.bySource[conn.source], index)
		c.byDestination[conn.destination] = append(c.byDestination[conn.destination], index)
	}
	return c, nil
}

func (c *connectionsCache) parse(node tree.Node, index int) (connection, error) {
	attrs := node.Attributes()
	shapeOk := (len(attrs) == 3 || len(attrs) == 4) &&
		attrs[0].Type() == tree.TypeString &&
		attrs[1].Type() == tree.TypeI64 &&
		attrs[2].Type() == tree.TypeI64 &&
		(len(attrs) == 3 || attrs[3].Type() == tree.TypeString)
	if !shapeOk {
		return connection{}, malformed(node,
			"expected `(string, i64, i64)` or `(string, i64, i64, string)` as connection #%d attributes but got `%s`",
			index, tree.TypesOf(attrs))
	}

	code, _ := attrs[0].AsString()
	destType, srcType, ok := parseConnectionType(code)
	if !ok {
		return connection{}, malformed(node, "unknown connection type %q in connection #%d", code, index)
	}
	source, _ := attrs[1].AsI64()
	destination, _ := attrs[2].AsI64()

	conn := connection{
		source:          ObjectID(source),
		destination:     ObjectID(destination),
		sourceType:      srcType,
		destinationType: destType,
		node:            node.ID(),
		index:           index,
	}
	if len(attrs) == 4 {
		label, _ := attrs[3].AsString()
		conn.label = c.labels.intern(label)
		conn.labeled = true
	}
	return conn, nil
}

// Connection is a directed edge: the source is the child, the destination
// is the parent.
type Connection struct {
	conn *connection
	doc  *Document
}

func (c Connection) Source() ObjectID                   { return c.conn.source }
func (c Connection) Destination() ObjectID              { return c.conn.destination }
func (c Connection) SourceType() ConnectedNodeType      { return c.conn.sourceType }
func (c Connection) DestinationType() ConnectedNodeType { return c.conn.destinationType }

// Index is the 0-based position of the C node in file order.
func (c Connection) Index() int { return c.conn.index }

func (c Connection) NodeID() tree.NodeID { return c.conn.node }

func (c Connection) Label() (string, bool) {
	if !c.conn.labeled {
		return "", false
	}
	return c.doc.connections.labels.resolve(c.conn.label), true
}

func (c Connection) SourceObject() (ObjectHandle, bool) {
	return c.doc.ObjectByID(c.conn.source)
}

func (c Connection) DestinationObject() (ObjectHandle, bool) {
	return c.doc.ObjectByID(c.conn.destination)
}

func (c Connection) String() string {
	s := fmt.Sprintf("C%d %s(%d) -> %s(%d)", c.conn.index,
		c.conn.sourceType, c.conn.source, c.conn.destinationType, c.conn.destination)
	if label, ok := c.Label(); ok {
		s += fmt.Sprintf(" %q", label)
	}
	return s
}

// labelFilter selects connections by label. A nil label matches unlabeled
// connections only.
func (c *connectionsCache) labelFilter(label *string) (func(*connection) bool, bool) {
	if label == nil {
		return func(conn *connection) bool { return !conn.labeled }, true
	}
	sym, ok := c.labels.lookup(*label)
	if !ok {
		return nil, false
	}
	return func(conn *connection) bool { return conn.labeled && conn.label == sym }, true
}

func (d *Document) collect(indices []int, filter func(*connection) bool) []Connection {
	var result []Connection
	for _, i := range indices {
		conn := &d.connections.connections[i]
		if filter == nil || filter(conn) {
			result = append(result, Connection{conn: conn, doc: d})
		}
	}
	return result
}

// SourceObjects returns connections whose destination is id, in file order.
func (d *Document) SourceObjects(id ObjectID) []Connection {
	return d.collect(d.connections.byDestination[id], nil)
}

// DestinationObjects returns connections whose source is id, in file order.
func (d *Document) DestinationObjects(id ObjectID) []Connection {
	return d.collect(d.connections.bySource[id], nil)
}

// SourceObjectsByLabel is SourceObjects filtered by label. A nil label
// selects unlabeled connections.
func (d *Document) SourceObjectsByLabel(id ObjectID, label *string) []Connection {
	filter, ok := d.connections.labelFilter(label)
	if !ok {
		return nil
	}
	return d.collect(d.connections.byDestination[id], filter)
}

// DestinationObjectsByLabel is DestinationObjects filtered by label.
func (d *Document) DestinationObjectsByLabel(id ObjectID, label *string) []Connection {
	filter, ok := d.connections.labelFilter(label)
	if !ok {
		return nil
	}
	return d.collect(d.connections.bySource[id], filter)
}

// Connections returns every connection in file order.
func (d *Document) Connections() []Connection {
	result := make([]Connection, len(d.connections.connections))
	for i := range d.connections.connections {
		result[i] = Connection{conn: &d.connections.connections[i], doc: d}
	}
	return result
}
