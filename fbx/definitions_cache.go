package fbx

import (
	"log"

	"github.com/mogaika/fbxdom/tree"
)

// definitionsCache maps (object type, native type) to the Properties70
// node of the matching property template.
type definitionsCache struct {
	templates map[string]map[string]PropertiesNodeID
}

// newDefinitionsCache never fails: templates only supply default values,
// so malformed entries are logged and skipped.
func newDefinitionsCache(t *tree.Tree) *definitionsCache {
	c := &definitionsCache{templates: make(map[string]map[string]PropertiesNodeID)}

	definitions, ok := t.Root().FirstChildByName("Definitions")
	if !ok {
		return c
	}
	for _, objectType := range definitions.ChildrenByName("ObjectType") {
		typeName, err := firstStringAttribute(objectType)
		if err != nil {
			log.Printf("[definitions] Skipping %v: %v", objectType, err)
			continue
		}
		for _, template := range objectType.ChildrenByName("PropertyTemplate") {
			nativeType, err := firstStringAttribute(template)
			if err != nil {
				log.Printf("[definitions] Skipping template of %q %v: %v", typeName, template, err)
				continue
			}
			props, ok := template.FirstChildByName("Properties70")
			if !ok {
				continue
			}
			byNative, ok := c.templates[typeName]
			if !ok {
				byNative = make(map[string]PropertiesNodeID)
				c.templates[typeName] = byNative
			}
			if _, dup := byNative[nativeType]; dup {
				log.Printf("[definitions] Duplicate template (%q, %q), keeping the first one", typeName, nativeType)
				continue
			}
			byNative[nativeType] = PropertiesNodeID(props.ID())
		}
	}
	return c
}

func (c *definitionsCache) propertiesNodeID(objectType, nativeType string) (PropertiesNodeID, bool) {
	id, ok := c.templates[objectType][nativeType]
	return id, ok
}

func firstStringAttribute(node tree.Node) (string, error) {
	attr, ok := node.Attribute(0)
	if !ok {
		return "", malformed(node, "expected string attribute but got none")
	}
	s, err := attr.AsString()
	if err != nil {
		return "", malformed(node, "%v", err)
	}
	return s, nil
}
