package java

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"
)

// ParsePackageDeclaration extracts the declared Java package from source code.
// It returns the empty string when the file has no package declaration or the
// source cannot be parsed. Package statements inside comments never appear in
// the syntax tree, so they are never picked up.
func ParsePackageDeclaration(sourceCode []byte) string {
	tree, err := parseJava(sourceCode)
	if err != nil {
		return ""
	}
	defer tree.Close()

	node := findFirstNodeOfType(tree.RootNode(), "package_declaration")
	if node == nil {
		return ""
	}

	if name := node.ChildByFieldName("name"); name != nil {
		return strings.TrimSpace(name.Content(sourceCode))
	}

	if name := findFirstChildOfType(node, "scoped_identifier", "identifier"); name != nil {
		return strings.TrimSpace(name.Content(sourceCode))
	}

	return ""
}

func parseJava(sourceCode []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsjava.GetLanguage())
	return parser.ParseCtx(context.Background(), nil, sourceCode)
}

func findFirstChildOfType(node *sitter.Node, types ...string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return nil
}

func findFirstNodeOfType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == nodeType {
		return node
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		found := findFirstNodeOfType(node.NamedChild(i), nodeType)
		if found != nil {
			return found
		}
	}
	return nil
}
