package outline

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Helper function to get node text from content
func getNodeText(node *sitter.Node, content []byte) string {
	return string(content[node.StartByte():node.EndByte()])
}

// keyName returns the key of a pair with string quotes removed
func keyName(pair *sitter.Node, content []byte) string {
	key := pair.ChildByFieldName("key")
	if key == nil {
		return ""
	}

	text := getNodeText(key, content)
	if key.Kind() == "string" {
		text = strings.Trim(text, `'"`)
	}
	return text
}
