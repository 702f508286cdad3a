package outline

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// extractJSOutline finds the first `target = { 'ns': { ... } }` statement and
// lists the properties of the inner object. It returns nil when there is none.
func extractJSOutline(root *sitter.Node, content []byte) *Outline {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		statement := root.NamedChild(i)
		if statement == nil || statement.Kind() != "expression_statement" {
			continue
		}

		expr := statement.NamedChild(0)
		if expr == nil || expr.Kind() != "assignment_expression" {
			continue
		}

		right := expr.ChildByFieldName("right")
		if right == nil || right.Kind() != "object" {
			continue
		}

		for _, pair := range pairs(right) {
			value := pair.ChildByFieldName("value")
			if value == nil || value.Kind() != "object" {
				continue
			}

			outline := &Outline{Namespace: keyName(pair, content)}
			for _, member := range pairs(value) {
				outline.Members = append(outline.Members, Member{
					Name: keyName(member, content),
					Kind: valueKind(member.ChildByFieldName("value")),
					Line: int(member.StartPosition().Row) + 1,
				})
			}
			return outline
		}
	}

	return nil
}

// pairs returns the key/value children of an object, skipping comments
func pairs(object *sitter.Node) []*sitter.Node {
	var result []*sitter.Node
	for i := uint(0); i < object.NamedChildCount(); i++ {
		child := object.NamedChild(i)
		if child != nil && child.Kind() == "pair" {
			result = append(result, child)
		}
	}
	return result
}

func valueKind(value *sitter.Node) string {
	if value == nil {
		return ""
	}

	switch value.Kind() {
	case "function", "function_expression":
		return "function"
	case "arrow_function":
		return "arrow"
	case "class":
		return "class"
	case "new_expression":
		return "instance"
	case "member_expression":
		return "reference"
	default:
		return value.Kind()
	}
}
