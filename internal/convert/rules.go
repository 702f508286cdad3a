package convert

import (
	"regexp"
	"strings"
)

// Shape names a declaration form the rule table recognizes
type Shape string

const (
	ShapeFunction        Shape = "function"
	ShapeAliasedFunction Shape = "aliased-function"
	ShapeArrow           Shape = "arrow"
	ShapeClass           Shape = "class"
	ShapeNestedPath      Shape = "nested-path"
	ShapeInstance        Shape = "instance"
	ShapeReference       Shape = "reference"
	ShapeLazyGetter      Shape = "lazy-getter"
)

// Head holds expansion templates (regexp.Expand syntax) for one emitted entry
type Head struct {
	// Name expands to the member name
	Name string
	// Line expands to the text replacing the matched part of the declaration
	Line string
}

// Rule pairs a declaration pattern with the heads it rewrites to. A rule
// without heads matches and drops the block.
type Rule struct {
	Shape   Shape
	Pattern *regexp.Regexp
	Heads   []Head
}

// Rewrite is a rewritten declaration line and the member it declares
type Rewrite struct {
	Name string
	Line string
}

// Apply rewrites line once per head. The part of line outside the match is
// kept as is. ok is false when the pattern does not match.
func (r Rule) Apply(line string) (rewrites []Rewrite, ok bool) {
	m := r.Pattern.FindStringSubmatchIndex(line)
	if m == nil {
		return nil, false
	}

	for _, h := range r.Heads {
		name := r.Pattern.ExpandString(nil, h.Name, line, m)
		repl := r.Pattern.ExpandString(nil, h.Line, line, m)
		rewrites = append(rewrites, Rewrite{
			Name: string(name),
			Line: line[:m[0]] + string(repl) + line[m[1]:],
		})
	}

	return rewrites, true
}

// NewRules returns the ordered rule table for the given self token.
// Evaluation is first match wins.
func NewRules(self string) []Rule {
	quoted := strings.NewReplacer("SELF", regexp.QuoteMeta(self))
	literal := strings.NewReplacer("SELF", strings.ReplaceAll(self, "$", "$$"))

	rule := func(shape Shape, pattern string, heads ...Head) Rule {
		for i := range heads {
			heads[i].Line = literal.Replace(heads[i].Line)
		}
		return Rule{
			Shape:   shape,
			Pattern: regexp.MustCompile(quoted.Replace(pattern)),
			Heads:   heads,
		}
	}

	return []Rule{
		// this.stroke = function () {
		rule(ShapeFunction, `^ {4}SELF\.([^ ]+) = (function \([^=]*\) \{)$`,
			Head{Name: "${1}", Line: "    ${1}: ${2}"}),

		// this.loadImg = this.loadImage = function () {
		rule(ShapeAliasedFunction, ` {4}SELF\.([^ ]+) = SELF\.([^ ]+) = (function \(.*\) \{)$`,
			Head{Name: "${1}", Line: "    ${1}: ${3}"},
			Head{Name: "${2}", Line: "    ${2}: ${3}"}),

		// this.showAd = (type) => {
		rule(ShapeArrow, `SELF\.([^ ]+) = \(([^)]*)\) => \{$`,
			Head{Name: "${1}", Line: "${1}: (${2}) => {"}),

		// this.Sprite = class {
		// this.Group = class extends Array {
		rule(ShapeClass, `SELF\.([^ ]+) = class ([^$]*)\{$`,
			Head{Name: "${1}", Line: "${1}: class ${2}{"}),

		// this.Sprite.prototype.addAnimation =
		// TODO: emit prototype members as nested entries once the stub layout for them is settled
		rule(ShapeNestedPath, `SELF\.([^ ]+)\.prototype\.([^ ]+) =$`),

		// this.allSprites = new this.Group();
		rule(ShapeInstance, `SELF\.([^ ]+) = new SELF\.([^ ]+)\(\);$`,
			Head{Name: "${1}", Line: "${1}: new SELF.${2}()"}),

		// this.keyboard = this.kb;
		rule(ShapeReference, `SELF\.([^ ]+) = SELF\.([^ ]+);$`,
			Head{Name: "${1}", Line: "${1}: SELF.${2}"}),

		// this.getFPS ??= () => this.p5play._fps;
		rule(ShapeLazyGetter, `SELF\.([^ ]+) \?\?= \(\) => SELF\.([^ ]+);$`,
			Head{Name: "${1}", Line: "${1}: () => SELF.${2}"}),
	}
}

// MatchRule returns the first rule whose pattern matches line
func MatchRule(rules []Rule, line string) (Rule, bool) {
	for _, r := range rules {
		if r.Pattern.MatchString(line) {
			return r, true
		}
	}
	return Rule{}, false
}
