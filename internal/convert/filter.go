package convert

import (
	"regexp"
	"strings"
)

// Filter keeps the blocks that make up the public surface
type Filter struct {
	reserved []string
	public   *regexp.Regexp
}

// NewFilter builds a filter for the given self token and reserved prefixes
func NewFilter(opts Options) *Filter {
	return &Filter{
		reserved: opts.ReservedPrefixes,
		// a leading underscore marks a private member
		public: regexp.MustCompile(`^` + regexp.QuoteMeta(opts.Self) + `\.[^_]`),
	}
}

// Keep reports whether b declares a public member
func (f *Filter) Keep(b Block) bool {
	line, ok := b.DeclarationLine()
	if !ok {
		return false
	}

	for _, prefix := range f.reserved {
		if prefix != "" && strings.HasPrefix(line, prefix) {
			return false
		}
	}

	return f.public.MatchString(line)
}
