package convert

import "regexp"

// Whole-line "//" comments, terminator included. Block and doc comments stay.
var lineCommentPattern = regexp.MustCompile(`(?m)^[ \t]*//.*$(?:\r\n|\r|\n)?`)

// StripLineComments removes every line that holds nothing but a // comment.
// Code followed by a trailing comment is left untouched.
func StripLineComments(source string) string {
	return lineCommentPattern.ReplaceAllString(source, "")
}
