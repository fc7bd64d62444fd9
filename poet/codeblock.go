package poet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CodeBlock is an immutable fragment of formatted source text. Blocks are
// built from templates with placeholder verbs:
//
//	%L  literal value, rendered with fmt.Sprint
//	%N  identifier name
//	%T  type reference (TypeName)
//	%S  string literal, quoted and escaped
//	%%  literal percent sign
//
// Unrecognized sequences pass through verbatim. A zero CodeBlock is the
// empty fragment.
type CodeBlock struct {
	text string
}

// EmptyBlock returns the empty fragment.
func EmptyBlock() CodeBlock {
	return CodeBlock{}
}

// BlockOf creates a fragment from a template and arguments.
func BlockOf(format string, args ...interface{}) CodeBlock {
	return CodeBlock{text: formatBlock(format, args)}
}

// IsEmpty reports whether the fragment holds no text.
func (b CodeBlock) IsEmpty() bool {
	return b.text == ""
}

// IsNotEmpty reports whether the fragment holds any text.
func (b CodeBlock) IsNotEmpty() bool {
	return b.text != ""
}

// Append returns a new fragment with formatted text appended.
func (b CodeBlock) Append(format string, args ...interface{}) CodeBlock {
	return CodeBlock{text: b.text + formatBlock(format, args)}
}

// AppendBlock returns a new fragment with another fragment appended.
func (b CodeBlock) AppendBlock(other CodeBlock) CodeBlock {
	return CodeBlock{text: b.text + other.text}
}

// RemoveMatching returns a new fragment with every match of the pattern
// stripped from the text.
func (b CodeBlock) RemoveMatching(re *regexp.Regexp) CodeBlock {
	return CodeBlock{text: re.ReplaceAllString(b.text, "")}
}

// ReplaceMatching returns a new fragment with every match of the pattern
// replaced. $1-style references in the replacement expand to the
// pattern's capture groups, so a match can give back boundary text it had
// to consume.
func (b CodeBlock) ReplaceMatching(re *regexp.Regexp, replacement string) CodeBlock {
	return CodeBlock{text: re.ReplaceAllString(b.text, replacement)}
}

// String is the raw-text projection of the fragment, used for pattern
// testing and final emission.
func (b CodeBlock) String() string {
	return b.text
}

// JoinBlocks joins fragments with a separator, prepending prefix when the
// result is non-empty. Empty fragments are skipped.
func JoinBlocks(blocks []CodeBlock, separator, prefix string) CodeBlock {
	var parts []string
	for _, b := range blocks {
		if b.IsNotEmpty() {
			parts = append(parts, b.text)
		}
	}
	if len(parts) == 0 {
		return CodeBlock{}
	}
	return CodeBlock{text: prefix + strings.Join(parts, separator)}
}

func formatBlock(format string, args []interface{}) string {
	var sb strings.Builder
	argi := 0
	next := func() interface{} {
		if argi < len(args) {
			v := args[argi]
			argi++
			return v
		}
		return ""
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch format[i] {
		case '%':
			sb.WriteByte('%')
		case 'L', 'N':
			sb.WriteString(fmt.Sprint(next()))
		case 'S':
			sb.WriteString(strconv.Quote(fmt.Sprint(next())))
		case 'T':
			v := next()
			if t, ok := v.(TypeName); ok {
				sb.WriteString(t.String())
			} else {
				sb.WriteString(fmt.Sprint(v))
			}
		default:
			sb.WriteByte('%')
			sb.WriteByte(format[i])
		}
	}
	return sb.String()
}
