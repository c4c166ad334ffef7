package scanner

// mask returns a copy of src with comments replaced by spaces. When
// blankStrings is set, the contents of string and template literals are
// blanked too while their quotes are kept. Newlines survive so line
// anchors still work, and the result has the same length as src.
//
// JSX text is not JavaScript, so apostrophes in it must not swallow the
// rest of the file: a quote right after an identifier character never
// opens a string, and quoted strings end at a newline.
func mask(src []byte, blankStrings bool) []byte {
	const (
		stateCode = iota
		stateLineComment
		stateBlockComment
		stateString
		stateTemplate
	)

	out := make([]byte, len(src))
	copy(out, src)

	blank := func(i int) {
		if out[i] != '\n' {
			out[i] = ' '
		}
	}
	blankLiteral := func(i int) {
		if blankStrings {
			blank(i)
		}
	}

	state := stateCode
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		next := byte(0)
		if i+1 < len(src) {
			next = src[i+1]
		}

		switch state {
		case stateCode:
			switch {
			case c == '/' && next == '/':
				state = stateLineComment
				blank(i)
			case c == '/' && next == '*':
				state = stateBlockComment
				blank(i)
				blank(i + 1)
				i++
			case (c == '\'' || c == '"') && !(i > 0 && isIdentByte(src[i-1])):
				state = stateString
				quote = c
			case c == '`':
				state = stateTemplate
			}
		case stateLineComment:
			if c == '\n' {
				state = stateCode
				continue
			}
			blank(i)
		case stateBlockComment:
			if c == '*' && next == '/' {
				blank(i)
				blank(i + 1)
				i++
				state = stateCode
				continue
			}
			blank(i)
		case stateString:
			switch {
			case c == '\\' && next != 0:
				blankLiteral(i)
				blankLiteral(i + 1)
				i++
			case c == quote:
				state = stateCode
			case c == '\n':
				state = stateCode
			default:
				blankLiteral(i)
			}
		case stateTemplate:
			switch {
			case c == '\\' && next != 0:
				blankLiteral(i)
				blankLiteral(i + 1)
				i++
			case c == '`':
				state = stateCode
			default:
				blankLiteral(i)
			}
		}
	}
	return out
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
