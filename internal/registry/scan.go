package registry

import "strings"

// span is a half-open byte range [start, end) of the source.
type span struct {
	start, end int
}

// regexPrefixes are the code bytes after which a '/' starts a regex literal
// rather than a division.
const regexPrefixes = "(,=:[!&|?{};+-*%<>~^"

// walkCode calls fn for every byte offset from 'from' onward that is plain
// code, skipping comments and string, template and regex literals. prev is
// the last significant code byte before 'from' (0 for none). Walking stops
// when fn returns false.
func walkCode(src string, from int, prev byte, fn func(i int) bool) {
	for i := from; i < len(src); {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			j := strings.IndexByte(src[i:], '\n')
			if j < 0 {
				return
			}
			i += j
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			j := strings.Index(src[i+2:], "*/")
			if j < 0 {
				return
			}
			i += j + 4
			continue
		case c == '\'' || c == '"' || c == '`':
			i = skipQuoted(src, i)
			prev = c
			continue
		case c == '/' && (prev == 0 || strings.IndexByte(regexPrefixes, prev) >= 0):
			i = skipRegex(src, i)
			prev = '/'
			continue
		}

		if !fn(i) {
			return
		}
		if !isSpace(c) {
			prev = c
		}
		i++
	}
}

// skipQuoted returns the offset just past the literal opening at i.
// Template substitutions are not parsed; a backtick inside ${...} ends
// the literal early.
func skipQuoted(src string, i int) int {
	q := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case q:
			return j + 1
		case '\n':
			if q != '`' {
				return j + 1
			}
		}
	}
	return len(src)
}

// skipRegex returns the offset just past the regex literal opening at i,
// including its flags. A newline before the closing slash means it was
// not a regex and scanning resumes at the newline.
func skipRegex(src string, i int) int {
	inClass := false
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '\n':
			return j
		case '/':
			if inClass {
				continue
			}
			j++
			for j < len(src) && isIdentByte(src[j]) {
				j++
			}
			return j
		}
	}
	return len(src)
}

// findInCode returns the offset of the first occurrence of needle that
// starts in plain code, or -1.
func findInCode(src, needle string) int {
	found := -1
	walkCode(src, 0, 0, func(i int) bool {
		if strings.HasPrefix(src[i:], needle) {
			found = i
			return false
		}
		return true
	})
	return found
}

// arrayElements scans the array body starting at 'from' (just past '[')
// and returns the spans of its top-level object literals.
func arrayElements(src string, from int) []span {
	var (
		elems []span
		depth int
		open  int
	)
	walkCode(src, from, '[', func(i int) bool {
		switch src[i] {
		case '{':
			if depth == 0 {
				open = i
			}
			depth++
		case '[', '(':
			depth++
		case '}':
			depth--
			if depth == 0 {
				elems = append(elems, span{open, i + 1})
			}
		case ')':
			depth--
		case ']':
			if depth == 0 {
				return false
			}
			depth--
		}
		return true
	})
	return elems
}

// objectID returns the string value of the id property declared directly
// on the object literal el. Keys may be bare (id), single quoted or double
// quoted. Properties of nested objects and text inside strings or comments
// are ignored.
func objectID(src string, el span) (string, bool) {
	var (
		id    string
		found bool
		depth = 1
		// Property start and the code bytes of its key at depth 1.
		prop    = el.start + 1
		keyFrom = -1
		keyTo   = -1
	)
	walkCode(src, el.start+1, '{', func(i int) bool {
		c := src[i]
		switch {
		case c == '{' || c == '[' || c == '(':
			depth++
		case c == '}' || c == ']' || c == ')':
			depth--
			return depth > 0
		case depth != 1:
		case c == ',':
			prop, keyFrom, keyTo = i+1, -1, -1
		case c == ':':
			if isIDKey(src, prop, keyFrom, keyTo, i) {
				id, found = stringValue(src, i+1, el.end)
				return !found
			}
		case !isSpace(c):
			if keyFrom < 0 {
				keyFrom = i
			}
			keyTo = i + 1
		}
		return true
	})
	return id, found
}

// isIDKey reports whether the property text from prop up to the ':' at
// colon is an id key. keyFrom and keyTo bound its code bytes, or are -1
// when the key is a string literal.
func isIDKey(src string, prop, keyFrom, keyTo, colon int) bool {
	if keyFrom >= 0 {
		return src[keyFrom:keyTo] == "id"
	}
	head := strings.TrimRight(src[prop:colon], " \t\r\n")
	return strings.HasSuffix(head, `"id"`) || strings.HasSuffix(head, `'id'`)
}

// stringValue reads the quoted string literal starting after optional
// whitespace at i. The raw text between the quotes is returned.
func stringValue(src string, i, end int) (string, bool) {
	for i < end && isSpace(src[i]) {
		i++
	}
	if i >= end || (src[i] != '"' && src[i] != '\'') {
		return "", false
	}
	stop := skipQuoted(src, i)
	if stop > end || src[stop-1] != src[i] {
		return "", false
	}
	return src[i+1 : stop-1], true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
