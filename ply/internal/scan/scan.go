package scan

import "bytes"

// Header lines are delimited by ASCII space and tab only.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func trim(b []byte) []byte {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

// Line splits the next '\n'-delimited line off text. The returned line has
// leading and trailing whitespace trimmed; rest starts one byte past the
// terminator. When no terminator remains, the entire input is treated as
// the final line and rest is empty.
//
// A line that is blank after trimming reports ok=false: every expected
// header line has content, so callers treat it as a parse failure.
//
// Both return values are sub-slices of text; nothing is copied.
func Line(text []byte) (line, rest []byte, ok bool) {
	eol := bytes.IndexByte(text, '\n')
	if eol < 0 {
		line, rest = text, text[len(text):]
	} else {
		line, rest = text[:eol], text[eol+1:]
	}
	line = trim(line)
	if len(line) == 0 {
		return nil, rest, false
	}
	return line, rest, true
}

// Token splits the first whitespace-delimited token off line and advances
// rest past any following whitespace, so it is again positioned at a token
// boundary (or empty). It reports ok=false when the input does not start
// exactly at a token boundary, which guards against caller misuse.
func Token(line []byte) (tok, rest []byte, ok bool) {
	if len(line) == 0 || isSpace(line[0]) {
		return nil, line, false
	}
	end := bytes.IndexAny(line, " \t")
	if end < 0 {
		return line, line[len(line):], true
	}
	tok = line[:end]
	i := end
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	return tok, line[i:], true
}
