package parse

import "strings"

// byteIn reports whether v, an int-valued byte as returned by an iterator's
// Value (which may also be byteinput.EOF), equals one of the bytes in set.
func byteIn(v int, set string) bool {
	if v < 0 || v > 255 {
		return false
	}
	return strings.IndexByte(set, byte(v)) >= 0
}
