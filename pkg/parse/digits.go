package parse

import (
	"math"

	"github.com/programmerjake/quick-shell/pkg/linecont"
)

// digitValue decodes v as a digit in base, returning ok = false if v isn't
// a digit at all or is out of range for base.
func digitValue(v, base int) (int, bool) {
	var d int
	switch {
	case v >= '0' && v <= '9':
		d = v - '0'
	case v >= 'a' && v <= 'z':
		d = v - 'a' + 10
	case v >= 'A' && v <= 'Z':
		d = v - 'A' + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

// parseDigit consumes a single base-n digit from it, advancing it on
// success.
func parseDigit(it *linecont.Iterator, base int) (int, error) {
	loc := it.Location()
	d, ok := digitValue(it.Value(), base)
	if !ok {
		return 0, errorf(loc, "expected base-%d digit", base)
	}
	*it = it.Next()
	return d, nil
}

// parseSimpleNumber consumes between minDigits and maxDigits base-n digits
// (maxDigits <= 0 means unbounded), accumulating their value. It fails with
// "number too big" at the number's start location on overflow, per spec.md
// §8 invariant 5's digit-parser correctness law: on success the result is
// exactly Σ dᵢ·baseⁿ⁻ⁱ.
func parseSimpleNumber(it *linecont.Iterator, base, minDigits, maxDigits int) (uint64, int, error) {
	start := it.Location()
	cursor := *it
	var value uint64
	count := 0
	for maxDigits <= 0 || count < maxDigits {
		d, ok := digitValue(cursor.Value(), base)
		if !ok {
			break
		}
		if value > (math.MaxUint64-uint64(d))/uint64(base) {
			return 0, count, errorf(start, "number too big")
		}
		value = value*uint64(base) + uint64(d)
		cursor = cursor.Next()
		count++
	}
	if count < minDigits {
		return 0, count, errorf(start, "expected at least %d base-%d digit(s)", minDigits, base)
	}
	*it = cursor
	return value, count, nil
}
