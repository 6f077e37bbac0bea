package notation

import "fmt"

// Format names one of the three linear notations.
type Format int

const (
	Infix Format = iota
	Prefix
	Postfix
)

var formatNames = [...]string{
	Infix:   "infix",
	Prefix:  "prefix",
	Postfix: "postfix",
}

// Formats returns every admissible format in declaration order.
func Formats() []Format {
	return []Format{Infix, Prefix, Postfix}
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func (f Format) valid() bool {
	return f >= Infix && f <= Postfix
}

// ParseFormat maps "infix", "prefix" or "postfix" to its Format.
// Matching is case-sensitive.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if name == s {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
