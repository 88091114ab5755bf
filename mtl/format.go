/*
  format.go
  Description: strftime emulation and format:TYPE:FORMAT coercion
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:16:40 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// strftimeDirectives maps the subset of strftime conversion specifiers MTL
// recognizes to Go's reference-time layout fragments. time.Format takes a
// reference layout rather than printf-style directives, so templates
// written against strftime need translating before they reach it.
var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'A': "Monday",
	'a': "Mon",
	'B': "January",
	'b': "Jan",
	'Z': "MST",
	'z': "-0700",
	'j': "002",
}

// strftime renders t according to a strftime-style format string such as
// "%Y-%m-%d". Unrecognized directives pass through verbatim (with their '%'
// stripped) so a malformed format never aborts the render, consistent with
// the rest of the filter pipeline's fail-soft Null-on-error behavior.
func strftime(t time.Time, format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			next := format[i+1]
			if next == '%' {
				b.WriteByte('%')
				i++
				continue
			}
			if layout, ok := strftimeDirectives[next]; ok {
				b.WriteString(t.Format(layout))
				i++
				continue
			}
			b.WriteByte(next)
			i++
			continue
		}
		b.WriteByte(format[i])
	}
	return b.String()
}

// formatSpecRE matches the TYPE:FORMAT clause of a {format:TYPE:FORMAT,...}
// field, e.g. "int:02d" or "float:.2f".
var formatSpecRE = regexp.MustCompile(`^(int|float):(.*)$`)

// applyFormatSpec coerces s to a Python-printf-like numeric rendering, e.g.
// "int:02d" zero-pads an integer to width 2, "float:.2f" renders with two
// decimal places. On any parse failure it returns s unchanged, raising a
// KindFormat error is the caller's responsibility if it wants to surface one.
func applyFormatSpec(s, spec string) (string, error) {
	m := formatSpecRE.FindStringSubmatch(spec)
	if m == nil {
		return s, fmt.Errorf("malformed format spec %q", spec)
	}
	kind, rest := m[1], m[2]

	switch kind {
	case "int":
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return s, fmt.Errorf("cannot format %q as int: %w", s, err)
		}
		width, zeroPad := parseIntWidth(rest)
		out := strconv.FormatInt(n, 10)
		if width > 0 {
			neg := n < 0
			digits := out
			if neg {
				digits = out[1:]
			}
			pad := width - len(digits)
			if neg {
				pad--
			}
			if pad > 0 {
				fill := " "
				if zeroPad {
					fill = "0"
				}
				digits = strings.Repeat(fill, pad) + digits
			}
			if neg {
				out = "-" + digits
			} else {
				out = digits
			}
		}
		return out, nil

	case "float":
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return s, fmt.Errorf("cannot format %q as float: %w", s, err)
		}
		prec := 6
		if dot := strings.IndexByte(rest, '.'); dot >= 0 {
			digits := strings.TrimRight(rest[dot+1:], "f")
			if p, err := strconv.Atoi(digits); err == nil {
				prec = p
			}
		}
		return strconv.FormatFloat(f, 'f', prec, 64), nil
	}

	return s, fmt.Errorf("unsupported format type %q", kind)
}

// parseIntWidth parses a printf-like width spec such as "02" or "4",
// reporting whether it is zero-padded.
func parseIntWidth(rest string) (width int, zeroPad bool) {
	rest = strings.TrimRight(rest, "d")
	if rest == "" {
		return 0, false
	}
	zeroPad = strings.HasPrefix(rest, "0")
	w, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return w, zeroPad
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
