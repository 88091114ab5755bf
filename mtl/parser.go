/*
  parser.go
  Description: the recursive-descent parser for MTL template sources
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:28:47 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import "strings"

// Parse compiles an MTL template source into a Template ready to be
// rendered repeatedly by Render. It mirrors pfparser.go's mutually
// recursive descent over a propositional formula, generalized to MTL's
// richer field grammar: names, dotted paths, filter pipelines, find/replace
// blocks, conditionals, and bool/default branches, any of which may in turn
// embed another template.
func Parse(source string) (*Template, error) {
	s := newScanner(source)
	tpl := &Template{Source: source}

	for !s.eof() {
		if s.peek() == '{' {
			f, err := parseField(s)
			if err != nil {
				return nil, err
			}
			tpl.Segments = append(tpl.Segments, Segment{Field: f})
			continue
		}
		if lit := parseLiteral(s); lit != nil {
			tpl.Segments = append(tpl.Segments, Segment{Literal: lit})
		}
	}

	return tpl, nil
}

// parseLiteral consumes a run of plain text up to the next '{' or EOF,
// recognizing "%%" as an escaped '%' and "%name" as a variable reference. It
// returns nil if no atom was produced (an empty literal run).
func parseLiteral(s *scanner) *Literal {
	offset := s.pos
	lit := &Literal{Offset: offset}

	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			lit.atoms = append(lit.atoms, literalAtom{kind: atomText, text: buf.String()})
			buf.Reset()
		}
	}

	for !s.eof() && s.peek() != '{' {
		if s.peek() == '%' {
			if s.peekAt(1) == '%' {
				buf.WriteByte('%')
				s.advance()
				s.advance()
				continue
			}
			if name, ok := tryScanVarName(s, 1); ok {
				flush()
				s.advance()
				scanIdentifier(s)
				lit.atoms = append(lit.atoms, literalAtom{kind: atomVar, text: name})
				continue
			}
		}
		buf.WriteRune(s.advance())
	}
	flush()

	if len(lit.atoms) == 0 {
		return nil
	}
	return lit
}

// parseField parses one {...} field, starting at the opening brace.
func parseField(s *scanner) (*Field, error) {
	startOffset := s.pos
	s.advance() // consume '{'

	f := &Field{Offset: startOffset}

	// optional "DELIM+" in-place prefix. The bail set deliberately omits
	// ',' so that "{,+name}" is read as delim="," rather than stopping the
	// prefix scan at the comma.
	save := s.pos
	prefix := scanUntil(s, "+:.|[ ?}")
	if s.peek() == '+' {
		d := prefix
		f.Delim = &d
		f.InPlace = true
		s.advance()
	} else {
		s.pos = save
	}

	if s.peek() == '%' {
		s.advance()
		if !isIdentStart(s.peek()) {
			return nil, parseErrorf(s.pos, "expected a variable name after '%%'")
		}
		f.Name = "%" + scanIdentifier(s)
	} else {
		name := scanUntil(s, ".:|[ ?,}")
		if name == "" {
			return nil, parseErrorf(s.pos, "empty field name")
		}
		f.Name = name
	}

	if f.Name == "var" {
		return parseVarField(s, f)
	}

	// Optional ":subfield", e.g. {audio:artist} or {format:int:02d,...}.
	// Only one subfield is recognized; a second ':' belongs to the
	// subfield's own text (spec.md §4.1 step 3).
	if s.peek() == ':' {
		s.advance()
		terms := ".|[ ?,}"
		if f.Name == "format" {
			// a FORMAT such as ".2f" carries its own '.'
			terms = "|[ ?,}"
		}
		f.Subfield = scanUntil(s, terms)
	}

	for s.peek() == '.' {
		s.advance()
		f.Path = append(f.Path, scanUntil(s, ".|[ ?,}"))
	}

	if err := parseFiltersAndReplacements(s, f); err != nil {
		return nil, err
	}

	if err := parseCond(s, f); err != nil {
		return nil, err
	}

	if s.peek() == '?' {
		s.advance()
		boolSrc := scanBalancedUntil(s, ",}")
		tpl, err := Parse(boolSrc)
		if err != nil {
			return nil, err
		}
		f.BoolBranch = tpl
		f.HasBool = true
	}

	if s.peek() == ',' {
		s.advance()
		defSrc := scanBalancedUntil(s, "}")
		tpl, err := Parse(defSrc)
		if err != nil {
			return nil, err
		}
		f.DefaultBranch = tpl
		f.HasDefault = true
	}

	if s.peek() != '}' {
		return nil, parseErrorf(s.pos, "expected '}' to close field %q", f.Name)
	}
	s.advance()

	return f, nil
}

// parseVarField parses the remainder of a {var:NAME,VALUE} field, having
// already consumed "var" as the field name.
func parseVarField(s *scanner, f *Field) (*Field, error) {
	if s.peek() != ':' {
		return nil, parseErrorf(s.pos, "var field requires ':name,value'")
	}
	s.advance()

	f.VarName = scanUntil(s, ",}")
	if f.VarName == "" {
		return nil, parseErrorf(s.pos, "var field is missing a name")
	}

	if s.peek() == ',' {
		s.advance()
		valueSrc := scanBalancedUntil(s, "}")
		sub, err := Parse(valueSrc)
		if err != nil {
			return nil, err
		}
		f.VarValue = sub
	}

	if s.peek() != '}' {
		return nil, parseErrorf(s.pos, "expected '}' to close var field %q", f.VarName)
	}
	s.advance()

	return f, nil
}

// parseFiltersAndReplacements consumes the "|filter" and
// "[find,replace|find,replace]" clauses that may follow a field's name/path,
// in whatever order they appear.
func parseFiltersAndReplacements(s *scanner, f *Field) error {
	for {
		switch s.peek() {
		case '|':
			s.advance()
			name := scanUntil(s, "(:|[ ?,}")
			if name == "" {
				return parseErrorf(s.pos, "empty filter name")
			}
			fs := FilterSpec{Name: name}
			switch s.peek() {
			case '(':
				s.advance()
				arg, err := scanParenArg(s)
				if err != nil {
					return err
				}
				fs.Arg, fs.HasArg = arg, true
			case ':':
				s.advance()
				fs.Arg, fs.HasArg = scanUntil(s, "|[ ?,}"), true
			}
			f.Filters = append(f.Filters, fs)

		case '[':
			s.advance()
			for {
				find := scanUntil(s, ",]")
				if s.peek() != ',' {
					return parseErrorf(s.pos, "expected ',' to separate find from replace")
				}
				s.advance()
				replSrc := scanBalancedUntil(s, "|]")
				sub, err := Parse(replSrc)
				if err != nil {
					return err
				}
				f.Replacements = append(f.Replacements, Replacement{Find: find, Replace: sub})
				if s.peek() == '|' {
					s.advance()
					continue
				}
				break
			}
			if s.peek() != ']' {
				return parseErrorf(s.pos, "expected ']' to close replacement")
			}
			s.advance()

		default:
			return nil
		}
	}
}

// parseCond consumes an optional " [not] OP rhs" conditional clause. Since a
// trailing space with no recognized operator after it is not an error (it
// may simply be literal content belonging to a default branch one level
// up), an unrecognized operator rolls the scanner back rather than failing.
func parseCond(s *scanner, f *Field) error {
	if s.peek() != ' ' {
		return nil
	}
	save := s.pos
	s.advance()

	negated := matchLiteral(s, "not ")

	op, ok := scanOperator(s)
	if !ok {
		s.pos = save
		return nil
	}

	if s.peek() != ' ' {
		return parseErrorf(s.pos, "expected a space after the operator in field %q", f.Name)
	}
	s.advance()

	rhsSrc := scanBalancedUntil(s, "?,}")
	rhsTpl, err := Parse(rhsSrc)
	if err != nil {
		return err
	}

	f.Cond = &Cond{Negated: negated, Op: op, RHS: rhsTpl}
	return nil
}

var operatorKeywords = []struct {
	lit string
	op  Op
}{
	{"contains", OpContains},
	{"matches", OpMatches},
	{"startswith", OpStartsWith},
	{"endswith", OpEndsWith},
	{"<=", OpLE},
	{">=", OpGE},
	{"==", OpEQ},
	{"!=", OpNE},
	{"<", OpLT},
	{">", OpGT},
}

func scanOperator(s *scanner) (Op, bool) {
	for _, k := range operatorKeywords {
		if matchLiteral(s, k.lit) {
			return k.op, true
		}
	}
	return 0, false
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
