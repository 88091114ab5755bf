/*
  mtl_test.go
  Description: unit tests for template parsing and rendering
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:48:20 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import (
	"log"
	"strings"
	"testing"
	"time"
)

// fakeProvider answers a fixed set of fields from an in-memory map, for
// tests that don't need a real file on disk. A subfielded lookup such as
// {audio:artist} is answered by the composite key "audio:artist".
type fakeProvider map[string]MetaValue

func (p fakeProvider) Names() []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(p))
	for key := range p {
		name, _, _ := strings.Cut(key, ":")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func (p fakeProvider) Lookup(name, subfield string, _ FileContext) (MetaValue, error) {
	key := name
	if subfield != "" {
		key = name + ":" + subfield
	}
	v, ok := p[key]
	if !ok {
		return Null(), nil
	}
	return v, nil
}

// assertRender parses source, renders it against reg, and fails the test if
// the result doesn't exactly match expected.
func assertRender(t *testing.T, source string, reg *Registry, expected []string) {
	t.Helper()

	tpl, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q) returned an error: %v", source, err)
	}

	got, err := Render(tpl, reg, FileContext{Path: "/tmp/example"})
	if err != nil {
		t.Fatalf("Render(%q) returned an error: %v", source, err)
	}

	if len(got) != len(expected) {
		t.Fatalf("Render(%q) = %v, wanted %v", source, got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Render(%q) = %v, wanted %v", source, got, expected)
		}
	}
}

func TestLiteralPassthrough(t *testing.T) {
	reg := NewRegistry()
	assertRender(t, "hello world", reg, []string{"hello world"})
}

func TestSimpleFieldSubstitution(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"title": List("Moonlight Sonata")}, Soft)
	assertRender(t, "{title}.mp3", reg, []string{"Moonlight Sonata.mp3"})
}

func TestUnknownFieldRaisesError(t *testing.T) {
	reg := NewRegistry()
	tpl, err := Parse("{nosuchfield}")
	if err != nil {
		t.Fatalf("Parse returned an error: %v", err)
	}
	if _, err := Render(tpl, reg, FileContext{Path: "x"}); err == nil {
		t.Fatalf("expected an unknown-field error, got nil")
	}
}

func TestCartesianExpansion(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{
		"artist": List("Alice", "Bob"),
		"track":  List("Intro"),
	}, Soft)
	assertRender(t, "{artist} - {track}", reg, []string{
		"Alice - Intro",
		"Bob - Intro",
	})
}

func TestInPlaceExpansionCollapsesToOneBranch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"keywords": List("jazz", "live", "1964")}, Soft)
	assertRender(t, "{,+keywords}", reg, []string{"jazz,live,1964"})
}

func TestFiltersUpperAndJoin(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"tags": List("beach", "sunset")}, Soft)
	assertRender(t, "{tags|upper|join(; )}", reg, []string{"BEACH; SUNSET"})
}

func TestSplitFilter(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"keywords": List("jazz;live;1964")}, Soft)
	assertRender(t, "{keywords|split(;)}", reg, []string{"jazz", "live", "1964"})
}

func TestFindReplace(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"title": List("Track One")}, Soft)
	assertRender(t, "{title[ ,_]}", reg, []string{"Track_One"})
}

// TestFindReplaceMultiplePairs exercises "|"-separated pairs within one
// find/replace block, each split on its own first ",".
func TestFindReplaceMultiplePairs(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"title": List("a-b c")}, Soft)
	assertRender(t, "{title[-,_|c,d]}", reg, []string{"a_b d"})
}

func TestConditionalWithBoolAndDefaultBranch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"genre": List("jazz")}, Soft)
	assertRender(t, "{genre contains jazz?smooth,unknown}", reg, []string{"smooth"})

	reg2 := NewRegistry()
	reg2.Register(fakeProvider{"genre": List("rock")}, Soft)
	assertRender(t, "{genre contains jazz?smooth,unknown}", reg2, []string{"unknown"})
}

// Example J from the renderer's testable properties: a numeric conditional
// with no bool branch emits the field's own value, not a boolean.
func TestConditionalWithoutBoolBranchEmitsOwnValue(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"iso": List("50")}, Soft)
	assertRender(t, "{iso < 100}", reg, []string{"50"})
}

func TestEmptyFieldFallsBackToPlaceholder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"missing": Null()}, Soft)
	assertRender(t, "{missing}", reg, []string{"_"})
}

func TestEmptyFieldUsesDefaultBranch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"missing": Null()}, Soft)
	assertRender(t, "{missing,N/A}", reg, []string{"N/A"})
}

func TestUserVariableBinding(t *testing.T) {
	reg := NewRegistry()
	assertRender(t, "{var:sep,-}{%sep}{%sep}", reg, []string{"--"})
}

func TestPunctuationAsEscapedPercent(t *testing.T) {
	reg := NewRegistry()
	assertRender(t, "100%% done", reg, []string{"100% done"})
}

func TestDatetimeAttributePath(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"created": DateTime(time.Date(2020, time.March, 4, 0, 0, 0, 0, time.UTC))}, Soft)
	assertRender(t, "{created.year}", reg, []string{"2020"})
}

// TestStrftimePathLeaf exercises worked example I: strftime is a ".strftime"
// path leaf that consumes the field's own default branch as its format
// template, not a pipe filter.
func TestStrftimePathLeaf(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"created": DateTime(time.Date(2020, 2, 4, 19, 7, 38, 0, time.UTC))}, Soft)
	assertRender(t, "{created.strftime,%Y-%m-%d-%H%M%S}", reg, []string{"2020-02-04-190738"})
}

func TestStrftimeWithNoDefaultYieldsPlaceholder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"created": DateTime(time.Date(2020, time.March, 4, 0, 0, 0, 0, time.UTC))}, Soft)
	assertRender(t, "{created.strftime}", reg, []string{"_"})
}

func TestDatetimeAttributeTable(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"created": DateTime(time.Date(2020, time.March, 4, 9, 5, 7, 0, time.UTC))}, Soft)

	assertRender(t, "{created.date}", reg, []string{"2020-03-04"})
	assertRender(t, "{created.yy}", reg, []string{"20"})
	assertRender(t, "{created.month}", reg, []string{"March"})
	assertRender(t, "{created.mon}", reg, []string{"Mar"})
	assertRender(t, "{created.mm}", reg, []string{"03"})
	assertRender(t, "{created.dd}", reg, []string{"04"})
	assertRender(t, "{created.dow}", reg, []string{"Wednesday"})
	assertRender(t, "{created.doy}", reg, []string{"064"})
	assertRender(t, "{created.hour}", reg, []string{"09"})
	assertRender(t, "{created.min}", reg, []string{"05"})
	assertRender(t, "{created.sec}", reg, []string{"07"})
}

func TestFilepathAttributePath(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"filepath": List("/music/Piano/sonata.flac")}, Soft)

	assertRender(t, "{filepath.name}", reg, []string{"sonata.flac"})
	assertRender(t, "{filepath.stem}", reg, []string{"sonata"})
	assertRender(t, "{filepath.suffix}", reg, []string{"flac"})
	assertRender(t, "{filepath.parent.name}", reg, []string{"Piano"})
}

// TestSubfieldLookup exercises worked example A: a "name:subfield" field
// reaches the provider with both halves, not swallowed by a parse error.
func TestSubfieldLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{
		"audio:artist": List("The Piano Guys"),
		"audio:album":  List("Wonders"),
	}, Soft)
	assertRender(t, "{audio:artist}/{audio:album}", reg, []string{"The Piano Guys/Wonders"})
}

// TestSubfieldInPlaceExpansion exercises worked example C.
func TestSubfieldInPlaceExpansion(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"exiftool:Keywords": List("foo", "bar")}, Soft)
	assertRender(t, "{,+exiftool:Keywords}", reg, []string{"foo,bar"})
}

// TestSubfieldCartesianExpansion exercises worked example D.
func TestSubfieldCartesianExpansion(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"exiftool:Keywords": List("foo", "bar")}, Soft)
	assertRender(t, "{exiftool:Keywords}", reg, []string{"foo", "bar"})
}

// TestSubfieldWithFiltersParens exercises worked example E.
func TestSubfieldWithFiltersParens(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"exiftool:Keywords": List("FOO", "bar")}, Soft)
	assertRender(t, "{exiftool:Keywords|lower|parens}", reg, []string{"(foo)", "(bar)"})
}

// TestBoolBranchOnEmptyField exercises worked example F.
func TestBoolBranchOnEmptyField(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"audio:title": List("Song")}, Soft)
	assertRender(t, "{audio:title?yes,no}", reg, []string{"yes"})

	reg2 := NewRegistry()
	reg2.Register(fakeProvider{"audio:title": Null()}, Soft)
	assertRender(t, "{audio:title?yes,no}", reg2, []string{"no"})
}

// TestFindReplaceWithVariableReplacement exercises worked example G: a
// var-bound punctuation field supplies the replacement text.
func TestFindReplaceWithVariableReplacement(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"pipe": List("|"), "audio:title": List("a-b")}, Soft)
	assertRender(t, "{var:pipe,{pipe}}{audio:title[-,%pipe]}", reg, []string{"a|b"})
}

// TestConditionalAfterFilterWithSubfield exercises worked example H.
func TestConditionalAfterFilterWithSubfield(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"exiftool:Keywords": List("BeachDay", "sun")}, Soft)
	assertRender(t, "{exiftool:Keywords|lower contains beach?B,N}", reg, []string{"B"})
}

// TestFormatMetaField exercises worked example B: format:TYPE:FORMAT is a
// core-owned field whose content is a nested template, not a filter.
func TestFormatMetaField(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{
		"audio:track": List("1"),
		"audio:title": List("Story of My Life"),
	}, Soft)
	assertRender(t, "{format:int:02d,{audio:track}} - {audio:title}.mp3", reg,
		[]string{"01 - Story of My Life.mp3"})
}

func TestStripMetaField(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"title": List("  Track One  ")}, Soft)
	assertRender(t, "{strip,{title}}", reg, []string{"Track One"})
}

func TestMatchesIsFullStringEquality(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{"genre": List("jazz")}, Soft)
	assertRender(t, "{genre matches jazz?yes,no}", reg, []string{"yes"})
	assertRender(t, "{genre matches ja?yes,no}", reg, []string{"no"})
}

// TestConditionalAgainstMultiValuedRHS exercises spec.md §4.6 step 1: the
// conditional is satisfied if ANY (lhs, rhs) pair matches, across the whole
// rendered RHS list, not just its first candidate.
func TestConditionalAgainstMultiValuedRHS(t *testing.T) {
	reg := NewRegistry()
	reg.Register(fakeProvider{
		"genre": List("rock"),
		"tags":  List("jazz", "rock"),
	}, Soft)
	assertRender(t, "{genre matches {,+tags}?no-direct-match,expected}", reg, []string{"expected"})

	reg2 := NewRegistry()
	reg2.Register(fakeProvider{
		"genre": List("rock"),
		"tags":  List("jazz", "rock"),
	}, Soft)
	assertRender(t, "{genre matches {tags}?found,missing}", reg2, []string{"found"})
}

// assertCompare is a small table-driven helper in the style of
// pfparser_test.go's assert: log the case, then fail fatally on mismatch.
func assertCompare(t *testing.T, a, b string, expected int) {
	t.Helper()
	log.Println(a, b, expected)
	if got := compareValues(a, b); got != expected {
		t.Fatalf("compareValues(%q, %q) = %d, wanted %d", a, b, got, expected)
	}
}

func TestCompareValuesNumericCoercion(t *testing.T) {
	cases := map[[2]string]int{
		{"2", "10"}:     -1,
		{"10", "2"}:     1,
		{"5", "5"}:      0,
		{"b", "a"}:      1,
		{"abc", "abd"}:  -1,
	}
	for pair, expected := range cases {
		assertCompare(t, pair[0], pair[1], expected)
	}
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
