/*
  findreplace.go
  Description: the find/replace block attached to a field
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:21:40 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import "strings"

// applyReplacements runs every [find,replace] pair of a field over v's
// rendered strings in order, mirroring metatemplate.go's single substitution
// loop but repeated per pair and per list element. Replace is itself a
// template, rendered once per pair against env so that a replacement value
// may itself reference %variables.
func applyReplacements(v MetaValue, reps []Replacement, env *Variables) (MetaValue, error) {
	if len(reps) == 0 {
		return v, nil
	}
	items := v.Strings()
	out := make([]string, len(items))
	copy(out, items)

	for _, rep := range reps {
		replacement := rep.Find
		if rep.Replace != nil {
			rendered, err := rep.Replace.render(env)
			if err != nil {
				return v, err
			}
			if len(rendered) > 0 {
				replacement = rendered[0]
			} else {
				replacement = ""
			}
		}
		for i, s := range out {
			out[i] = strings.ReplaceAll(s, rep.Find, replacement)
		}
	}

	return List(out...), nil
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
