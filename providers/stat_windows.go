//go:build windows

/*
  stat_windows.go
  Description: uid/gid/created/accessed fallback on platforms without
               POSIX stat ownership fields
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:35:55 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package providers

import (
	"os"

	"github.com/clinaresl/mtl/mtl"
)

// lookupPlatformAttr degrades to Null on platforms with no POSIX ownership
// model: uid/gid/user/group have no Windows analogue, and created/accessed
// would need a separate syscall this module doesn't carry the dependency
// for.
func lookupPlatformAttr(_ string, _ os.FileInfo, _ string) (mtl.MetaValue, error) {
	return mtl.Null(), nil
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
