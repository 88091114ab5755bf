//go:build !windows

/*
  stat_unix.go
  Description: uid/gid/created/accessed attribute extraction on unix
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:35:40 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package providers

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"

	"github.com/clinaresl/mtl/mtl"
)

// lookupPlatformAttr extracts the attributes that require digging into the
// platform-specific half of os.FileInfo.Sys(). Linux has no birth-time
// field in struct stat, so "created" falls back to the change time (Ctim),
// the closest approximation the syscall actually exposes.
func lookupPlatformAttr(path string, info os.FileInfo, name string) (mtl.MetaValue, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return mtl.Null(), fmt.Errorf("providers: unsupported stat_t for %q", path)
	}

	switch name {
	case "created":
		return mtl.DateTime(time.Unix(st.Ctim.Sec, st.Ctim.Nsec)), nil
	case "accessed":
		return mtl.DateTime(time.Unix(st.Atim.Sec, st.Atim.Nsec)), nil
	case "uid":
		return mtl.List(strconv.Itoa(int(st.Uid))), nil
	case "gid":
		return mtl.List(strconv.Itoa(int(st.Gid))), nil
	case "user":
		u, err := user.LookupId(strconv.Itoa(int(st.Uid)))
		if err != nil {
			return mtl.List(strconv.Itoa(int(st.Uid))), nil
		}
		return mtl.List(u.Username), nil
	case "group":
		g, err := user.LookupGroupId(strconv.Itoa(int(st.Gid)))
		if err != nil {
			return mtl.List(strconv.Itoa(int(st.Gid))), nil
		}
		return mtl.List(g.Name), nil
	}

	return mtl.Null(), fmt.Errorf("providers: unsupported field %q", name)
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
