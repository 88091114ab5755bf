/*
  fstools.go
  Description: Simple tools for handling the filesystem paths
  -----------------------------------------------------------------------------

  Started on  <Thu Jun 19 13:36:57 2014 Carlos Linares Lopez>
  Last update <domingo, 10 mayo 2015 12:52:47 Carlos Linares Lopez (clinares)>
  -----------------------------------------------------------------------------

  $Id::                                                                      $
  $Date::                                                                    $
  $Revision::                                                                $
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

// fstools provides various simple services for handling paths and files. They
// are grouped in a different namespace since they are expected to be used often
// by other packages.
package fstools

import (
	"os"   // access to env variables
	"path" // path manipulation
)

// global variables
// ----------------------------------------------------------------------------

// it returns a cleaned version of the path given in dirin (see path.Clean). It
// replaces a leading '~' with $HOME; a relative path otherwise stays relative
func ProcessDirectory(dirin string) (dirout string) {

	// initially, make the dirout to be equal to the dirin
	dirout = dirin

	// first, in case the input directory starts with the symbol
	// '~'
	if len(dirin) > 0 && dirin[0] == '~' {

		// substitute '~' with the value of the $HOME variable
		dirout = path.Join(os.Getenv("HOME"), dirin[1:])
	}

	// finally, clean the given directory specification
	dirout = path.Clean(dirout)

	return dirout
}

// returns true if the given path is a directory which is accessible to the user
// and false otherwise (thus, it is much like os.IsDir but it works from strings
// directly). It also returns a pointer to the os.File and its info in case they
// exist
func IsDir(path string) (isdir bool, filedir *os.File, fileinfo os.FileInfo) {

	var err error

	// open and stat the given location
	if filedir, err = os.Open(path); err != nil {
		return false, nil, nil
	}
	if fileinfo, err = filedir.Stat(); err != nil {
		return false, filedir, nil
	}

	// return now whether this is a directory or not
	return fileinfo.IsDir(), filedir, fileinfo
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
