/*
  fstools_test.go
  Description: Unit tests for the filesystem path helpers
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:58:30 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package fstools

import (
	"os"
	"testing"
)

func TestProcessDirectoryExpandsHome(t *testing.T) {
	home := os.Getenv("HOME")
	got := ProcessDirectory("~/music")
	want := ProcessDirectory(home + "/music")
	if got != want {
		t.Fatalf("ProcessDirectory(\"~/music\") = %v, wanted %v", got, want)
	}
}

func TestProcessDirectoryCleansPath(t *testing.T) {
	got := ProcessDirectory("/a/b/../c//d")
	want := "/a/c/d"
	if got != want {
		t.Fatalf("ProcessDirectory(...) = %v, wanted %v", got, want)
	}
}

func TestProcessDirectoryEmptyString(t *testing.T) {
	got := ProcessDirectory("")
	if got != "." {
		t.Fatalf("ProcessDirectory(\"\") = %v, wanted \".\"", got)
	}
}

func TestIsDirOnRegularFile(t *testing.T) {
	f, err := os.CreateTemp("", "fstools-test-*")
	if err != nil {
		t.Fatalf("could not create a temporary file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	isdir, filedir, _ := IsDir(f.Name())
	if filedir != nil {
		defer filedir.Close()
	}
	if isdir {
		t.Fatalf("IsDir(%v) reported a directory for a regular file", f.Name())
	}
}

func TestIsDirOnDirectory(t *testing.T) {
	dir := t.TempDir()

	isdir, filedir, _ := IsDir(dir)
	if filedir != nil {
		defer filedir.Close()
	}
	if !isdir {
		t.Fatalf("IsDir(%v) did not report a directory", dir)
	}
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
