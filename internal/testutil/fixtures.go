package testutil

import (
	"io/ioutil"
	"path"
	"runtime"
	"testing"
)

// Fixture loads a file from the message/testdata directory.
func Fixture(t *testing.T, relPath string) []byte {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("error loading caller")
	}

	p := path.Join(path.Dir(filename), "../../", "message/testdata", relPath)

	bytes, err := ioutil.ReadFile(p)
	if err != nil {
		t.Fatalf("error loading fixture %s: %v", p, err)
	}

	return bytes
}
