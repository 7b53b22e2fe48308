package util

import (
	"io"
	"os"
)

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func CopyFile(src, dest string) {
	df := CreateFile(dest)
	sf := OpenFile(src)
	_, err := io.Copy(df, sf)
	Assert(err, "Could not copy '%s' to '%s'", src, dest)
	Assert(sf.Close(), "Could not close '%s'", src)
	Assert(df.Close(), "Could not close '%s'", dest)
}
