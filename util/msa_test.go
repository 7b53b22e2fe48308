package util

import (
	"testing"
)

func TestMSAFormatAliases(t *testing.T) {
	for alias, canon := range fmtAliases {
		if _, ok := fmtToIO[canon]; !ok {
			t.Fatalf("Alias '%s' points at unknown format '%s'.",
				alias, canon)
		}
	}
}

func TestMSAFormatDispatch(t *testing.T) {
	for _, format := range MSAFormats() {
		if MSAReadFormat(format) == nil {
			t.Fatalf("No reader for format '%s'.", format)
		}
		if MSAWriteFormat(format) == nil {
			t.Fatalf("No writer for format '%s'.", format)
		}
	}
	if MSAReadFormat("AFA") == nil {
		t.Fatal("Format tags should be case insensitive.")
	}
}
