package util

import (
	"io"
	"sort"
	"strings"

	"github.com/TuftsBCB/io/msa"
	"github.com/TuftsBCB/seq"
)

type (
	// An MSAReader parses a single multiple sequence alignment from the
	// underlying reader.
	MSAReader func(io.Reader) (seq.MSA, error)

	// An MSAWriter serializes a multiple sequence alignment to the
	// underlying writer.
	MSAWriter func(io.Writer, seq.MSA) error

	msaIO struct {
		r MSAReader
		w MSAWriter
	}
)

var (
	fmtToIO = map[string]msaIO{
		"fasta":     {msa.ReadFasta, msa.WriteFasta},
		"stockholm": {msa.ReadStockholm, msa.WriteStockholm},
		"a2m":       {msa.Read, msa.WriteA2M},
		"a3m":       {msa.Read, msa.WriteA3M},
	}
	fmtAliases = map[string]string{
		"afa": "fasta", "fa": "fasta", "fas": "fasta", "ali": "fasta",
		"sto": "stockholm",
	}
)

// MSAFormats returns the legal format tags, canonical names first,
// then aliases, each group sorted.
func MSAFormats() []string {
	canon := make([]string, 0, len(fmtToIO))
	for name := range fmtToIO {
		canon = append(canon, name)
	}
	alias := make([]string, 0, len(fmtAliases))
	for name := range fmtAliases {
		alias = append(alias, name)
	}
	sort.Strings(canon)
	sort.Strings(alias)
	return append(canon, alias...)
}

func msaFormat(format string) msaIO {
	name := strings.ToLower(format)
	if canon, ok := fmtAliases[name]; ok {
		name = canon
	}
	fio, ok := fmtToIO[name]
	if !ok {
		Fatalf("Unknown MSA format '%s'. Legal formats are: %s.",
			format, strings.Join(MSAFormats(), ", "))
	}
	return fio
}

// MSAReadFormat returns the reader for the given format tag. Unknown
// tags are fatal.
func MSAReadFormat(format string) MSAReader {
	return msaFormat(format).r
}

// MSAWriteFormat returns the writer for the given format tag. Unknown
// tags are fatal.
func MSAWriteFormat(format string) MSAWriter {
	return msaFormat(format).w
}

// ReadMSA reads one alignment in the given format from fpath.
func ReadMSA(fpath, format string) seq.MSA {
	r := MSAReadFormat(format)
	f := OpenFile(fpath)
	aligned, err := r(f)
	Assert(err, "Could not read MSA (%s) from '%s'", format, fpath)
	Assert(f.Close(), "Could not close '%s'", fpath)
	return aligned
}
