package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	path "path/filepath"
	"strings"

	"github.com/TuftsBCB/io/msa"

	"github.com/apcamargo/diversify-pfam/hmmer"
	"github.com/apcamargo/diversify-pfam/util"
)

var (
	flagSetGA = 0.0
	flagAscii = false
	flagInFmt = "afa"
)

func parseFlags() {
	flag.Float64Var(&flagSetGA, "set-ga", flagSetGA,
		"Set the gathering cutoff of every resulting HMM to this value.")
	flag.BoolVar(&flagAscii, "ascii-hmm", flagAscii,
		"When set, the output file is written in the ASCII HMM format\n"+
			"instead of the binary format.")
	flag.StringVar(&flagInFmt, "input-format", flagInFmt,
		"Format of the input MSA files. Legal formats are: "+
			strings.Join(util.MSAFormats(), ", ")+".")

	util.FlagUse("verbose")
	util.FlagParse("out-hmm in-msa [ in-msa ... ]",
		"Build one profile HMM per input MSA file and write the models,\n"+
			"in input order, to a single output file. Each model's name\n"+
			"and accession are set to the base name of its input file.")
	util.AssertLeastNArg(2)
}

func main() {
	parseFlags()

	gaSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "set-ga" {
			gaSet = true
		}
	})

	outPath := util.Arg(0)
	inPaths := flag.Args()[1:]
	readMSA := util.MSAReadFormat(flagInFmt)

	// Stores the per-family FASTA and HMM files produced on the way to
	// the combined output.
	tempDir, err := ioutil.TempDir("", "mk-hmm")
	util.Assert(err, "Could not create temporary directory")
	defer os.RemoveAll(tempDir)

	combinedPath := path.Join(tempDir, "combined.hmm")
	combined := util.CreateFile(combinedPath)
	for i, inPath := range inPaths {
		name := familyName(inPath)
		util.Verbosef("Building HMM '%s' from '%s'...", name, inPath)

		inf := util.OpenFile(inPath)
		aligned, err := readMSA(inf)
		util.Assert(err, "Could not read MSA (%s) from '%s'",
			flagInFmt, inPath)
		util.Assert(inf.Close(), "Could not close '%s'", inPath)
		if len(aligned.Entries) == 0 {
			util.Fatalf("No sequences in MSA '%s'.", inPath)
		}

		fastaPath := path.Join(tempDir, fmt.Sprintf("%d.fasta", i))
		f := util.CreateFile(fastaPath)
		util.Assert(msa.WriteFasta(f, aligned),
			"Could not write '%s'", fastaPath)
		util.Assert(f.Close(), "Could not close '%s'", fastaPath)

		hmmPath := path.Join(tempDir, fmt.Sprintf("%d.hmm", i))
		util.Assert(hmmer.HmmBuildAmino.Run(name, fastaPath, hmmPath),
			"Could not build HMM from '%s'", inPath)

		hf := util.OpenFile(hmmPath)
		meta := hmmer.Meta{Name: name, Acc: name, GA: flagSetGA, SetGA: gaSet}
		util.Assert(hmmer.RewriteMeta(combined, hf, meta),
			"Could not rewrite HMM metadata for '%s'", inPath)
		util.Assert(hf.Close(), "Could not close '%s'", hmmPath)
	}
	util.Assert(combined.Close(), "Could not close '%s'", combinedPath)

	if flagAscii {
		util.CopyFile(combinedPath, outPath)
	} else {
		outf := util.CreateFile(outPath)
		util.Assert(hmmer.HmmConvertBinary.Run(outf, combinedPath),
			"Could not write binary HMMs to '%s'", outPath)
		util.Assert(outf.Close(), "Could not close '%s'", outPath)
	}
}

// familyName derives a model's name and accession from the base name of
// its input file, without the extension.
func familyName(fpath string) string {
	base := path.Base(fpath)
	return strings.TrimSuffix(base, path.Ext(base))
}
