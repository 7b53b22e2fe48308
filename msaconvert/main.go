package main

import (
	"flag"
	"strings"

	"github.com/apcamargo/diversify-pfam/align"
	"github.com/apcamargo/diversify-pfam/util"
)

var flagRemoveLower = false

func init() {
	flag.BoolVar(&flagRemoveLower, "remove-lowercase-columns",
		flagRemoveLower,
		"When set, columns containing at least one residue that is not\n"+
			"an uppercase letter are removed from the alignment.")

	util.FlagParse("in-msa out-msa in-fmt out-fmt",
		"Convert an MSA file from 'in-msa' in format 'in-fmt' to\n"+
			"'out-msa' in format 'out-fmt', optionally removing columns\n"+
			"that are not consistently uppercase.\n"+
			"Legal formats are: "+strings.Join(util.MSAFormats(), ", ")+".")
	util.AssertNArg(4)
}

func main() {
	in, out := util.Arg(0), util.Arg(1)
	w := util.MSAWriteFormat(util.Arg(3))

	msa := util.ReadMSA(in, util.Arg(2))
	if flagRemoveLower {
		msa = align.RemoveLowercaseColumns(msa)
	}

	outf := util.CreateFile(out)
	util.Assert(w(outf, msa), "Error writing '%s'", out)
	util.Assert(outf.Close(), "Could not close '%s'", out)
}
