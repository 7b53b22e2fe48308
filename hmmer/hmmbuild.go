// Package hmmer drives the HMMER programs as external services and
// provides a line-level rewriter for the header section of HMM files in
// HMMER's ASCII save format. Model construction, scoring parameterization
// and the on-disk formats themselves belong entirely to HMMER; nothing in
// this package re-derives or re-serializes model parameters.
package hmmer

import (
	"fmt"
	"os/exec"
	"strings"
)

// HmmBuild is a configurable invocation of the hmmbuild program, which
// constructs one profile HMM from a multiple sequence alignment.
type HmmBuild struct {
	Exe  string
	Args []string
}

// HmmBuildAmino builds amino-acid profile HMMs with hmmbuild's default
// construction method. Forcing the alphabet makes hmmbuild reject inputs
// that do not look like protein sequences.
var HmmBuildAmino = HmmBuild{
	Exe:  "hmmbuild",
	Args: []string{"--amino"},
}

// Run builds a profile HMM named name from the aligned FASTA file at
// msaPath and writes it in ASCII save format to hmmPath. The program's
// output is included in the error when hmmbuild fails.
func (hb HmmBuild) Run(name, msaPath, hmmPath string) error {
	args := append([]string{}, hb.Args...)
	if len(name) > 0 {
		args = append(args, "-n", name)
	}
	args = append(args, hmmPath, msaPath)

	cmd := exec.Command(hb.Exe, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("error running '%s %s': %s\n%s",
			hb.Exe, strings.Join(args, " "), err, string(out))
	}
	return nil
}
