package hmmer

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// HmmConvert is a configurable invocation of the hmmconvert program,
// which re-encodes HMM files between HMMER's save formats.
type HmmConvert struct {
	Exe  string
	Args []string
}

// HmmConvertBinary converts ASCII HMM files to HMMER's binary save
// format. The input may contain any number of concatenated models.
var HmmConvertBinary = HmmConvert{
	Exe:  "hmmconvert",
	Args: []string{"-b"},
}

// Run converts the HMM file at hmmPath and streams the converted models
// to w. hmmconvert writes the result to its stdout, so w receives exactly
// the bytes HMMER produced.
func (hc HmmConvert) Run(w io.Writer, hmmPath string) error {
	args := append([]string{}, hc.Args...)
	args = append(args, hmmPath)

	var stderr bytes.Buffer
	cmd := exec.Command(hc.Exe, args...)
	cmd.Stdout = w
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error running '%s %s': %s\n%s",
			hc.Exe, strings.Join(args, " "), err, stderr.String())
	}
	return nil
}
