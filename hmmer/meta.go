package hmmer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Meta describes the header fields rewritten by RewriteMeta. Zero-valued
// fields leave the corresponding header lines untouched.
type Meta struct {
	// Name replaces the NAME line when non-empty.
	Name string

	// Acc replaces the ACC line when non-empty. If the model carries no
	// ACC line, one is inserted after the NAME line.
	Acc string

	// GA is written as both the sequence and domain gathering threshold
	// when SetGA is true, replacing any existing GA line. If the model
	// carries no GA line, one is inserted after the CKSUM line.
	GA    float64
	SetGA bool
}

// RewriteMeta copies ASCII HMM data from r to w, rewriting the header
// section of each model according to meta. COM lines, which record the
// command line that produced the model, are always removed. Everything
// outside the header section, including the model parameters and the
// '//' record terminators, is copied byte for byte so that the output
// remains exactly what HMMER serialized.
//
// The input may contain any number of concatenated models; each model's
// header is rewritten independently.
func RewriteMeta(w io.Writer, r io.Reader, meta Meta) error {
	buf := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<20)

	// Header lines are key-value pairs up to the line starting with
	// 'HMM ' that introduces the model parameters. (The leading format
	// line starts with 'HMMER' and must not end the header.)
	inHeader := true
	wroteAcc := false
	wroteGA := false
	for scanner.Scan() {
		line := scanner.Text()
		if inHeader {
			switch {
			case strings.HasPrefix(line, "HMM "):
				if meta.SetGA && !wroteGA {
					writeGA(buf, meta.GA)
					wroteGA = true
				}
				inHeader = false
			case strings.HasPrefix(line, "NAME "):
				if len(meta.Name) > 0 {
					line = fmt.Sprintf("NAME  %s", meta.Name)
				}
				writeLine(buf, line)
				if len(meta.Acc) > 0 && !wroteAcc {
					writeLine(buf, fmt.Sprintf("ACC   %s", meta.Acc))
					wroteAcc = true
				}
				continue
			case strings.HasPrefix(line, "ACC "):
				if len(meta.Acc) > 0 {
					continue
				}
			case strings.HasPrefix(line, "COM "):
				continue
			case strings.HasPrefix(line, "CKSUM "):
				writeLine(buf, line)
				if meta.SetGA && !wroteGA {
					writeGA(buf, meta.GA)
					wroteGA = true
				}
				continue
			case strings.HasPrefix(line, "GA "):
				if meta.SetGA {
					continue
				}
			}
		}
		writeLine(buf, line)
		if line == "//" {
			inHeader = true
			wroteAcc = false
			wroteGA = false
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading hmm: %s", err)
	}
	return buf.Flush()
}

func writeGA(buf *bufio.Writer, ga float64) {
	writeLine(buf, fmt.Sprintf("GA    %.2f %.2f", ga, ga))
}

func writeLine(buf *bufio.Writer, line string) {
	buf.WriteString(line)
	buf.WriteByte('\n')
}
