package hmmer

import (
	"bytes"
	"strings"
	"testing"
)

var testModel = strings.Join([]string{
	"HMMER3/f [3.3.2 | Nov 2020]",
	"NAME  0",
	"LENG  2",
	"ALPH  amino",
	"RF    no",
	"MM    no",
	"CONS  yes",
	"CS    no",
	"MAP   yes",
	"DATE  Mon Jan  6 10:35:13 2025",
	"COM   [1] hmmbuild --amino -n 0 0.hmm 0.fasta",
	"NSEQ  3",
	"EFFN  2.764706",
	"CKSUM 2315398282",
	"STATS LOCAL MSV       -8.6430  0.71948",
	"STATS LOCAL VITERBI   -9.3717  0.71948",
	"STATS LOCAL FORWARD   -3.2633  0.71948",
	"HMM          A        C        D",
	"            m->m     m->i     m->d     i->m     i->i     d->m     d->d",
	"  COMPO   2.36553  4.52577  2.96709",
	"          2.68618  4.42225  2.77519",
	"          0.03156  3.86736  4.58970  0.61958  0.77255  0.00000        *",
	"      1   1.75734  4.86584  3.41521      1 A - - -",
	"          2.68618  4.42225  2.77519",
	"          0.03156  3.86736  4.58970  0.61958  0.77255  0.48576  0.95510",
	"      2   2.89801  4.37034  1.58209      2 D - - -",
	"          2.68618  4.42225  2.77519",
	"          0.02145  4.87832        *  0.61958  0.77255  0.00000        *",
	"//",
}, "\n") + "\n"

func TestRewriteMetaNameAcc(t *testing.T) {
	out := new(bytes.Buffer)
	err := RewriteMeta(out, strings.NewReader(testModel),
		Meta{Name: "family1", Acc: "family1"})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out.String(), "\n")
	if lines[1] != "NAME  family1" {
		t.Fatalf("NAME line is '%s'.", lines[1])
	}
	if lines[2] != "ACC   family1" {
		t.Fatalf("ACC line is '%s'.", lines[2])
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "COM ") {
			t.Fatalf("COM line '%s' was not removed.", line)
		}
		if strings.HasPrefix(line, "GA ") {
			t.Fatalf("Unexpected GA line '%s'.", line)
		}
	}
}

func TestRewriteMetaReplacesAcc(t *testing.T) {
	in := strings.Replace(testModel,
		"NAME  0", "NAME  0\nACC   OLD001", 1)
	out := new(bytes.Buffer)
	err := RewriteMeta(out, strings.NewReader(in),
		Meta{Name: "family1", Acc: "family1"})
	if err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(out.String(), "\nACC "); n != 1 {
		t.Fatalf("Expected exactly one ACC line, found %d.", n)
	}
	if strings.Contains(out.String(), "OLD001") {
		t.Fatal("Old accession was not replaced.")
	}
}

func TestRewriteMetaGA(t *testing.T) {
	out := new(bytes.Buffer)
	err := RewriteMeta(out, strings.NewReader(testModel),
		Meta{GA: 25, SetGA: true})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out.String(), "\n")
	gaAt := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "GA ") {
			if line != "GA    25.00 25.00" {
				t.Fatalf("GA line is '%s'.", line)
			}
			gaAt = i
		}
	}
	if gaAt == -1 {
		t.Fatal("No GA line was written.")
	}
	if !strings.HasPrefix(lines[gaAt-1], "CKSUM ") {
		t.Fatalf("GA line follows '%s', not CKSUM.", lines[gaAt-1])
	}

	// An existing GA line must be replaced, not duplicated.
	out2 := new(bytes.Buffer)
	err = RewriteMeta(out2, strings.NewReader(out.String()),
		Meta{GA: 10.5, SetGA: true})
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out2.String(), "\nGA "); n != 1 {
		t.Fatalf("Expected exactly one GA line, found %d.", n)
	}
	if !strings.Contains(out2.String(), "GA    10.50 10.50") {
		t.Fatal("Existing GA line was not replaced.")
	}
}

func TestRewriteMetaBodyUntouched(t *testing.T) {
	out := new(bytes.Buffer)
	err := RewriteMeta(out, strings.NewReader(testModel),
		Meta{Name: "family1", Acc: "family1", GA: 25, SetGA: true})
	if err != nil {
		t.Fatal(err)
	}

	hmmAt := strings.Index(testModel, "HMM ")
	body := testModel[hmmAt:]
	if !strings.HasSuffix(out.String(), body) {
		t.Fatal("Model parameter section was modified by the rewrite.")
	}
}

func TestRewriteMetaIdentity(t *testing.T) {
	in := strings.Replace(testModel,
		"COM   [1] hmmbuild --amino -n 0 0.hmm 0.fasta\n", "", 1)
	out := new(bytes.Buffer)
	if err := RewriteMeta(out, strings.NewReader(in), Meta{}); err != nil {
		t.Fatal(err)
	}
	if out.String() != in {
		t.Fatalf("\nZero-valued rewrite changed the model:\n\n%s\n\n"+
			"original:\n\n%s", out.String(), in)
	}
}

func TestRewriteMetaConcatenated(t *testing.T) {
	in := testModel + testModel
	out := new(bytes.Buffer)
	err := RewriteMeta(out, strings.NewReader(in),
		Meta{Name: "family1", GA: 25, SetGA: true})
	if err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(out.String(), "NAME  family1\n"); n != 2 {
		t.Fatalf("Expected 2 rewritten NAME lines, found %d.", n)
	}
	if n := strings.Count(out.String(), "GA    25.00 25.00\n"); n != 2 {
		t.Fatalf("Expected 2 GA lines, found %d.", n)
	}
}
