// Package align provides small transformations over multiple sequence
// alignments represented as seq.MSA values.
package align

import (
	"github.com/TuftsBCB/seq"
)

// RemoveLowercaseColumns returns a new alignment containing only the
// columns of m in which every residue is an uppercase letter. A lowercase
// residue or a gap character ('-' or '.') anywhere in a column removes the
// whole column. Columns keep their original relative order and sequence
// names are preserved. The given alignment is not modified.
//
// Filtering can produce an alignment of length zero; the entries are kept
// with empty residue lists in that case.
func RemoveLowercaseColumns(m seq.MSA) seq.MSA {
	keep := make([]int, 0, m.Len())
	for col := 0; col < m.Len(); col++ {
		if columnIsUpper(m, col) {
			keep = append(keep, col)
		}
	}

	// Entries are built directly since every filtered sequence has
	// exactly len(keep) residues. (MSA.Add would drop empty sequences.)
	filtered := seq.NewMSA()
	filtered.SetLen(len(keep))
	for _, entry := range m.Entries {
		residues := make([]seq.Residue, len(keep))
		for i, col := range keep {
			residues[i] = entry.Residues[col]
		}
		filtered.Entries = append(filtered.Entries, seq.Sequence{
			Name:     entry.Name,
			Residues: residues,
		})
	}
	return filtered
}

func columnIsUpper(m seq.MSA, col int) bool {
	for _, entry := range m.Entries {
		r := entry.Residues[col]
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
