package ux

import (
	"fmt"
	"io"

	"github.com/jorge-barreto/cex/internal/cex"
	"github.com/jorge-barreto/cex/internal/loader"
)

// RenderDocument prints a summary of a loaded document: where it came from,
// its blocks, and the well-known structures it carries.
func RenderDocument(w io.Writer, doc *loader.Document, dataModelsLabel, modelColumn string) {
	st := doc.Store

	// Header
	fmt.Fprintf(w, "%sSource:%s  %s\n", Bold, Reset, doc.Source)
	fmt.Fprintf(w, "%sID:%s      %s%s%s\n", Bold, Reset, Dim, doc.ID, Reset)
	fmt.Fprintf(w, "%sLoaded:%s  %s\n", Bold, Reset, doc.LoadedAt.Format("2006-01-02 15:04:05"))

	total := 0
	for _, l := range st.Labels() {
		total += len(st.Bodies(l))
	}
	fmt.Fprintf(w, "\n%sBlocks:%s %d label%s, %d block%s\n",
		Bold, Reset, st.Len(), plural(st.Len()), total, plural(total))
	RenderLabels(w, st)

	// Data models
	if st.Has(dataModelsLabel) {
		models := st.UniqueColumnValues(cex.ColumnQuery{Label: dataModelsLabel, ValueColumn: modelColumn})
		fmt.Fprintf(w, "\n%sData models:%s\n", Bold, Reset)
		if len(models) == 0 {
			fmt.Fprintf(w, "  %s(no %q column)%s\n", Dim, modelColumn, Reset)
		}
		for _, m := range models {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}

	// Relation sets
	if st.Has(cex.RelationSetLabel) {
		sets := st.RelationSets(false)
		fmt.Fprintf(w, "\n%sRelation sets:%s\n", Bold, Reset)
		if len(sets) == 0 {
			fmt.Fprintf(w, "  %s(none well-formed)%s\n", Dim, Reset)
		}
		for _, rs := range sets {
			fmt.Fprintf(w, "  %s%s%s  %s\n", Green, rs.URN, Reset, rs.Label)
		}
	}
	fmt.Fprintln(w)
}
