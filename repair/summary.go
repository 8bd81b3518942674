package repair

// Summary reports how many elements each repair pass touched. A
// zero-valued Summary after Run means the model was already clean for
// every pass selected by the requested Mode.
type Summary struct {
	MergedVertices     int
	DegenerateEdges    int
	DegeneratePolygons int
	ReorderedLines     int
	ErasedVertices     int
	RebuiltContacts    int
}

// Dirty reports whether any pass performed a mutation. DegenerateEdges and
// DegeneratePolygons are excluded: countDegenerate only detects and reports
// them, it never edits the model (see its doc comment), so a degenerate
// count alone must not make a caller think there is anything to re-save.
func (s Summary) Dirty() bool {
	return s.MergedVertices > 0 || s.ReorderedLines > 0 || s.ErasedVertices > 0 || s.RebuiltContacts > 0
}
