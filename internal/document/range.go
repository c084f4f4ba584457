package document

// PageRange selects a contiguous subset of a document's pages.
// Count == 0 means "to the end".
type PageRange struct {
	Start int
	Count int
}

// Clamp resolves the range against a document's page total, returning the
// half-open interval [start, end). A start beyond the last page yields an
// empty interval; a count overshooting the total is clamped to it.
func (r PageRange) Clamp(total int) (start, end int) {
	start = r.Start
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}

	end = total
	if r.Count > 0 && start+r.Count < total {
		end = start + r.Count
	}

	return start, end
}
