package domain

// ResultRow pairs an uploaded word with the outcome of its sentence lookup
type ResultRow struct {
	Word   string
	Result SentenceResult
}

// Cell returns the text shown in the results table for this row
func (r ResultRow) Cell() string {
	return r.Result.Text()
}
