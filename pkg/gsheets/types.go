package gsheets

// WriteRequest replaces the contents of one sheet tab with Rows, starting at A1.
type WriteRequest struct {
	SheetName string
	Rows      [][]any
}

// WriteResult summarizes a completed write.
type WriteResult struct {
	SpreadsheetID string
	UpdatedRange  string
	UpdatedRows   int64
	UpdatedCells  int64
}
