package app

import "github.com/henri123lemoine/tabula/internal/table"

// Message types for the bubbletea app.

// DataLoadedMsg is sent when the dataset has been read.
type DataLoadedMsg struct {
	Records []table.Record
	Err     error
}

// CopiedMsg is sent when the selection has been put on the clipboard.
type CopiedMsg struct {
	Count int
	Err   error
}

// ExportedMsg is sent when the selection has been written.
type ExportedMsg struct {
	Path  string
	Count int
	Err   error
}
