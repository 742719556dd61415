package contracts

import (
	"context"
	"errors"
	"io"
)

type WorkbookProcessor interface {
	Process(ctx context.Context, upload io.Reader) (*ProcessedWorkbook, error)
}

// ProcessedWorkbook is the outcome of one upload: the per-row lookup results
// in sheet order and the augmented workbook ready for download.
type ProcessedWorkbook struct {
	Rows    []LookupResult
	Counts  BatchCounts
	Content []byte
}

var WorkbookReadError = errors.New("upload is not a readable xlsx workbook")
