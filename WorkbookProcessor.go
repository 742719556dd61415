package main

import (
	"context"
	"fmt"
	"github.com/Nami-00/cas/contracts"
	"github.com/xuri/excelize/v2"
	"io"
)

const FormulaColumnHeader = "Molecular Formula"
const WeightColumnHeader = "Molecular Weight"

// ExcelWorkbookProcessor reads the CAS numbers from the first column of the
// active sheet (row 1 is the header), resolves them as one batch and appends
// the formula and weight columns to the right of the used range.
type ExcelWorkbookProcessor struct {
	dispatcher contracts.BatchDispatcher
}

func NewExcelWorkbookProcessor(dispatcher contracts.BatchDispatcher) *ExcelWorkbookProcessor {
	return &ExcelWorkbookProcessor{dispatcher: dispatcher}
}

func (p *ExcelWorkbookProcessor) Process(ctx context.Context, upload io.Reader) (*contracts.ProcessedWorkbook, error) {
	workbook, err := excelize.OpenReader(upload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.WorkbookReadError, err)
	}
	defer workbook.Close()

	sheetName := workbook.GetSheetName(workbook.GetActiveSheetIndex())

	rows, err := workbook.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}

	// a workbook without data rows passes through unchanged
	if len(rows) <= 1 {
		return p.packWorkbook(workbook, nil, contracts.BatchCounts{})
	}

	casNumbers := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		casNumber := ""
		if len(row) > 0 {
			casNumber = row[0]
		}
		casNumbers = append(casNumbers, casNumber)
	}

	lookupResults, counts := p.dispatcher.RunBatch(ctx, casNumbers)

	baseColumns := 0
	for _, row := range rows {
		if len(row) > baseColumns {
			baseColumns = len(row)
		}
	}
	formulaColumn := baseColumns + 1
	weightColumn := baseColumns + 2

	if err = p.setCell(workbook, sheetName, formulaColumn, 1, FormulaColumnHeader); err != nil {
		return nil, err
	}
	if err = p.setCell(workbook, sheetName, weightColumn, 1, WeightColumnHeader); err != nil {
		return nil, err
	}

	for index, result := range lookupResults {
		rowNumber := index + 2

		if result.MolecularFormula != nil {
			if err = p.setCell(workbook, sheetName, formulaColumn, rowNumber, *result.MolecularFormula); err != nil {
				return nil, err
			}
		}

		if result.MolecularWeight != nil {
			if err = p.setCell(workbook, sheetName, weightColumn, rowNumber, *result.MolecularWeight); err != nil {
				return nil, err
			}
		}
	}

	return p.packWorkbook(workbook, lookupResults, counts)
}

func (p *ExcelWorkbookProcessor) setCell(workbook *excelize.File, sheetName string, column int, row int, value any) error {
	cellName, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	return workbook.SetCellValue(sheetName, cellName, value)
}

func (p *ExcelWorkbookProcessor) packWorkbook(workbook *excelize.File, rows []contracts.LookupResult, counts contracts.BatchCounts) (*contracts.ProcessedWorkbook, error) {
	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	if rows == nil {
		rows = make([]contracts.LookupResult, 0)
	}

	return &contracts.ProcessedWorkbook{
		Rows:    rows,
		Counts:  counts,
		Content: buffer.Bytes(),
	}, nil
}
