package main

import (
	"bytes"
	"context"
	"github.com/Nami-00/cas/contracts"
	"github.com/Nami-00/cas/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
	"testing"
)

func TestExcelWorkbookProcessor_Process(t *testing.T) {
	ctx := context.Background()

	formula := func(value string) *string { return &value }
	weight := func(value float64) *float64 { return &value }

	buildWorkbook := func(t *testing.T, rows [][]any) *bytes.Reader {
		workbook := excelize.NewFile()
		sheetName := workbook.GetSheetName(workbook.GetActiveSheetIndex())

		for rowIndex, row := range rows {
			for columnIndex, value := range row {
				cellName, err := excelize.CoordinatesToCellName(columnIndex+1, rowIndex+1)
				assert.NoError(t, err)
				assert.NoError(t, workbook.SetCellValue(sheetName, cellName, value))
			}
		}

		buffer, err := workbook.WriteToBuffer()
		assert.NoError(t, err)

		return bytes.NewReader(buffer.Bytes())
	}

	reopenRows := func(t *testing.T, content []byte) [][]string {
		workbook, err := excelize.OpenReader(bytes.NewReader(content))
		assert.NoError(t, err)
		defer workbook.Close()

		rows, err := workbook.GetRows(workbook.GetSheetName(workbook.GetActiveSheetIndex()))
		assert.NoError(t, err)

		return rows
	}

	t.Run("appends formula and weight columns", func(t *testing.T) {
		upload := buildWorkbook(t, [][]any{
			{"CAS Number", "Name"},
			{"50-00-0", "formaldehyde"},
			{"7782-42-5", "graphite"},
			{"UNKNOWN-999", "mystery"},
		})

		lookupResults := []contracts.LookupResult{
			{CasNumber: "50-00-0", MolecularFormula: formula("CH2O"), MolecularWeight: weight(30.03)},
			{CasNumber: "7782-42-5", MolecularFormula: formula("C"), MolecularWeight: weight(12.01)},
			{CasNumber: "UNKNOWN-999"},
		}
		counts := contracts.BatchCounts{Resolved: 2, NotFound: 1}

		dispatcher := mocks.NewBatchDispatcher(t)
		dispatcher.On("RunBatch", mock.Anything, []string{"50-00-0", "7782-42-5", "UNKNOWN-999"}).
			Return(lookupResults, counts)

		processor := NewExcelWorkbookProcessor(dispatcher)

		processed, err := processor.Process(ctx, upload)

		assert.NoError(t, err)
		assert.Equal(t, lookupResults, processed.Rows)
		assert.Equal(t, counts, processed.Counts)

		rows := reopenRows(t, processed.Content)
		assert.Equal(t, []string{"CAS Number", "Name", FormulaColumnHeader, WeightColumnHeader}, rows[0])
		assert.Equal(t, []string{"50-00-0", "formaldehyde", "CH2O", "30.03"}, rows[1])
		assert.Equal(t, []string{"7782-42-5", "graphite", "C", "12.01"}, rows[2])
		// unresolved row keeps its cells and gains nothing
		assert.Equal(t, []string{"UNKNOWN-999", "mystery"}, rows[3])
	})

	t.Run("appends to the right of the widest row", func(t *testing.T) {
		upload := buildWorkbook(t, [][]any{
			{"CAS", "Note", "Extra"},
			{"50-00-0", "short row"},
			{"", "blank cas", "kept"},
		})

		lookupResults := []contracts.LookupResult{
			{CasNumber: "50-00-0", MolecularFormula: formula("CH2O"), MolecularWeight: weight(30.03)},
			{CasNumber: ""},
		}

		dispatcher := mocks.NewBatchDispatcher(t)
		dispatcher.On("RunBatch", mock.Anything, []string{"50-00-0", ""}).
			Return(lookupResults, contracts.BatchCounts{Resolved: 1, Skipped: 1})

		processor := NewExcelWorkbookProcessor(dispatcher)

		processed, err := processor.Process(ctx, upload)

		assert.NoError(t, err)

		rows := reopenRows(t, processed.Content)
		assert.Equal(t, []string{"CAS", "Note", "Extra", FormulaColumnHeader, WeightColumnHeader}, rows[0])
		assert.Equal(t, []string{"50-00-0", "short row", "", "CH2O", "30.03"}, rows[1])
		assert.Equal(t, []string{"", "blank cas", "kept"}, rows[2])
	})

	t.Run("workbook with only a header passes through", func(t *testing.T) {
		upload := buildWorkbook(t, [][]any{{"CAS Number"}})

		dispatcher := mocks.NewBatchDispatcher(t)
		processor := NewExcelWorkbookProcessor(dispatcher)

		processed, err := processor.Process(ctx, upload)

		assert.NoError(t, err)
		assert.Empty(t, processed.Rows)
		assert.Equal(t, contracts.BatchCounts{}, processed.Counts)
		dispatcher.AssertNotCalled(t, "RunBatch")

		rows := reopenRows(t, processed.Content)
		assert.Equal(t, [][]string{{"CAS Number"}}, rows)
	})

	t.Run("empty workbook passes through", func(t *testing.T) {
		upload := buildWorkbook(t, nil)

		processor := NewExcelWorkbookProcessor(mocks.NewBatchDispatcher(t))

		processed, err := processor.Process(ctx, upload)

		assert.NoError(t, err)
		assert.Empty(t, processed.Rows)
		assert.NotEmpty(t, processed.Content)
	})

	t.Run("rejects a non xlsx upload", func(t *testing.T) {
		processor := NewExcelWorkbookProcessor(mocks.NewBatchDispatcher(t))

		processed, err := processor.Process(ctx, bytes.NewBufferString("certainly not a zip archive"))

		assert.ErrorIs(t, err, contracts.WorkbookReadError)
		assert.Nil(t, processed)
	})
}
