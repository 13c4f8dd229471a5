// Package xlsx encodes a laid-out spreadsheet into an .xlsx workbook.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/guillotegh/sistema-reservas/internal/usecase"
)

const sheetName = "Reservas"

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Escribir renders the rows into a single-sheet workbook. Nil rows stay as
// blank spreadsheet lines.
func (w *Writer) Escribir(p usecase.Planilla) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, fila := range p.Filas {
		if len(fila) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		celdas := make([]any, len(fila))
		for j, v := range fila {
			celdas[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &celdas); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
