package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sheet1"

type xlsxRenderer struct{}

// Render writes a workbook with a header row and one row per item.
func (r *xlsxRenderer) Render(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("creating xlsx stream: %w", err)
	}

	header := []interface{}{"Name"}
	if doc.Detailed {
		header = append(header, "Instructions")
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("writing xlsx header: %w", err)
	}

	for i, it := range doc.Items {
		row := []interface{}{it.Title}
		if doc.Detailed {
			row = append(row, it.Body)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("writing xlsx row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flushing xlsx: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
