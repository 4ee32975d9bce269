package export

import (
	"io"

	"leopardweb-catalog/lib/scrapers/leopardweb"

	"github.com/xuri/excelize/v2"
)

const maxColumnWidth = 50

func writeXLSX(catalog leopardweb.Catalog, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Courses " + catalog.Term
	err := f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	widths := make([]int, len(Headers))
	for col, header := range Headers {
		widths[col] = len(header)
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		err = f.SetCellValue(sheet, cell, header)
		if err != nil {
			return err
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return err
	}
	err = f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)
	if err != nil {
		return err
	}

	for row, course := range catalog.Courses {
		for col, value := range Flatten(course) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			err = f.SetCellValue(sheet, cell, value)
			if err != nil {
				return err
			}
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}
	}

	for col := range Headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		width := widths[col] + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		err = f.SetColWidth(sheet, name, name, float64(width))
		if err != nil {
			return err
		}
	}

	// keep the header visible while scrolling
	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return err
	}

	return f.Write(w)
}
