package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSX выводит каждый лист заголовком и строки ячеек через табуляцию.
func XLSX(data []byte) (string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer file.Close()

	var sb strings.Builder
	for _, sheet := range file.GetSheetList() {
		rows, err := file.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to get rows of %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		sb.WriteString(sheet)
		sb.WriteByte('\n')
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, "\t"))
			if line == "" {
				continue
			}
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
