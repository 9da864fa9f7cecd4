package service

import (
	"fmt"

	"lbm/internal/domains/booking/model"
	"lbm/shared/constant"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Bookings"

var exportHeaders = []string{
	"ID", "Name", "Email", "Phone", "Service",
	"Preferred Date", "Preferred Time", "Message", "Status", "Created At",
}

// buildExportWorkbook renders bookings into an in-memory xlsx workbook.
func buildExportWorkbook(bookings []model.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheetName, cell, header)
		_ = f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	for i, booking := range bookings {
		row := i + 2
		values := []any{
			booking.ID,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.Service,
			booking.PreferredDate.Format(constant.PreferredDateFormat),
			booking.PreferredTime,
			booking.Message,
			booking.Status,
			booking.CreatedAt.Format(constant.DateFormat),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(exportSheetName, cell, value)
		}
	}

	_ = f.SetColWidth(exportSheetName, "A", "A", 38)
	_ = f.SetColWidth(exportSheetName, "B", "E", 20)
	_ = f.SetColWidth(exportSheetName, "F", "G", 15)
	_ = f.SetColWidth(exportSheetName, "H", "H", 40)
	_ = f.SetColWidth(exportSheetName, "I", "I", 12)
	_ = f.SetColWidth(exportSheetName, "J", "J", 22)

	_ = f.DeleteSheet("Sheet1")

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}
