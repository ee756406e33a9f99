package export

import (
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/quotes"
	"go.uber.org/zap"
)

const revenueSheet = "Revenue"

var barHeaders = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// Workbook build an excel workbook of fetched group data, one OHLCV sheet
// per ticker plus a revenue sheet.
func Workbook(group groups.Group, data []quotes.TickerData) (*excelize.File, error) {
	if len(data) == 0 {
		return nil, constants.ErrNoSeries
	}

	file := excelize.NewFile()
	file.SetSheetName("Sheet1", data[0].Symbol)
	for _, td := range data[1:] {
		file.NewSheet(td.Symbol)
	}

	for _, td := range data {
		writeSeries(file, td.Symbol, td.Series)
	}

	writeRevenue(file, data)

	zap.L().Info("export workbook built",
		zap.String("group", group.Name),
		zap.Int("tickers", len(data)))

	return file, nil
}

func writeSeries(file *excelize.File, sheet string, series quotes.Series) {
	for column, header := range barHeaders {
		file.SetCellValue(sheet, axis(column, 1), header)
	}

	for index, bar := range series {
		row := index + 2
		file.SetCellValue(sheet, axis(0, row), bar.Date().Format(constants.DatePattern))
		file.SetCellValue(sheet, axis(1, row), bar.Open)
		file.SetCellValue(sheet, axis(2, row), bar.High)
		file.SetCellValue(sheet, axis(3, row), bar.Low)
		file.SetCellValue(sheet, axis(4, row), bar.Close)
		file.SetCellValue(sheet, axis(5, row), bar.Volume)
	}
}

func writeRevenue(file *excelize.File, data []quotes.TickerData) {
	file.NewSheet(revenueSheet)
	file.SetCellValue(revenueSheet, axis(0, 1), "Ticker")
	file.SetCellValue(revenueSheet, axis(1, 1), "Period")
	file.SetCellValue(revenueSheet, axis(2, 1), "Revenue")

	row := 2
	for _, td := range data {
		for _, fv := range td.Financials.Revenue() {
			file.SetCellValue(revenueSheet, axis(0, row), td.Symbol)
			file.SetCellValue(revenueSheet, axis(1, row), fv.Period)
			file.SetCellValue(revenueSheet, axis(2, row), fv.Value)
			row++
		}
	}
}

// axis excel cell reference from zero based column and one based row
func axis(column, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(column), row)
}
