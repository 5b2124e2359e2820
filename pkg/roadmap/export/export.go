// Package export renders a roadmap as an xlsx workbook for download.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"elevare/entities"
)

const sheet = "Roadmap"

var headers = []string{"#", "Title", "Description", "Category", "Duration", "Learn More"}

func Workbook(m *entities.Roadmap) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	set := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	set(1, 1, "Career")
	set(2, 1, m.Career)
	title := m.Title
	if title == "" {
		title = m.Career + " Roadmap"
	}
	set(1, 2, "Roadmap")
	set(2, 2, title)

	const headerRow = 4
	for i, h := range headers {
		set(i+1, headerRow, h)
	}
	for i, step := range m.Steps {
		row := headerRow + 1 + i
		set(1, row, i+1)
		set(2, row, step.Title)
		set(3, row, step.Description)
		set(4, row, step.Category)
		set(5, row, step.Duration)
		set(6, row, step.LearnMoreURL)
	}
	return f, nil
}

func Filename(m *entities.Roadmap) string {
	return fmt.Sprintf("roadmap-%d.xlsx", m.RoadmapID)
}
