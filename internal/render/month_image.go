package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Геометрия месячной сетки: 7 колонок на 6 недель
const (
	imageWidth   = 1120
	imageHeight  = 820
	headerHeight = 70
	weekdayRow   = 30
	cellPadding  = 6.0
	gridColumns  = 7
	gridRows     = 6
	cornerRadius = 6.0
)

const (
	titleFontSize = 24.0
	dayFontSize   = 16.0
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	headerTextColor = color.RGBA{60, 64, 70, 255}
	weekdayColor    = color.RGBA{110, 115, 120, 255}
	inMonthColor    = color.RGBA{255, 255, 255, 255}
	outMonthColor   = color.RGBA{228, 230, 233, 255}
	todayColor      = color.NRGBA{255, 99, 71, 160}
	dayNumberColor  = color.RGBA{50, 54, 60, 255}
	dimNumberColor  = color.RGBA{150, 154, 160, 255}
	sessionColor    = color.RGBA{133, 193, 85, 255}
	sessionTextHue  = color.RGBA{30, 60, 20, 255}
	gridLineColor   = color.NRGBA{200, 200, 200, 255}
)

var weekdayNames = [gridColumns]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// GenerateMonthImage рисует месячную сетку в PNG. grid — ровно 42 дня из
// BuildMonthGrid; sessionsByDay — подписи сессий по календарным дням
// (ключ — model.Date.String()).
func GenerateMonthImage(grid []model.CalendarDay, sessionsByDay map[string][]string, title string) ([]byte, error) {
	if len(grid) != gridColumns*gridRows {
		return nil, fmt.Errorf("month grid must have %d days, got %d", gridColumns*gridRows, len(grid))
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()

	drawTitle(dc, title)
	drawWeekdayRow(dc)

	cellWidth := float64(imageWidth) / gridColumns
	cellHeight := float64(imageHeight-headerHeight-weekdayRow) / gridRows

	for i, day := range grid {
		col := i % gridColumns
		row := i / gridColumns
		x := float64(col) * cellWidth
		y := float64(headerHeight+weekdayRow) + float64(row)*cellHeight
		drawDayCell(dc, day, sessionsByDay[day.Date.String()], x, y, cellWidth, cellHeight)
	}

	return encodeImage(dc)
}

func drawTitle(dc *gg.Context, title string) {
	dc.SetColor(headerTextColor)
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)
}

func drawWeekdayRow(dc *gg.Context) {
	cellWidth := float64(imageWidth) / gridColumns
	dc.SetColor(weekdayColor)
	for i, name := range weekdayNames {
		x := float64(i)*cellWidth + cellWidth/2
		dc.DrawStringAnchored(name, x, headerHeight+weekdayRow/2, 0.5, 0.5)
	}
}

func drawDayCell(dc *gg.Context, day model.CalendarDay, sessions []string, x, y, w, h float64) {
	fill := outMonthColor
	if day.IsCurrentMonth {
		fill = inMonthColor
	}
	dc.SetColor(fill)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	if day.IsToday {
		dc.SetColor(todayColor)
		dc.DrawRoundedRectangle(x+2, y+2, w-4, h-4, cornerRadius)
		dc.Fill()
	}

	dc.SetColor(gridLineColor)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()

	// Номер дня в левом верхнем углу
	numberColor := dayNumberColor
	if !day.IsCurrentMonth {
		numberColor = dimNumberColor
	}
	dc.SetColor(numberColor)
	dc.DrawString(fmt.Sprintf("%d", day.Date.Day()), x+cellPadding, y+cellPadding+dayFontSize)

	// Плашки сессий сверху вниз, сколько поместится
	lineY := y + cellPadding + dayFontSize*2
	for _, label := range sessions {
		if lineY+dayFontSize > y+h-cellPadding {
			break
		}
		dc.SetColor(sessionColor)
		dc.DrawRoundedRectangle(x+cellPadding, lineY, w-2*cellPadding, dayFontSize+4, cornerRadius/2)
		dc.Fill()
		dc.SetColor(sessionTextHue)
		dc.DrawString(label, x+cellPadding+4, lineY+dayFontSize)
		lineY += dayFontSize + 8
	}
}

func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
