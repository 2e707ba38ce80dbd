package report

import (
	"fmt"
	"io"
	"time"

	"github.com/halmaawali/rollbook/internal/models"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// pageCSS is the embedded stylesheet for the printable document. The
// layout targets landscape A4, matching the column cap of the summary.
const pageCSS = `
body { font-family: sans-serif; direction: rtl; margin: 24px; color: #1c1917; }
header { display: flex; justify-content: space-between; border-bottom: 2px solid #292524; padding-bottom: 8px; margin-bottom: 16px; }
header img { width: 64px; height: 64px; border-radius: 50%; object-fit: cover; }
table { width: 100%; border-collapse: collapse; font-size: 11px; }
th, td { border: 1px solid #a8a29e; padding: 3px; text-align: center; }
th.name, td.name { text-align: right; min-width: 160px; }
tr.group-label td { background: #e7e5e4; font-weight: bold; text-align: right; }
td.present { background: #f0fdf4; }
td.absent { background: #fef2f2; }
td.excused { background: #fffbeb; }
footer { display: flex; justify-content: space-between; font-size: 9px; border-top: 1px solid #d6d3d1; margin-top: 8px; padding-top: 4px; }
@page { size: A4 landscape; }
`

// RenderSummaryHTML writes the summary report as a standalone printable
// HTML document. It touches no persisted state, so a failed or repeated
// export is side-effect free.
func RenderSummaryHTML(w io.Writer, summary Summary, settings models.AppSettings, now time.Time) error {
	page := html.HTML(
		html.Lang("ar"),
		gomponents.Attr("dir", "rtl"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.TitleEl(gomponents.Text("سجل الحضور والغياب | "+settings.TroopName)),
			html.StyleEl(gomponents.Raw(pageCSS)),
		),
		html.Body(
			pageHeader(settings, now),
			summaryTable(summary),
			pageFooter(settings),
		),
	)
	return page.Render(w)
}

func pageHeader(settings models.AppSettings, now time.Time) gomponents.Node {
	var logo gomponents.Node
	if settings.LogoURL != "" {
		logo = html.Img(html.Src(settings.LogoURL), html.Alt("Logo"))
	}
	return html.Header(
		html.Div(
			html.H1(gomponents.Text(settings.TroopName)),
			html.P(gomponents.Text("سجل الحضور والغياب")),
		),
		logo,
		html.Div(
			html.P(html.Strong(gomponents.Text("القائد المسؤول"))),
			html.P(gomponents.Text(settings.LeaderName)),
			html.P(gomponents.Text(GeneratedAt(now))),
		),
	)
}

func summaryTable(summary Summary) gomponents.Node {
	headerCells := []gomponents.Node{
		html.Th(gomponents.Text("#")),
		html.Th(html.Class("name"), gomponents.Text("الاسم الثلاثي")),
	}
	for _, column := range summary.Columns {
		headerCells = append(headerCells, html.Th(
			html.Div(gomponents.Text(column.Weekday)),
			html.Div(gomponents.Text(column.MonthDay)),
		))
	}
	headerCells = append(headerCells,
		html.Th(gomponents.Text("حضور")),
		html.Th(gomponents.Text("نسبة")),
	)

	// +4 fixed columns: number, name, present count, percentage.
	span := len(summary.Columns) + 4

	var rows []gomponents.Node
	for _, block := range summary.Blocks {
		rows = append(rows, html.Tr(
			html.Class("group-label"),
			html.Td(html.ColSpan(fmt.Sprint(span)), gomponents.Text(block.Label)),
		))
		for _, row := range block.Rows {
			cells := []gomponents.Node{
				html.Td(gomponents.Text(fmt.Sprint(row.Number))),
				html.Td(html.Class("name"), gomponents.Text(row.Name)),
			}
			for _, status := range row.Cells {
				cells = append(cells, html.Td(
					html.Class(cellClass(status)),
					gomponents.Text(Glyph(status)),
				))
			}
			cells = append(cells,
				html.Td(gomponents.Text(fmt.Sprint(row.PresentCount))),
				html.Td(gomponents.Text(fmt.Sprintf("%d%%", row.Percentage))),
			)
			rows = append(rows, html.Tr(cells...))
		}
	}

	return html.Table(
		html.THead(html.Tr(headerCells...)),
		html.TBody(rows...),
	)
}

func cellClass(status models.AttendanceStatus) string {
	switch status {
	case models.StatusPresent:
		return "present"
	case models.StatusAbsent:
		return "absent"
	case models.StatusExcused:
		return "excused"
	}
	return ""
}

func pageFooter(settings models.AppSettings) gomponents.Node {
	legend := fmt.Sprintf("%s حاضر    %s غائب    %s عذر    %s بدون تسجيل",
		Glyph(models.StatusPresent), Glyph(models.StatusAbsent),
		Glyph(models.StatusExcused), Glyph("none"))
	return html.Footer(
		html.Div(gomponents.Text(legend)),
		html.Div(
			gomponents.Text("توقيع القائد: ................................"),
			gomponents.Text("  يعتمد، مشرف الجوالة: ................................"),
		),
	)
}
