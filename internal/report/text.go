package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RenderSummaryText writes the summary report as an aligned terminal
// table: a header line of session metadata, then each group block with
// its label line and member rows.
func RenderSummaryText(w io.Writer, summary Summary) error {
	tw := tabwriter.NewWriter(w, 2, 4, 1, ' ', 0)

	fmt.Fprint(tw, "#\tالاسم")
	for _, column := range summary.Columns {
		label := column.MonthDay
		if column.Topic != "" {
			label = fmt.Sprintf("%s %s", column.MonthDay, column.Topic)
		}
		fmt.Fprintf(tw, "\t%s", label)
	}
	fmt.Fprint(tw, "\tحضور\tنسبة\n")

	for _, block := range summary.Blocks {
		fmt.Fprintf(tw, "** %s\n", block.Label)
		for _, row := range block.Rows {
			fmt.Fprintf(tw, "%d\t%s", row.Number, row.Name)
			for _, status := range row.Cells {
				fmt.Fprintf(tw, "\t%s", Glyph(status))
			}
			fmt.Fprintf(tw, "\t%d\t%d%%\n", row.PresentCount, row.Percentage)
		}
	}

	return tw.Flush()
}

// RenderSessionListsText writes the single-session report as three
// numbered name lists.
func RenderSessionListsText(w io.Writer, lists SessionLists) {
	if lists.SessionID == "" {
		fmt.Fprintln(w, "لا توجد جلسة بهذا المعرف")
		return
	}

	header := lists.Date.String()
	if lists.Topic != "" {
		header += " / " + lists.Topic
	}
	fmt.Fprintln(w, header)

	writeList := func(title string, names []string) {
		fmt.Fprintf(w, "\n%s (%d)\n", title, len(names))
		for i, name := range names {
			fmt.Fprintf(w, "  %d. %s\n", i+1, name)
		}
	}
	writeList("الحاضرون", lists.Present)
	writeList("الغائبون", lists.Absent)
	writeList("المعذورون", lists.Excused)
}
