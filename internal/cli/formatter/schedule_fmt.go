package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/domain"
)

// FormatSchedule renders the day-by-day schedule of one project set.
func FormatSchedule(resp *app.ScheduleResponse, plain bool) string {
	headers := []string{"DATE", "CITY", "DAY", "PRICE"}
	rows := make([][]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		if plain {
			rows = append(rows, []string{domain.FormatDate(d.Date), string(d.Tier), string(d.Type), strconv.Itoa(d.Price)})
			continue
		}
		rows = append(rows, []string{domain.FormatDate(d.Date), TierBadge(d.Tier), DayTypePill(d.Type), strconv.Itoa(d.Price)})
	}

	var b strings.Builder
	if plain {
		fmt.Fprintf(&b, "Schedule: %s\n\n", describe(resp.Report.Description))
		if len(resp.Projects) > 0 {
			b.WriteString(RenderPlainTable(projectHeaders, projectRows(resp.Projects, true)))
			b.WriteString("\n")
		}
		if len(rows) == 0 {
			b.WriteString("No billable days.\n")
		} else {
			b.WriteString(RenderPlainTable(headers, rows))
		}
		b.WriteString("\nRuns:\n")
		for _, run := range resp.Runs {
			fmt.Fprintf(&b, "  %s - %s (%s)\n", domain.FormatDate(run.Start), domain.FormatDate(run.End), Plural(run.Days, "day"))
		}
		fmt.Fprintf(&b, "\nTOTAL FEES: %d\n", resp.Report.Total)
		return b.String()
	}

	b.WriteString(Header("Schedule: " + describe(resp.Report.Description)))
	b.WriteString("\n\n")
	if len(resp.Projects) > 0 {
		b.WriteString(RenderTable(projectHeaders, projectRows(resp.Projects, false)))
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(Dim("No billable days."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTable(headers, rows))
	}
	b.WriteString("\n")
	b.WriteString(Header("Runs"))
	b.WriteString("\n")
	for _, run := range resp.Runs {
		fmt.Fprintf(&b, "  %s %s %s\n",
			domain.FormatDate(run.Start),
			Dim("→ "+domain.FormatDate(run.End)),
			Dim("("+Plural(run.Days, "day")+")"))
	}
	fmt.Fprintf(&b, "\n%s %s\n", Bold("TOTAL FEES:"), StyleGreen.Render(strconv.Itoa(resp.Report.Total)))
	return b.String()
}

var projectHeaders = []string{"PROJECT", "CITY", "START", "END", "DAYS"}

// projectRows lists the input projects with their dates as written.
func projectRows(projects []app.ProjectView, plain bool) [][]string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		name, tier := p.Name, string(p.Tier)
		if !plain {
			name, tier = StyleFg.Render(name), TierBadge(p.Tier)
		}
		rows = append(rows, []string{name, tier, p.StartRaw, p.EndRaw, strconv.Itoa(p.Days)})
	}
	return rows
}
