package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/daybill/internal/app"
	"github.com/alexanderramin/daybill/internal/domain"
)

// FormatReport renders the billing report for every evaluated project set.
func FormatReport(reports []app.SetReport, plain bool) string {
	if plain {
		return formatReportPlain(reports)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Review %s", Plural(len(reports), "project set"))))
	b.WriteString("\n\n")
	for _, r := range reports {
		b.WriteString(FormatSetReport(r))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSetReport renders one project set as a boxed summary.
func FormatSetReport(r app.SetReport) string {
	rows := make([][]string, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		rows = append(rows, []string{
			TierBadge(tier),
			strconv.Itoa(r.Counts.Get(tier, domain.DayTravel)),
			strconv.Itoa(r.Counts.Get(tier, domain.DayFull)),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n",
		Dim(Plural(r.Projects, "project")),
		Dim(Plural(r.Days, "day")))
	b.WriteString(RenderTable([]string{"CITY", "TRAVEL", "FULL"}, rows))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Full days"), RenderProgress(FullDayShare(r.Counts.LowFull+r.Counts.HighFull, r.Days), 20))
	fmt.Fprintf(&b, "%s %s", Bold("TOTAL FEES:"), StyleGreen.Render(strconv.Itoa(r.Total)))

	return RenderBox(describe(r.Description), b.String())
}

func formatReportPlain(reports []app.SetReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Review %d project set(s).\n", len(reports))
	for _, r := range reports {
		fmt.Fprintf(&b, "\nGroup: %s\n", describe(r.Description))
		fmt.Fprintf(&b, "Projects: %d\n", r.Projects)
		b.WriteString("Low Cost City Days:\n")
		fmt.Fprintf(&b, "  Travel Days: %d\n", r.Counts.LowTravel)
		fmt.Fprintf(&b, "  Full Days: %d\n", r.Counts.LowFull)
		b.WriteString("High Cost City Days:\n")
		fmt.Fprintf(&b, "  Travel Days: %d\n", r.Counts.HighTravel)
		fmt.Fprintf(&b, "  Full Days: %d\n", r.Counts.HighFull)
		fmt.Fprintf(&b, "TOTAL FEES: %d\n", r.Total)
	}
	return b.String()
}
