package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daybill/internal/app"
)

// FormatVerify renders per-set verification outcomes and a summary line.
func FormatVerify(resp *app.VerifyResponse, plain bool) string {
	var b strings.Builder
	for _, r := range resp.Results {
		fmt.Fprintf(&b, "%s %s\n", verifyLabel(r.Status, plain), describe(r.Report.Description))
		for _, m := range r.Mismatches {
			if plain {
				fmt.Fprintf(&b, "    %s\n", m)
				continue
			}
			fmt.Fprintf(&b, "    %s\n", Dim(m))
		}
	}

	summary := fmt.Sprintf("%d passed, %d failed, %d skipped", resp.Passed, resp.Failed, resp.Skipped)
	switch {
	case plain:
	case resp.Failed > 0:
		summary = StyleRed.Render(summary)
	default:
		summary = StyleGreen.Render(summary)
	}
	fmt.Fprintf(&b, "\n%s\n", summary)
	return b.String()
}

func verifyLabel(status app.VerifyStatus, plain bool) string {
	if plain {
		return strings.ToUpper(string(status)[:4])
	}
	switch status {
	case app.VerifyPassed:
		return StyleGreen.Render("✔ PASS")
	case app.VerifyFailed:
		return StyleRed.Render("✖ FAIL")
	default:
		return StyleDim.Render("⊘ SKIP")
	}
}
