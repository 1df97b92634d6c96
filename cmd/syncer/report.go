package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"tour_sync/internal/domain"
)

var outcomeOrder = []domain.OutcomeStatus{
	domain.OutcomeUpdated,
	domain.OutcomeNoToursFound,
	domain.OutcomeNoNearbyRegion,
	domain.OutcomeSkippedNoCoords,
	domain.OutcomeError,
}

// printReport writes one line per outcome in batch order, then a summary.
func printReport(w io.Writer, report *domain.BatchReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "run %s\t%d sites\t%s\n", report.RunID, len(report.Outcomes), report.Duration.Round(time.Millisecond))
	for _, o := range report.Outcomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.SiteID, o.Status, outcomeDetail(o))
	}

	counts := report.Counts()
	fmt.Fprint(tw, "summary:")
	for _, status := range outcomeOrder {
		fmt.Fprintf(tw, " %s=%d", status, counts[status])
	}
	fmt.Fprintln(tw)

	return tw.Flush()
}

func outcomeDetail(o domain.SyncOutcome) string {
	switch o.Status {
	case domain.OutcomeUpdated:
		return fmt.Sprintf("%d tours", o.ToursFound)
	case domain.OutcomeError:
		return o.Error
	default:
		return o.SiteName
	}
}
