package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"acadcal/internal/model"
)

// Table writes the rows as an aligned text table.
func Table(events []model.Event, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "TERM\tYEAR\tSEMESTER\tEVENT\tDATE\tTAGS"); err != nil {
		return err
	}
	for _, ev := range events {
		_, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			ev.Term, ev.Year, ev.Semester, ev.Name, ev.Date.Format(dateLayout), ev.Tags)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
