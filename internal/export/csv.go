package export

import (
	"io"

	"github.com/gocarina/gocsv"

	"acadcal/internal/model"
)

const dateLayout = "2006-01-02"

type csvRow struct {
	TermCode int    `csv:"term_code"`
	Year     int    `csv:"year"`
	Semester string `csv:"semester"`
	Event    string `csv:"event"`
	Date     string `csv:"date"`
	Tags     string `csv:"tags"`
}

// CSV writes the rows as a CSV document with a header line.
func CSV(events []model.Event, w io.Writer) error {
	rows := make([]csvRow, len(events))
	for i, ev := range events {
		rows[i] = csvRow{
			TermCode: int(ev.Term),
			Year:     ev.Year,
			Semester: string(ev.Semester),
			Event:    ev.Name,
			Date:     ev.Date.Format(dateLayout),
			Tags:     ev.Tags.String(),
		}
	}
	return gocsv.Marshal(&rows, w)
}
