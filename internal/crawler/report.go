package crawler

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// printReport renders the per extractor triple counts of a run
func printReport(w io.Writer, res Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Extractor", "Triples"})

	for _, entry := range res.Report {
		table.Append([]string{entry.Extractor, strconv.Itoa(entry.Triples)})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(res.Report.Total())})
	table.Render()

	_, _ = fmt.Fprintf(w, "%s (%s) written to %s\n", res.DocumentURI, res.Format, res.Path)
}
