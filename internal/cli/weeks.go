package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/saulo-duarte/chronos-quiz/internal/catalog"
)

func PrintCatalog(out io.Writer, c *catalog.Catalog) error {
	fmt.Fprintf(out, "Full series: %d questions\n", c.FullSeriesCount)
	if c.CourseURL != "" {
		fmt.Fprintf(out, "Course material: %s\n", c.CourseURL)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tWEEK\tQUESTIONS\tLEARN")
	for _, w := range c.Weeks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", w.Index+1, w.Name, w.QuestionCount, w.LearnURL)
	}
	return tw.Flush()
}
