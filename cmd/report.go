package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/aforro"
	"github.com/etnz/aforro/date"
	"github.com/etnz/aforro/igcp"
	"github.com/etnz/aforro/renderer"
	"github.com/google/subcommands"
)

// reportCmd implements the "report" command: the full run.
type reportCmd struct {
	output string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "fetches current values from IGCP and generates the HTML report"
}
func (*reportCmd) Usage() string {
	return `ca report [-o <file>]

  Fetches the current value of every configured subscription from the IGCP
  simulator and writes the HTML report. A subscription whose fetch fails is
  reported and excluded from the totals; it does not abort the run.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "out/index.html", "Path of the generated HTML report")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subs, err := loadSubscriptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Fetching current values from IGCP...")
	if failures := igcp.Fetch(os.Stdout, igcp.NewClient(), date.Today(), subs); failures > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d of %d subscriptions failed to fetch\n", failures, len(subs))
	}

	summary := aforro.Summarize(subs)
	if err := renderer.WriteReport(c.output, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report generated: %s\n", c.output)

	fmt.Println()
	fmt.Println(renderer.SummaryMarkdown(subs, summary))
	return subcommands.ExitSuccess
}
