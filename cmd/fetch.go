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

// fetchCmd implements the "fetch" command: fetch and print, no HTML output.
type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches current values from IGCP and prints them" }
func (*fetchCmd) Usage() string {
	return `ca fetch

  Fetches the current value of every configured subscription from the IGCP
  simulator and prints the summary, without generating the HTML report.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subs, err := loadSubscriptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Fetching current values from IGCP...")
	if failures := igcp.Fetch(os.Stdout, igcp.NewClient(), date.Today(), subs); failures > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d of %d subscriptions failed to fetch\n", failures, len(subs))
	}

	fmt.Println()
	fmt.Println(renderer.SummaryMarkdown(subs, aforro.Summarize(subs)))
	return subcommands.ExitSuccess
}
