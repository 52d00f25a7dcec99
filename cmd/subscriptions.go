package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// subscriptionsCmd implements the "subscriptions" command: validate and list
// the configuration without any network call.
type subscriptionsCmd struct{}

func (*subscriptionsCmd) Name() string     { return "subscriptions" }
func (*subscriptionsCmd) Synopsis() string { return "validates and lists the configured subscriptions" }
func (*subscriptionsCmd) Usage() string {
	return `ca subscriptions

  Loads the subscriptions file and lists its records. Useful to check the
  configuration before a report run; no network call is made.
`
}

func (c *subscriptionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *subscriptionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	subs, err := loadSubscriptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, sub := range subs {
		fmt.Printf("%s - %s: %d units acquired on %s\n", sub.Series, sub.Number, sub.Units, sub.AcquisitionDate)
	}
	fmt.Printf("%d subscriptions in %s\n", len(subs), *subscriptionsFile)
	return subcommands.ExitSuccess
}
