// Package cmd implements the CLI application to report on savings
// certificates.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/aforro"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var subscriptionsFile = flag.String("subscriptions", "subscriptions.json", "Path to the subscriptions file (JSON format)")

// Commands is the list of subcommands available in the ca binary.
var Commands = []subcommands.Command{
	&reportCmd{},
	&fetchCmd{},
	&subscriptionsCmd{},
	&topicCmd{},
}

// loadSubscriptions loads the app subscriptions file.
func loadSubscriptions() ([]*aforro.Subscription, error) {
	subs, err := aforro.LoadSubscriptions(*subscriptionsFile)
	if err != nil {
		return nil, fmt.Errorf("could not load subscriptions: %w\nSee 'ca topic subscriptions' for the file format", err)
	}
	return subs, nil
}
