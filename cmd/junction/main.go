// Command junction answers circuit questions about a file of junction box
// coordinates, one "x,y,z" per line.
//
//	junction topk     [-edges N] [-k K] <file>
//	junction converge <file>
//	junction clusters [-edges N] [-limit L] <file>
//
// Configuration comes from JUNCTION_* environment variables, optionally
// seeded from a .env file in the working directory.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

func main() {
	app := &subcommands.DefaultApplication{
		Name:  "junction",
		Title: "Junction box circuit wiring by shortest connections",
		Commands: []*subcommands.Command{
			subcommands.CmdHelp,
			cmdTopK(),
			cmdConverge(),
			cmdClusters(),
		},
		EnvVars: map[string]subcommands.EnvVarDefinition{
			"JUNCTION_LOG_LEVEL":    {ShortDesc: "debug, info, warn or error", Default: "info"},
			"JUNCTION_LOG_FORMAT":   {ShortDesc: "console or json", Default: "console"},
			"JUNCTION_WORKERS":      {ShortDesc: "distance workers, 0 for one per CPU", Default: "0"},
			"JUNCTION_STRATEGY":     {ShortDesc: "partition strategy: scan or indexed", Default: "scan"},
			"JUNCTION_METRICS_FILE": {ShortDesc: "write Prometheus metrics to this file on exit"},
		},
	}

	os.Exit(subcommands.Run(app, nil))
}
