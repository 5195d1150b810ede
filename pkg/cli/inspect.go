package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/orgdir-lab/orgdir/pkg/cli/config"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
	"github.com/orgdir-lab/orgdir/pkg/service/source"
	"github.com/urfave/cli/v3"
)

// cmdInspect validates a users document and prints a per-department summary.
// This is a developer tool; the server itself loads the document without a
// validation pass.
func cmdInspect() *cli.Command {
	var path string
	var colorsCfg config.Colors

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "users-file",
			Usage:       "Path to the users JSON document",
			Required:    true,
			Sources:     cli.EnvVars("ORGDIR_USERS_FILE"),
			Destination: &path,
		},
	}
	flags = append(flags, colorsCfg.Flags()...)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Validate a users document and summarize its departments",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			src, err := source.NewFile(path)
			if err != nil {
				return err
			}

			users, err := src.Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load users document")
			}

			colors, err := colorsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load color table")
			}

			seen := make(map[types.UserID]bool)
			departments := make(map[string]int)
			var invalid int

			for i, u := range users {
				if err := u.Validate(); err != nil {
					color.Red("  record %d: %v", i, err)
					invalid++
					continue
				}
				if seen[u.ID] {
					color.Red("  record %d: duplicate uid %q", i, u.ID)
					invalid++
					continue
				}
				seen[u.ID] = true
				departments[u.JobTitle]++
			}

			bold := color.New(color.Bold)
			bold.Printf("Records: %d\n", len(users))
			if invalid > 0 {
				color.Red("Invalid records: %d", invalid)
			}

			names := make([]string, 0, len(departments))
			for name := range departments {
				names = append(names, name)
			}
			sort.Strings(names)

			bold.Println("Departments:")
			cyan := color.New(color.FgCyan)
			for _, name := range names {
				label := name
				if label == "" {
					label = "(none)"
				}
				cyan.Printf("  %-32s", label)
				fmt.Printf("%3d members  %s\n", departments[name], colors.Resolve(name))
			}

			if invalid > 0 {
				return goerr.New("users document has invalid records", goerr.V("invalid", invalid))
			}
			return nil
		},
	}
}
