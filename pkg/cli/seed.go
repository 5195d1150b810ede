package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
	"github.com/orgdir-lab/orgdir/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

var seedNames = []string{
	"Jordan Lee", "Sam Park", "Riley Chen", "Alex Kim", "Casey Ito",
	"Morgan Sato", "Drew Tanaka", "Quinn Mori", "Avery Ono", "Robin Kato",
}

var seedDepartments = []string{
	"Research and Development", "Finance", "Human Resources", "Marketing",
}

// cmdSeed writes a sample users document for local development.
func cmdSeed() *cli.Command {
	var output string
	var count int

	return &cli.Command{
		Name:  "seed",
		Usage: "Generate a sample users document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path",
				Value:       "users.json",
				Destination: &output,
			},
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "Number of records to generate",
				Value:       10,
				Destination: &count,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if count <= 0 {
				return goerr.New("count must be positive", goerr.V("count", count))
			}

			users := make([]*model.User, count)
			for i := range users {
				name := seedNames[i%len(seedNames)]
				users[i] = &model.User{
					ID:          types.UserID(uuid.NewString()),
					DisplayName: name,
					Email:       fmt.Sprintf("member%d@example.com", i+1),
					JobTitle:    seedDepartments[i%len(seedDepartments)],
				}
				// leave some records without email to exercise the
				// no-enrichment path
				if i%5 == 4 {
					users[i].Email = ""
				}
			}

			data, err := json.MarshalIndent(users, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal sample users")
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return goerr.Wrap(err, "failed to write sample users", goerr.V("path", output))
			}

			logging.Default().Info("Sample users document written", "path", output, "count", count)
			return nil
		},
	}
}
