package config

import (
	"os"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Colors holds CLI flags for the department color table
type Colors struct {
	path string
}

// colorTable is the TOML shape of a department color configuration file:
//
//	[[department]]
//	name = "Finance"
//	color = "#4CAF50"
type colorTable struct {
	Departments []departmentColor `toml:"department"`
}

type departmentColor struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks if the entry is valid
func (d *departmentColor) Validate() error {
	if d.Name == "" {
		return goerr.Wrap(ErrInvalidColorTable, "department name is required")
	}
	if !hexColorPattern.MatchString(d.Color) {
		return goerr.Wrap(ErrInvalidColorTable, "color must be a #RRGGBB hex value",
			goerr.V("name", d.Name), goerr.V("color", d.Color))
	}
	return nil
}

// Flags returns CLI flags for color table configuration
func (x *Colors) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "colors-file",
			Usage:       "Path to a TOML department color table (built-in table when empty)",
			Category:    "Colors",
			Sources:     cli.EnvVars("ORGDIR_COLORS_FILE"),
			Destination: &x.path,
		},
	}
}

// Configure loads the department color table. Without a configured file the
// built-in table is used.
func (x *Colors) Configure() (*model.ColorMap, error) {
	if x.path == "" {
		return model.DefaultColorMap(), nil
	}

	// #nosec G304 -- path comes from a CLI flag, not user input
	data, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read color table", goerr.V("path", x.path))
	}

	var table colorTable
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, goerr.Wrap(err, "failed to parse color table", goerr.V("path", x.path))
	}

	entries := make(map[string]model.Color, len(table.Departments))
	for _, d := range table.Departments {
		if err := d.Validate(); err != nil {
			return nil, goerr.Wrap(err, "color table validation failed", goerr.V("path", x.path))
		}
		if _, exists := entries[d.Name]; exists {
			return nil, goerr.Wrap(ErrDuplicateDepartment, "color table validation failed",
				goerr.V("path", x.path), goerr.V("name", d.Name))
		}
		entries[d.Name] = model.Color(d.Color)
	}

	return model.NewColorMap(entries), nil
}
