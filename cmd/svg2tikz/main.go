package main

import (
	"os"

	"github.com/jeff-blank/svg2tikz/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "svg2tikz",
		Usage:     "convert a simple SVG drawing into TikZ commands",
		ArgsUsage: "<file.svg>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "debug-level logging",
			},
			&cli.StringFlag{
				Name:    "conf",
				Aliases: []string{"c"},
				Value:   config.DefaultFile,
				Usage:   "configuration file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write TikZ to `FILE` instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "standalone",
				Aliases: []string{"s"},
				Usage:   "emit a complete standalone LaTeX document",
			},
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Usage:   "unit for coordinates when the drawing declares none (default \"mm\")",
			},
			&cli.StringFlag{
				Name:    "font",
				Aliases: []string{"f"},
				Usage:   "TrueType `FILE` used to size text nodes",
			},
			&cli.StringFlag{
				Name:  "select",
				Usage: "convert only the element with this `ID`",
			},
		},
		Action: convert,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
