package main

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/jeff-blank/svg2tikz/pkg/config"
	"github.com/jeff-blank/svg2tikz/pkg/fontmetrics"
	"github.com/jeff-blank/svg2tikz/pkg/svgxml"
	"github.com/jeff-blank/svg2tikz/pkg/tikz"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// loadConfig reads the configuration file and lets command line flags
// override it. A config file named explicitly must exist.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.New(c.String("conf"), c.IsSet("conf"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("standalone") {
		cfg.Standalone = c.Bool("standalone")
	}
	for flag, field := range map[string]*string{
		"output": &cfg.Output,
		"unit":   &cfg.Unit,
		"font":   &cfg.FontFile,
		"select": &cfg.Select,
	} {
		if c.IsSet(flag) {
			*field = c.String(flag)
		}
	}
	return cfg, nil
}

// selectElement returns a document holding only the element with the
// given id. The element is wrapped in one group per transformed ancestor so
// it keeps its place in the drawing. Top-level namedviews are kept so the
// document unit still applies.
func selectElement(root *svgxml.Element, id string) (*svgxml.Element, error) {
	path := svgxml.PathTo(root, id)
	if path == nil {
		return nil, errors.Errorf("no element with id '%s'", id)
	}
	if len(path) == 1 {
		return root, nil
	}

	selected := path[len(path)-1]
	for i := len(path) - 2; i > 0; i-- {
		xform, ok := path[i].Attr("transform")
		if !ok {
			continue
		}
		selected = &svgxml.Element{
			XMLName:  xml.Name{Local: "g"},
			Attrs:    []xml.Attr{{Name: xml.Name{Local: "transform"}, Value: xform}},
			Children: []*svgxml.Element{selected},
		}
	}

	doc := *root
	doc.Children = nil
	for _, e := range root.Children {
		if e.Kind() == svgxml.KindNamedView {
			doc.Children = append(doc.Children, e)
		}
	}
	doc.Children = append(doc.Children, selected)
	return &doc, nil
}

type stdout struct{ io.Writer }

func (stdout) Close() error { return nil }

func openOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return stdout{os.Stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "create '%s'", name)
	}
	return f, nil
}

func convert(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("exactly one input file is required", 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	input := c.Args().First()
	root, err := svgxml.ReadFile(input)
	if err != nil {
		return err
	}
	if cfg.Select != "" {
		if root, err = selectElement(root, cfg.Select); err != nil {
			return err
		}
	}

	opts := []tikz.Option{
		tikz.WithUnit(cfg.Unit),
		tikz.WithStandalone(cfg.Standalone),
		tikz.WithLogger(log.WithField("input", input)),
	}
	if cfg.FontFile != "" {
		m, err := fontmetrics.Load(cfg.FontFile, cfg.FontDPI)
		if err != nil {
			return err
		}
		opts = append(opts, tikz.WithMeasurer(m))
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	if err := tikz.New(out, opts...).Convert(root); err != nil {
		out.Close()
		return errors.Wrapf(err, "convert '%s'", input)
	}
	log.Debugf("converted '%s'", input)
	return errors.Wrap(out.Close(), "close output")
}
