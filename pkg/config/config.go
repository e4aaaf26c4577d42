package config

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultFile is read when no configuration file is named explicitly.
const DefaultFile = "svg2tikz.yml"

type Config struct {
	Unit       string  `yaml:"unit"`
	Standalone bool    `yaml:"standalone"`
	Debug      bool    `yaml:"debug"`
	Output     string  `yaml:"output"`
	FontFile   string  `yaml:"font_file"`
	FontDPI    float64 `yaml:"font_dpi"`
	Select     string  `yaml:"select"`
}

func Default() *Config {
	return &Config{
		Unit:    "mm",
		FontDPI: 72,
	}
}

// New reads configFile on top of the defaults. A missing file is only an
// error when mustExist is set.
func New(configFile string, mustExist bool) (*Config, error) {
	config := Default()

	yamlcfg, err := ioutil.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			log.Debugf("config file '%s' not found, using defaults", configFile)
			return config, nil
		}
		return nil, errors.Wrapf(err, "read config file '%s'", configFile)
	}

	if err := yaml.Unmarshal(yamlcfg, config); err != nil {
		return nil, errors.Wrapf(err, "parse config file '%s'", configFile)
	}
	if config.Unit == "" {
		config.Unit = "mm"
	}
	if config.FontDPI <= 0 {
		config.FontDPI = 72
	}

	return config, nil
}
