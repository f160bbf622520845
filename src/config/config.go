package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lifeboard/src/grid"
)

//default options, they reproduce the reference board: 1600x600 px split in 120 columns, one generation every 50ms
const (
	DefWidth           = 1600
	DefHeight          = 600
	DefCols            = 120
	DefInterval        = time.Millisecond * 50
	DefMaxSkippedTicks = 5
	DefLogLevel        = "info"
)

//Template declares an extra template in the configuration file.
//Cells is column-major: cells[col][row]
type Template struct {
	Name  string  `yaml:"name"`
	Descr string  `yaml:"descr"`
	Col   int     `yaml:"col"`
	Row   int     `yaml:"row"`
	Cells [][]int `yaml:"cells"`
}

//Config is the application configuration, loadable from a YAML file
type Config struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	Cols            int           `yaml:"cols"`
	Interval        time.Duration `yaml:"interval"`
	Seed            int64         `yaml:"seed"`    //0 picks a time based seed
	Workers         int           `yaml:"workers"` //more than 1 computes steps in parallel
	MaxSteps        int           `yaml:"max_steps"`
	MaxSkippedTicks int           `yaml:"max_skipped_ticks"`
	StopWhenStable  bool          `yaml:"stop_when_stable"`
	DarkMode        bool          `yaml:"dark_mode"`
	LogLevel        string        `yaml:"log_level"`
	LogFile         string        `yaml:"log_file"`
	Templates       []Template    `yaml:"templates"`
}

//Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Width:           DefWidth,
		Height:          DefHeight,
		Cols:            DefCols,
		Interval:        DefInterval,
		MaxSkippedTicks: DefMaxSkippedTicks,
		DarkMode:        true,
		LogLevel:        DefLogLevel,
	}
}

//Load reads the YAML file at path on top of the defaults
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "[config.Load] failed to read file: %s", path)
	}
	if err = yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "[config.Load] failed to parse file: %s", path)
	}
	return c, nil
}

//Validate checks the values which would prevent a board from being built
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(grid.ErrInvalidConfiguration, "board size %vx%v", c.Width, c.Height)
	}
	if c.Cols <= 0 {
		return errors.Wrapf(grid.ErrInvalidConfiguration, "cols %d", c.Cols)
	}
	if c.Interval < 0 {
		return errors.Wrapf(grid.ErrInvalidConfiguration, "interval %v", c.Interval)
	}
	if c.MaxSteps < 0 || c.MaxSkippedTicks < 0 {
		return errors.Wrapf(grid.ErrInvalidConfiguration, "max steps %d, max skipped ticks %d", c.MaxSteps, c.MaxSkippedTicks)
	}
	for i, t := range c.Templates {
		if t.Name == "" {
			return errors.Wrapf(grid.ErrInvalidConfiguration, "template #%d has no name", i)
		}
	}
	return nil
}
