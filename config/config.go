package config

import (
	"os"
	"path"
	"path/filepath"

	"dvorakwords/pkg/wordlist"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when the configuration can't be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Configuration represents a configuration element
type Configuration struct {
	WordList string
	LogLevel string
	Fs       afero.Fs       `mapstructure:"-"`
	Log      *logrus.Logger `mapstructure:"-"`
}

// GetConfig provides a Configuration from defaults, the optional config file and the environment
func GetConfig(configFile *string) (*Configuration, error) {
	c := &Configuration{}

	v := viper.New()
	v.SetDefault("WordList", wordlist.DefaultPath)
	v.SetDefault("LogLevel", "warning")

	if configFile != nil && *configFile != "" {
		d, f := path.Split(*configFile)
		if d == "" {
			d = "."
		}
		v.SetConfigName(f[0 : len(f)-len(filepath.Ext(f))])
		v.AddConfigPath(d)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "error when reading config file %s: %v", *configFile, err)
		}
	}
	v.AutomaticEnv()
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
	}

	if c.WordList == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "word list path can't be empty")
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "bad log level: %v", err)
	}

	c.Fs = afero.NewOsFs()
	c.Log = logrus.New()
	c.Log.SetOutput(os.Stderr)
	c.Log.SetLevel(level)

	return c, nil
}
