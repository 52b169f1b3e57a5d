package app

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const defaultConfig = `# adtp-go

################################## LOGGING ####################################

[logging]

#
# Logging verbosity level.
# Supported values: "DEBUG", "INFO", "WARN", "ERROR", "FATAL" or "PANIC".
#
level = "INFO"

#################################### EMIT #####################################

[emit]

#
# Protocol version stamped on messages whose directive does not declare one.
#
default_version = "ADTP/2.0"

#
# Add an X-ADTP-Message-Id header carrying a fresh UUID to every message.
#
stamp_ids = false

#
# Destination file for emitted messages. Leave empty to write to stdout.
#
output = ""

################################## METRICS ####################################

[metrics]

#
# Destination file for the build counters, written in Prometheus text
# exposition format when the stream command exits. Leave empty to disable.
#
file = ""
`

type Config struct {
	v *viper.Viper

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`

	Emit struct {
		DefaultVersion string `mapstructure:"default_version"`
		StampIDs       bool   `mapstructure:"stamp_ids"`
		Output         string `mapstructure:"output"`
	} `mapstructure:"emit"`

	Metrics struct {
		File string `mapstructure:"file"`
	} `mapstructure:"metrics"`
}

func (c Config) Validate() error {
	return nil
}

func (c Config) String() string {
	tmpfile, err := ioutil.TempFile("", "config.*.toml")
	if err != nil {
		return err.Error()
	}
	err = c.v.WriteConfigAs(tmpfile.Name())
	if err != nil {
		return err.Error()
	}
	blob, err := ioutil.ReadAll(tmpfile)
	if err != nil {
		return err.Error()
	}
	return string(blob)
}

func loadConfig(c *Config) error {
	v := viper.New()

	v.SetEnvPrefix("ADTP_GO")
	v.AutomaticEnv()

	v.SetConfigName("adtp-go")
	v.SetConfigType("toml")
	v.AddConfigPath("$HOME/.config/")
	v.AddConfigPath("/etc/adtp/")

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read our default configuration.
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		panic(err) // Not in the user path.
	}

	// Include configuration file provided by the user.
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return errors.Wrap(err, "configuration unmarshaling failed")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config did not pass validation")
	}

	c.v = v

	return nil
}
