package main

import (
	"encoding/json"
	"io/ioutil"
	"runtime"

	"github.com/inconshreveable/log15"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Log    LogConfig
	Output OutputConfig
	Batch  BatchConfig
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  flagLogLevel.String(),
			Format: flagLogFormat.String(),
		},
		Output: OutputConfig{Format: flagOutputFormat.String()},
		Batch:  BatchConfig{Workers: runtime.NumCPU()},
	}
}

func newConfigFromBytes(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}

	c = c.merge(defaultConfig())

	if err := c.IsValid(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func loadConfig(f string) (Config, error) {
	b, err := ioutil.ReadFile(f)
	if err != nil {
		return Config{}, err
	}

	return newConfigFromBytes(b)
}

func (c Config) String() string {
	b, _ := json.Marshal(c)
	return string(b)
}

func (c Config) IsValid() error {
	if err := c.Log.IsValid(); err != nil {
		return err
	}

	if err := c.Output.IsValid(); err != nil {
		return err
	}

	return c.Batch.IsValid()
}

func (c Config) merge(d Config) Config {
	c.Log = c.Log.merge(d.Log)
	c.Output = c.Output.merge(d.Output)
	c.Batch = c.Batch.merge(d.Batch)

	return c
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Out    string `yaml:"out"`
}

func (lc LogConfig) IsValid() error {
	if _, err := log15.LvlFromString(lc.Level); err != nil {
		return xerrors.Errorf("invalid log level; level=%q", lc.Level)
	}

	var f FlagLogFormat
	return f.Set(lc.Format)
}

func (lc LogConfig) merge(d LogConfig) LogConfig {
	if len(lc.Level) < 1 {
		lc.Level = d.Level
	}

	if len(lc.Format) < 1 {
		lc.Format = d.Format
	}

	if len(lc.Out) < 1 {
		lc.Out = d.Out
	}

	return lc
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

func (oc OutputConfig) IsValid() error {
	var f FlagOutputFormat
	return f.Set(oc.Format)
}

func (oc OutputConfig) merge(d OutputConfig) OutputConfig {
	if len(oc.Format) < 1 {
		oc.Format = d.Format
	}

	return oc
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

func (bc BatchConfig) IsValid() error {
	if bc.Workers < 1 {
		return xerrors.Errorf("Workers should be greater than 0; Workers=%d", bc.Workers)
	}

	return nil
}

func (bc BatchConfig) merge(d BatchConfig) BatchConfig {
	if bc.Workers == 0 {
		bc.Workers = d.Workers
	}

	return bc
}
