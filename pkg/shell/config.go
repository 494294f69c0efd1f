package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config keeps the preferences read from the rc file.
type Config struct {
	// Prompt shown before each line when stdin is a terminal.
	Prompt string `yaml:"prompt"`
	// Written before each result.
	ResultPrefix string `yaml:"result-prefix"`
	// Whether commands are recorded in the history database.
	History bool `yaml:"history"`
	// Statements evaluated at the start of each interactive session.
	Preload []string `yaml:"preload"`
}

func defaultConfig() Config {
	return Config{Prompt: "dumbjshell> ", ResultPrefix: "==> ", History: true}
}

// Reads the config from a YAML file. Fields missing from the file keep their
// default values. A nonexistent file is not an error. On error, the default
// config is returned.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&cfg)
	if err != nil && err != io.EOF {
		return defaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
