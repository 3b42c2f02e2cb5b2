package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// configFile contains the defaults read from a YAML file given with --config-file.
// Flags take precedence over the file, the file over environment variables.
type configFile struct {
	Baseline             string   `yaml:"baseline"`
	HashAlgorithm        string   `yaml:"hash-algorithm"`
	ExcludeBasename      []string `yaml:"exclude-basename"`
	ExcludeBasenameRegex []string `yaml:"exclude-basename-regex"`
	ExcludeTree          []string `yaml:"exclude-tree"`
	JSON                 bool     `yaml:"json"`
	FailOnChange         bool     `yaml:"fail-on-change"`
}

// readConfigFile parses the YAML file at path. Unknown keys are rejected.
// An empty path returns an empty configuration.
func readConfigFile(path string) (*configFile, error) {
	conf := new(configFile)
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`could not read config file: %w`, err)
	}
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return nil, fmt.Errorf(`could not parse config file '%s': %w`, path, err)
	}
	return conf, nil
}
