package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/meisterluk/intact-go/internals"
	v1 "github.com/meisterluk/intact-go/v1"
	"gopkg.in/alecthomas/kingpin.v2"
)

// VersionCommand defines the CLI command parameters
type VersionCommand struct {
	ConfigOutput bool `json:"config"`
	JSONOutput   bool `json:"json"`
	Help         bool `json:"help"`
}

// VersionJSONResult is a struct used to serialize JSON output
type VersionJSONResult struct {
	Version     string   `json:"version"`
	ReleaseDate string   `json:"release-date"`
	License     string   `json:"license"`
	Author      string   `json:"author"`
	HashAlgos   []string `json:"hash-algorithms"`
	Bugs        string   `json:"bugs"`
}

// cliVersionCommand defines the CLI arguments as kingpin requires them
type cliVersionCommand struct {
	cmd          *kingpin.CmdClause
	ConfigOutput *bool
	JSONOutput   *bool
}

func newCLIVersionCommand(app *kingpin.Application) *cliVersionCommand {
	c := new(cliVersionCommand)
	c.cmd = app.Command("version", "Returns metadata about this implementation.")

	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

func (c *cliVersionCommand) Validate() (*VersionCommand, error) {
	cmd := new(VersionCommand)
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput
	cmd.Help = false

	// handle environment variables
	if !cmd.JSONOutput {
		if envJSONOutput, errJSON := envToBool(envJSON); errJSON == nil {
			cmd.JSONOutput = envJSONOutput
		}
	}

	return cmd, nil
}

const humanReadableRepresentation = `version:           %s
release date:      %s
license:           %s
author:            %s
report bugs to:    %s

hash algorithms:
(* denotes default algorithm)
`

// Run executes the CLI command version on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a triple (exit code, error)
func (c *VersionCommand) Run(w, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return exitFailure, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return exitOK, nil
	}

	data := VersionJSONResult{
		Version:     v1.Version(),
		ReleaseDate: v1.RELEASE_DATE,
		License:     v1.LICENSE,
		Author:      `meisterluk`,
		HashAlgos:   v1.SupportedHashAlgorithms(),
		Bugs:        `https://github.com/meisterluk/intact-go/issues/`,
	}

	if c.JSONOutput {
		jsonRepr, err := json.MarshalIndent(&data, "", "  ")
		if err != nil {
			return exitFailure, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
		return exitOK, nil
	}

	w.Printf(humanReadableRepresentation, data.Version, data.ReleaseDate, data.License, data.Author, data.Bugs)
	for _, name := range data.HashAlgos {
		isDefault := ""
		if name == string(internals.DefaultHash) {
			isDefault = " *"
		}
		w.Printfln("\t%s%s", name, isDefault)
	}
	return exitOK, nil
}
