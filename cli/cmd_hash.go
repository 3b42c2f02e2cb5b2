package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/meisterluk/intact-go/internals"
	v1 "github.com/meisterluk/intact-go/v1"
	"gopkg.in/alecthomas/kingpin.v2"
)

// HashCommand defines the CLI command parameters
type HashCommand struct {
	File          string `json:"file"`
	HashAlgorithm string `json:"hash-algorithm"`
	ConfigOutput  bool   `json:"config"`
	JSONOutput    bool   `json:"json"`
	Help          bool   `json:"help"`

	stdin io.Reader
}

// cliHashCommand defines the CLI arguments as kingpin requires them
type cliHashCommand struct {
	cmd           *kingpin.CmdClause
	File          *string
	HashAlgorithm *string
	ConfigOutput  *bool
	JSONOutput    *bool
}

func newCLIHashCommand(app *kingpin.Application) *cliHashCommand {
	c := new(cliHashCommand)
	c.cmd = app.Command("hash", "Give the fingerprint of an individual file.")

	c.File = c.cmd.Arg("file", "file to hash, stdin if omitted").Default("-").String()
	c.HashAlgorithm = c.cmd.Flag("hash-algorithm", "hash algorithm to use").Default(envOr(envHashAlgorithm, string(internals.DefaultHash))).Short('a').String()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

func (c *cliHashCommand) Validate() (*HashCommand, error) {
	algo, err := internals.HashAlgorithmFromString(*c.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	// migrate cliHashCommand to HashCommand
	cmd := new(HashCommand)
	cmd.File = firstNonEmpty(*c.File, "-")
	cmd.HashAlgorithm = string(algo)
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput
	cmd.Help = false
	cmd.stdin = os.Stdin

	// handle environment variables
	if !cmd.JSONOutput {
		if envJSONOutput, errJSON := envToBool(envJSON); errJSON == nil {
			cmd.JSONOutput = envJSONOutput
		}
	}

	return cmd, nil
}

// Run executes the CLI command hash on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a triple (exit code, error)
func (c *HashCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return exitFailure, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return exitOK, nil
	}

	var fp v1.Fingerprint
	var err error
	if c.File == "-" {
		fp, err = internals.HashReader(c.stdin, internals.HashAlgo(c.HashAlgorithm))
	} else {
		fp, err = v1.HashOfFile(c.File, c.HashAlgorithm)
	}
	if err != nil {
		return exitFailure, err
	}

	if c.JSONOutput {
		type jsonResult struct {
			Fingerprint   string `json:"fingerprint"`
			File          string `json:"file"`
			HashAlgorithm string `json:"hash-algorithm"`
		}
		b, err := json.Marshal(&jsonResult{Fingerprint: string(fp), File: c.File, HashAlgorithm: c.HashAlgorithm})
		if err != nil {
			return exitFailure, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		// same format as sha256sum and friends
		w.Printfln("%s  %s", fp, c.File)
	}

	return exitOK, nil
}
