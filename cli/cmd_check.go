package main

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/meisterluk/intact-go/internals"
	v1 "github.com/meisterluk/intact-go/v1"
	"gopkg.in/alecthomas/kingpin.v2"
)

// CheckCommand defines the CLI command parameters
type CheckCommand struct {
	Directory            string   `json:"dir"`
	Update               bool     `json:"update"`
	Baseline             string   `json:"baseline"`
	HashAlgorithm        string   `json:"hash-algorithm"`
	ExcludeBasename      []string `json:"exclude-basename"`
	ExcludeBasenameRegex []string `json:"exclude-basename-regex"`
	ExcludeTree          []string `json:"exclude-tree"`
	FailOnChange         bool     `json:"fail-on-change"`
	ConfigFile           string   `json:"config-file"`
	ConfigOutput         bool     `json:"config"`
	JSONOutput           bool     `json:"json"`
	Help                 bool     `json:"help"`

	now func() time.Time
}

// cliCheckCommand defines the CLI arguments as kingpin requires them
type cliCheckCommand struct {
	cmd                  *kingpin.CmdClause
	DirArg               *string
	DirFlag              *string
	Update               *bool
	Baseline             *string
	HashAlgorithm        *string
	ExcludeBasename      *[]string
	ExcludeBasenameRegex *[]string
	ExcludeTree          *[]string
	FailOnChange         *bool
	ConfigFile           *string
	ConfigOutput         *bool
	JSONOutput           *bool
}

func newCLICheckCommand(app *kingpin.Application) *cliCheckCommand {
	c := new(cliCheckCommand)
	c.cmd = app.Command("check", "Compare the files of a directory with the stored baseline.").Default()

	c.DirArg = c.cmd.Arg("dir", "directory to scan").String()
	c.DirFlag = c.cmd.Flag("dir", "directory to scan (alternative to the positional argument)").Short('d').String()
	c.Update = c.cmd.Flag("update", "update stored hashes after scan").Short('u').Bool()
	c.Baseline = c.cmd.Flag("baseline", "baseline file storing the hashes").Short('b').String()
	c.HashAlgorithm = c.cmd.Flag("hash-algorithm", "hash algorithm to use").Short('a').String()
	c.ExcludeBasename = c.cmd.Flag("exclude-basename", "any file with this particular filename is ignored").Strings()
	c.ExcludeBasenameRegex = c.cmd.Flag("exclude-basename-regex", "exclude files with name matching given POSIX regex").Strings()
	c.ExcludeTree = c.cmd.Flag("exclude-tree", "exclude folder and subfolders of given path relative to dir").Strings()
	c.FailOnChange = c.cmd.Flag("fail-on-change", "exit with code 3 if any file changed").Bool()
	c.ConfigFile = c.cmd.Flag("config-file", "YAML file with default settings").String()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

func (c *cliCheckCommand) Validate() (*CheckCommand, error) {
	// validity checks (check conditions not covered by kingpin)
	if *c.DirArg != "" && *c.DirFlag != "" && *c.DirArg != *c.DirFlag {
		return nil, fmt.Errorf("cannot accept positional dir '%s' and --dir '%s' simultaneously", *c.DirArg, *c.DirFlag)
	}

	conf, err := readConfigFile(*c.ConfigFile)
	if err != nil {
		return nil, err
	}

	// migrate cliCheckCommand to CheckCommand
	cmd := new(CheckCommand)
	cmd.now = time.Now
	cmd.Directory = firstNonEmpty(*c.DirArg, *c.DirFlag)
	cmd.Update = *c.Update
	cmd.Baseline = firstNonEmpty(*c.Baseline, conf.Baseline, envOr(envBaseline, internals.DefaultBaselineFile))
	cmd.HashAlgorithm = firstNonEmpty(*c.HashAlgorithm, conf.HashAlgorithm, envOr(envHashAlgorithm, string(internals.DefaultHash)))
	cmd.ExcludeBasename = append(append(make([]string, 0), conf.ExcludeBasename...), *c.ExcludeBasename...)
	cmd.ExcludeBasenameRegex = append(append(make([]string, 0), conf.ExcludeBasenameRegex...), *c.ExcludeBasenameRegex...)
	cmd.ExcludeTree = append(append(make([]string, 0), conf.ExcludeTree...), *c.ExcludeTree...)
	cmd.FailOnChange = *c.FailOnChange || conf.FailOnChange
	cmd.ConfigFile = *c.ConfigFile
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput || conf.JSON
	cmd.Help = false

	// handle environment variables
	if !cmd.JSONOutput {
		if envJSONOutput, errJSON := envToBool(envJSON); errJSON == nil {
			cmd.JSONOutput = envJSONOutput
		}
	}

	// validity check 2
	if cmd.Directory == "" {
		return cmd, fmt.Errorf("directory to scan is required")
	}
	algo, err := internals.HashAlgorithmFromString(cmd.HashAlgorithm)
	if err != nil {
		return cmd, err
	}
	cmd.HashAlgorithm = string(algo)
	if _, err := internals.CompileBasenameRegexes(cmd.ExcludeBasenameRegex); err != nil {
		return cmd, err
	}

	return cmd, nil
}

// Run executes the CLI command check on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a triple (exit code, error)
func (c *CheckCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return exitFailure, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return exitOK, nil
	}

	// reject a missing target before the baseline file is touched
	if err := v1.ValidateTarget(c.Directory); err != nil {
		return exitUsage, err
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	reporter := internals.NewReporter(w, log, c.JSONOutput, c.Directory, internals.HashAlgo(c.HashAlgorithm), c.Baseline, now())
	if err := reporter.Start(); err != nil {
		return exitFailure, err
	}

	result, err := v1.Check(v1.CheckParameters{
		Directory:            c.Directory,
		Baseline:             c.Baseline,
		HashAlgorithm:        c.HashAlgorithm,
		ExcludeBasename:      c.ExcludeBasename,
		ExcludeBasenameRegex: c.ExcludeBasenameRegex,
		ExcludeTree:          c.ExcludeTree,
		Warn:                 reporter.Warning,
	})
	if err != nil {
		return exitUsage, err
	}

	reporter.Statistics(result.Statistics)
	if err := reporter.Results(result.Classification); err != nil {
		return exitFailure, err
	}

	exitCode := exitOK
	if c.Update {
		if err := v1.UpdateBaseline(c.Baseline, result.Current); err != nil {
			// the comparison has been shown already, so this is only reported
			reporter.Warning(err)
			exitCode = exitFailure
		} else if err := reporter.Updated(); err != nil {
			return exitFailure, err
		}
	}

	if err := reporter.Finish(); err != nil {
		return exitFailure, err
	}

	if exitCode == exitOK && c.FailOnChange && !result.Classification.Intact() {
		exitCode = exitChangesFound
	}
	return exitCode, nil
}
