package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	v1 "github.com/meisterluk/intact-go/v1"
	"gopkg.in/alecthomas/kingpin.v2"
)

// CLI response for errors
type errorResponse struct {
	ErrorMessage string `json:"error"`
	ExitCode     int    `json:"-"`
}

func (e *errorResponse) Print(log Output, jsonOutput bool) int {
	if jsonOutput {
		log.Println(e.JSON())
	} else {
		log.Println(e.String())
	}
	return e.ExitCode
}

func (e *errorResponse) String() string {
	return `cli: error: ` + e.ErrorMessage
}

func (e *errorResponse) JSON() string {
	jsonBytes, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, e.ErrorMessage)
	}
	return string(jsonBytes)
}

// application bundles the kingpin application with its subcommands
type application struct {
	app       *kingpin.Application
	check     *cliCheckCommand
	hash      *cliHashCommand
	hashAlgos *cliHashAlgosCommand
	version   *cliVersionCommand
}

func newApplication(stdout, stderr io.Writer) *application {
	a := new(application)
	a.app = kingpin.New("intact", "Detect modified, new and missing files by comparing content hashes against a stored baseline.")
	a.app.Version(v1.Version()).Author("meisterluk")
	a.app.HelpFlag.Short('h')
	a.app.UsageTemplate(kingpin.CompactUsageTemplate)
	a.app.UsageWriter(stdout)
	a.app.ErrorWriter(stderr)

	a.check = newCLICheckCommand(a.app)
	a.hash = newCLIHashCommand(a.app)
	a.hashAlgos = newCLIHashAlgosCommand(a.app)
	a.version = newCLIVersionCommand(a.app)
	return a
}

// Was the JSON output format requested?
func jsonOutput(args []string) bool {
	for _, arg := range args {
		if arg == "--json" {
			return true
		}
	}
	if val, err := envToBool(envJSON); err == nil {
		return val
	}
	return false
}

// runner is implemented by every validated command
type runner interface {
	Run(w Output, log Output) (int, error)
}

// cli runs the command line interface with the given arguments
// (without program name) and returns the exit code
func cli(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	w := newPlainOutput(stdout)
	log := newPlainOutput(stderr)
	a := newApplication(stdout, stderr)
	asJSON := jsonOutput(args)

	subcommand, err := a.app.Parse(args)
	if err != nil {
		resp := &errorResponse{err.Error(), exitUsage}
		return resp.Print(log, asJSON)
	}

	var cmd runner
	switch subcommand {
	case a.check.cmd.FullCommand():
		cmd, err = a.check.Validate()
	case a.hash.cmd.FullCommand():
		var hashCmd *HashCommand
		hashCmd, err = a.hash.Validate()
		if err == nil {
			hashCmd.stdin = stdin
			cmd = hashCmd
		}
	case a.hashAlgos.cmd.FullCommand():
		cmd, err = a.hashAlgos.Validate()
	case a.version.cmd.FullCommand():
		cmd, err = a.version.Validate()
	default:
		err = fmt.Errorf("unknown command '%s'", subcommand)
	}
	if err != nil {
		resp := &errorResponse{err.Error(), exitUsage}
		return resp.Print(log, asJSON)
	}

	exitCode, err := cmd.Run(w, log)
	if err != nil {
		resp := &errorResponse{err.Error(), exitCode}
		return resp.Print(log, asJSON)
	}
	return exitCode
}

func main() {
	os.Exit(cli(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
