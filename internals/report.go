package internals

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
)

// TimestampFormat is used for timestamps in the console report
const TimestampFormat = "2006-01-02T15:04:05"

// Report contains everything shown to the user after a check
type Report struct {
	Directory     string `json:"directory"`
	Timestamp     string `json:"timestamp"`
	HashAlgorithm string `json:"hash-algorithm"`
	Baseline      string `json:"baseline"`
	Classification
	Intact     bool       `json:"intact"`
	Updated    bool       `json:"updated"`
	Statistics Statistics `json:"statistics"`
	Warnings   []string   `json:"warnings"`
}

// Reporter renders the progress and result of a check either as
// human-readable text (immediately) or as a single JSON object (on Finish).
// Results go to out, warnings go to log.
type Reporter struct {
	out        io.Writer
	log        io.Writer
	jsonOutput bool
	report     Report
}

// NewReporter returns a Reporter for a check of directory
func NewReporter(out, log io.Writer, jsonOutput bool, directory string, algo HashAlgo, baseline string, now time.Time) *Reporter {
	return &Reporter{
		out:        out,
		log:        log,
		jsonOutput: jsonOutput,
		report: Report{
			Directory:     directory,
			Timestamp:     now.Format(TimestampFormat),
			HashAlgorithm: string(algo),
			Baseline:      baseline,
			Warnings:      make([]string, 0),
		},
	}
}

// Start announces the scan
func (r *Reporter) Start() error {
	if r.jsonOutput {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "Scanning directory: %s at %s\n", r.report.Directory, r.report.Timestamp)
	return err
}

// Warning reports a non-fatal error
func (r *Reporter) Warning(err error) {
	r.report.Warnings = append(r.report.Warnings, err.Error())
	if !r.jsonOutput {
		fmt.Fprintf(r.log, "warning: %s\n", err)
	}
}

// Warnings returns all warnings reported so far
func (r *Reporter) Warnings() []string {
	return r.report.Warnings
}

// Statistics reports the scan statistics. In text mode, they are written to log.
func (r *Reporter) Statistics(stats Statistics) {
	r.report.Statistics = stats
	if !r.jsonOutput {
		fmt.Fprintln(r.log, stats.String())
	}
}

// Results reports the classification
func (r *Reporter) Results(c Classification) error {
	r.report.Classification = c
	r.report.Intact = c.Intact()
	if r.jsonOutput {
		return nil
	}
	return WriteClassification(r.out, c)
}

// Updated reports that the baseline has been replaced
func (r *Reporter) Updated() error {
	r.report.Updated = true
	if r.jsonOutput {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "Hashes updated in %s\n", r.report.Baseline)
	return err
}

// Finish writes the JSON object in JSON mode
func (r *Reporter) Finish() error {
	if !r.jsonOutput {
		return nil
	}
	data, err := json.Marshal(&r.report)
	if err != nil {
		return fmt.Errorf(`could not serialize result JSON: %w`, err)
	}
	_, err = r.out.Write(append(data, '\n'))
	return err
}

// WriteClassification writes the labeled sections of c
// (only non-empty ones) or the message that everything is intact
func WriteClassification(w io.Writer, c Classification) error {
	sections := []struct {
		title string
		paths []string
	}{
		{"Modified files:", c.Modified},
		{"New files detected:", c.New},
		{"Missing files:", c.Missing},
	}

	for _, section := range sections {
		if len(section.paths) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, section.title); err != nil {
			return err
		}
		for _, path := range section.paths {
			if _, err := fmt.Fprintf(w, " - %s\n", path); err != nil {
				return err
			}
		}
	}

	if c.Intact() {
		_, err := fmt.Fprintln(w, "All files are intact.")
		return err
	}
	return nil
}
