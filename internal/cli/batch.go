package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// BatchEntry is one operation of a batch file.
type BatchEntry struct {
	Op    string `yaml:"op"`
	Type  string `yaml:"type"`
	Input string `yaml:"input"`
}

// BatchResult is the outcome of one entry.
type BatchResult struct {
	Op     string       `json:"op" yaml:"op"`
	Type   string       `json:"type" yaml:"type"`
	Input  string       `json:"input" yaml:"input"`
	Result any          `json:"result,omitempty" yaml:"result,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchReport collects the results of a batch file.
type BatchReport struct {
	Results []BatchResult `json:"results" yaml:"results"`
	Failed  int           `json:"failed" yaml:"failed"`
}

func (r *BatchReport) writeText(w io.Writer) {
	for _, res := range r.Results {
		prefix := fmt.Sprintf("%s %s %q", res.Op, res.Type, res.Input)

		switch v := res.Result.(type) {
		case *ValueReport:
			fmt.Fprintf(w, "ok   %s => %s [%s]\n", prefix, v.Value, v.Raw)
		case *InspectReport:
			fmt.Fprintf(w, "ok   %s => %s [%s] %s\n", prefix, v.Value, v.Raw, v.Family)
		default:
			fmt.Fprintf(w, "fail %s => %s: %s\n", prefix, res.Error.Code, res.Error.Message)
		}
	}

	fmt.Fprintf(w, "%d of %d failed\n", r.Failed, len(r.Results))
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run a list of encode, decode and inspect operations",
		Long: `Run the operations listed in a YAML file ("-" reads standard input):

  - op: encode
    type: E4M3
    input: "1.5"
  - op: decode
    type: PackedBCD16
    input: "1234"

Every entry is run. The command fails if any entry failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, cmd, args[0])
		},
	}
}

func runBatch(opts *RootOptions, cmd *cobra.Command, path string) error {
	var r io.Reader = cmd.InOrStdin()

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "reading batch file", Error.Wrap(oops.Trace(err)))
		}
		defer f.Close()

		r = f
	}

	entries, err := loadBatch(r)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading batch file", err)
	}

	log := opts.logger()
	report := &BatchReport{Results: make([]BatchResult, 0, len(entries))}

	for i, e := range entries {
		res := BatchResult{Op: e.Op, Type: e.Type, Input: e.Input}

		result, _, err := convert(opts, e.Op, e.Type, e.Input)
		if err != nil {
			log.Warn("batch entry failed", "index", i, "err", err)

			res.Error = newErrorDetail(err)
			report.Failed++
		} else {
			res.Result = result
		}

		report.Results = append(report.Results, res)
	}

	err = opts.formatter(cmd).Success(report)
	if err != nil {
		return err
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d entries failed", report.Failed, len(entries)))
	}

	return nil
}

// loadBatch reads the entries of a batch file. Unknown keys are an error.
func loadBatch(r io.Reader) ([]BatchEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var entries []BatchEntry

	err := dec.Decode(&entries)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}

	if err != nil {
		return nil, Error.Wrap(err)
	}

	return entries, nil
}
