package cli

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/numerics"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <type> <value>",
		Short: "Parse a value and print its raw bit pattern",
		Long: `Parse value text as the given type and print the canonical value with
its raw bit pattern. Value text is read with the conventions of --locale.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, cmd, "encode", args[0], args[1])
		},
	}
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type> <hex>",
		Short: "Build a value from its raw bit pattern",
		Long: `Build a value of the given type from its big-endian raw bit pattern in
hex. Patterns the type does not allow, such as BCD nibbles above 9, fail.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, cmd, "decode", args[0], args[1])
		},
	}
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <type> <hex>",
		Short: "Break a raw bit pattern into its fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, cmd, "inspect", args[0], args[1])
		},
	}
}

func runConvert(opts *RootOptions, cmd *cobra.Command, op, typ, input string) error {
	formatter := opts.formatter(cmd)

	result, code, err := convert(opts, op, typ, input)
	if err != nil {
		if code == ExitCommandError {
			return err
		}

		return formatter.Fail(code, err)
	}

	return formatter.Success(result)
}

// convert runs a single operation. It returns the exit code that goes with
// the error.
func convert(opts *RootOptions, op, typ, input string) (result any, code int, err error) {
	log := opts.logger().With("op", op, "type", typ)

	k, err := lookupKind(typ)
	if err != nil {
		return nil, ExitCommandError, err
	}

	var v numerics.Value

	switch op {
	case "encode":
		text := delocalize(input, opts.tag)
		log.Debug("parsing", "text", text)

		v, err = k.Parse(text)
	case "decode", "inspect":
		raw, herr := parseHex(input)
		if herr != nil {
			return nil, ExitCommandError, herr
		}

		log.Debug("decoding", "raw", raw)

		v, err = k.FromRawBytes(raw)
	default:
		return nil, ExitCommandError, NewExitError(ExitCommandError, "unknown operation "+op)
	}

	if err != nil {
		log.Debug("conversion failed", "err", err)

		return nil, ExitFailure, err
	}

	if op == "inspect" {
		return newInspectReport(k, v, opts.tag), ExitSuccess, nil
	}

	return newValueReport(k, v, opts.tag), ExitSuccess, nil
}
