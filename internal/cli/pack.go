package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/codec"
	"github.com/calebcase/numerics/control"
)

const null = "null"

// PackReport is a packed control block stream.
type PackReport struct {
	Type   string `json:"type" yaml:"type"`
	Count  int    `json:"count" yaml:"count"`
	Stream string `json:"stream" yaml:"stream"`
	Blocks string `json:"blocks" yaml:"blocks"`
}

func (r *PackReport) writeText(w io.Writer) {
	field(w, "type", r.Type)
	field(w, "count", fmt.Sprint(r.Count))
	field(w, "stream", r.Stream)
	field(w, "blocks", r.Blocks)
}

// UnpackReport lists the values of a control block stream.
type UnpackReport struct {
	Type   string   `json:"type" yaml:"type"`
	Values []string `json:"values" yaml:"values"`
}

func (r *UnpackReport) writeText(w io.Writer) {
	for _, v := range r.Values {
		fmt.Fprintln(w, v)
	}
}

// NewPackCommand creates the pack command.
func NewPackCommand(rootOpts *RootOptions) *cobra.Command {
	var nullable bool

	cmd := &cobra.Command{
		Use:   "pack <type> <value>...",
		Short: "Encode values as a control block stream",
		Long: `Encode the values as an unbounded container of control blocks and print
the stream in hex. With --nullable the argument "null" is written as a Null
block.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(args[0])
			if err != nil {
				return err
			}

			return runPack(rootOpts, cmd, codec.Schema{Kind: k, Nullable: nullable}, args[1:])
		},
	}

	cmd.Flags().BoolVar(&nullable, "nullable", false, "allow null values")

	return cmd
}

func runPack(opts *RootOptions, cmd *cobra.Command, schema codec.Schema, inputs []string) error {
	formatter := opts.formatter(cmd)
	values := make([]numerics.Value, 0, len(inputs))

	for _, in := range inputs {
		if schema.Nullable && in == null {
			values = append(values, nil)

			continue
		}

		v, err := schema.Kind.Parse(delocalize(in, opts.tag))
		if err != nil {
			return formatter.Fail(ExitFailure, err)
		}

		values = append(values, v)
	}

	stream := &bytes.Buffer{}

	err := codec.EncodeAll(control.NewEncoder(stream), schema, values)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	blocks, err := control.Describe(stream.Bytes())
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	opts.logger().Debug("packed", "type", schema.Kind, "count", len(values), "bytes", stream.Len())

	return formatter.Success(&PackReport{
		Type:   schema.Kind.Name(),
		Count:  len(values),
		Stream: hex.EncodeToString(stream.Bytes()),
		Blocks: blocks,
	})
}

// NewUnpackCommand creates the unpack command.
func NewUnpackCommand(rootOpts *RootOptions) *cobra.Command {
	var nullable bool

	cmd := &cobra.Command{
		Use:   "unpack <type> <hex>",
		Short: "Decode a control block stream written by pack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(args[0])
			if err != nil {
				return err
			}

			stream, err := parseHex(args[1])
			if err != nil {
				return err
			}

			schema := codec.Schema{Kind: k, Nullable: nullable}
			formatter := rootOpts.formatter(cmd)

			values, err := codec.DecodeAll(control.NewDecoder(bytes.NewReader(stream)), schema)
			if err != nil {
				return formatter.Fail(ExitFailure, err)
			}

			report := &UnpackReport{Type: k.Name(), Values: make([]string, len(values))}
			for i, v := range values {
				report.Values[i] = null
				if v != nil {
					report.Values[i] = localize(v.String(), rootOpts.tag)
				}
			}

			return formatter.Success(report)
		},
	}

	cmd.Flags().BoolVar(&nullable, "nullable", false, "allow null values")

	return cmd
}
