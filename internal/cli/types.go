package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/numerics/codec"
)

// KindInfo describes one numeric type.
type KindInfo struct {
	Name   string `json:"name" yaml:"name"`
	Family string `json:"family" yaml:"family"`
	Bits   int    `json:"bits" yaml:"bits"`
	Signed bool   `json:"signed" yaml:"signed"`
}

// TypesResult lists the numeric types.
type TypesResult struct {
	Types []KindInfo `json:"types" yaml:"types"`
}

func (r *TypesResult) writeText(w io.Writer) {
	for _, t := range r.Types {
		signed := "unsigned"
		if t.Signed {
			signed = "signed"
		}

		fmt.Fprintf(w, "%-12s %-10s %2d  %s\n", t.Name, t.Family, t.Bits, signed)
	}
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the numeric types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := &TypesResult{}

			for _, k := range codec.Kinds() {
				if family != "" && string(k.Family()) != family {
					continue
				}

				result.Types = append(result.Types, KindInfo{
					Name:   k.Name(),
					Family: string(k.Family()),
					Bits:   k.Bits(),
					Signed: k.Signed(),
				})
			}

			if len(result.Types) == 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown family %q", family))
			}

			return rootOpts.formatter(cmd).Success(result)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list types of this family")

	return cmd
}
