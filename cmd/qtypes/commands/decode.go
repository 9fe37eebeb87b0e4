package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/qolzam/qtypes"
	"github.com/qolzam/qtypes/qtypeshttp"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(opts *Options) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "decode <encoded>",
		Short: "Decode a wire encoded container",
		Long:  "Decode a container and print it as JSON, as a query string expression and with its validation result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, kindName, args[0])
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "string", "Container kind: string, int64, uint64, float64 or timestamp")

	return cmd
}

func runDecode(cmd *cobra.Command, opts *Options, kindName, encoded string) error {
	f, err := opts.decodeFilter(kindName, encoded)
	if err != nil {
		return err
	}

	j, err := protojson.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to render json: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, string(j))
	if expr := qtypeshttp.Format(f); expr != "" {
		fmt.Fprintf(out, "expression: %s\n", expr)
	}
	if err := qtypes.Validate(f); err != nil {
		fmt.Fprintf(out, "invalid: %v\n", err)
	} else {
		fmt.Fprintln(out, "valid")
	}

	return nil
}
