package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qolzam/qtypes"
	"github.com/qolzam/qtypes/internal/log"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(opts *Options) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "encode <expression>",
		Short: "Encode a query string expression",
		Long:  "Parse an expression such as bw:10,20 into a container and print its wire encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, opts, kindName, args[0])
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "string", "Container kind: string, int64, uint64, float64 or timestamp")

	return cmd
}

func runEncode(cmd *cobra.Command, opts *Options, kindName, expr string) error {
	ctx := log.WithCommand(cmd.Context(), "encode")

	k, err := lookupKind(kindName)
	if err != nil {
		return err
	}
	f, err := k.parse(expr)
	if err != nil {
		return fmt.Errorf("failed to parse %s expression: %w", kindName, err)
	}
	if err := qtypes.Validate(f); err != nil {
		log.WarnWithContext(ctx, "%v", err)
	}
	opts.dump(f)

	b, err := qtypes.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), opts.encode(b))

	return nil
}
