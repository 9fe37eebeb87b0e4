package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qolzam/qtypes"
	"github.com/qolzam/qtypes/internal/log"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *Options) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "validate <encoded>",
		Short: "Validate a wire encoded container",
		Long:  "Decode a container and exit with a non-zero status when it breaks a structural rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, kindName, args[0])
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "string", "Container kind: string, int64, uint64, float64 or timestamp")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *Options, kindName, encoded string) error {
	ctx := log.WithCommand(cmd.Context(), "validate")

	f, err := opts.decodeFilter(kindName, encoded)
	if err != nil {
		return err
	}
	if !qtypes.Active(f) {
		log.InfoWithContext(ctx, "%s filter is inactive", kindName)
	}
	if err := qtypes.Validate(f); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "valid")

	return nil
}
