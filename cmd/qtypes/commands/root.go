// Package commands implements CLI commands.
package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qolzam/qtypes"
	"github.com/qolzam/qtypes/internal/config"
	"github.com/qolzam/qtypes/internal/log"
)

// Options holds the flags shared by every command.
type Options struct {
	Format string
	Debug  bool
}

// NewRootCommand creates the qtypes command with all subcommands attached.
// Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	opts := &Options{
		Format: cfg.Output.Format,
		Debug:  cfg.Debug,
	}

	cmd := &cobra.Command{
		Use:           "qtypes",
		Short:         "Inspect qtypes query filters",
		Long:          "Encode, decode and validate qtypes filter containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "Binary encoding: hex or base64")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", opts.Debug, "Dump containers to stderr")

	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewOpsCommand())

	return cmd
}

func (o *Options) validate() error {
	cfg := config.Config{Output: config.OutputConfig{Format: strings.ToLower(o.Format)}}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.Format = cfg.Output.Format
	return nil
}

func (o *Options) encode(b []byte) string {
	if o.Format == config.FormatBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

func (o *Options) decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	var (
		b   []byte
		err error
	)
	if o.Format == config.FormatBase64 {
		b, err = base64.StdEncoding.DecodeString(s)
	} else {
		b, err = hex.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s input: %w", o.Format, err)
	}
	return b, nil
}

// dump prints f when debugging is on. The generated message carries internal
// state, so only its fields are dumped.
func (o *Options) dump(f qtypes.Filter) {
	if !o.Debug {
		return
	}
	log.Struct(newFilterView(f))
}

// decodeFilter reads an encoded container of the given kind.
func (o *Options) decodeFilter(kindName, encoded string) (qtypes.Filter, error) {
	k, err := lookupKind(kindName)
	if err != nil {
		return nil, err
	}
	b, err := o.decode(encoded)
	if err != nil {
		return nil, err
	}
	f := k.empty()
	if err := qtypes.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", kindName, err)
	}
	o.dump(f)
	return f, nil
}
