package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/qolzam/qtypes"
	"github.com/qolzam/qtypes/qtypeshttp"
)

// NewOpsCommand creates the ops command.
func NewOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List operators",
		Long:  "List every operator tag with its name, the containers it applies to and its query string prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOps(cmd)
		},
	}
}

func runOps(cmd *cobra.Command) error {
	prefixes := make(map[qtypes.QueryType][]string)
	for _, op := range qtypeshttp.Operators() {
		prefixes[op.Type] = append(prefixes[op.Type], op.Prefix)
	}

	data := pterm.TableData{{"TAG", "NAME", "APPLIES TO", "PREFIXES"}}
	for _, t := range qtypes.QueryTypes() {
		applies := "all"
		if t.TextOnly() {
			applies = "String"
		}
		data = append(data, []string{
			strconv.Itoa(int(t)),
			t.String(),
			applies,
			strings.Join(prefixes[t], ","),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render operators: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)

	return nil
}
