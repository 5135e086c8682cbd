package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cloudgraph/pkg/config"
	"github.com/matzehuels/cloudgraph/pkg/exposure"
)

// exposedCommand creates the exposed command, which lists resources the
// exposure rules link to the Internet node.
func (c *CLI) exposedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exposed [csv]",
		Short: "List resources exposed to the Internet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runExposed(cmd.Context(), args, cfg)
		},
	}
}

func (c *CLI) runExposed(ctx context.Context, args []string, cfg config.Config) error {
	res, err := c.buildGraph(ctx, args, cfg, false)
	if err != nil {
		return err
	}

	findings := res.Exposure.Findings
	if len(findings) == 0 {
		printSuccess("No resources exposed to the Internet")
		if res.Exposure.Skipped > 0 {
			printWarning("%d row(s) had unparseable properties", res.Exposure.Skipped)
		}
		return nil
	}

	printWarning("%d resource(s) exposed to the Internet", len(findings))
	printNewline()
	fmt.Println(findingsTable(findings))
	if res.Exposure.Skipped > 0 {
		printWarning("%d row(s) had unparseable properties", res.Exposure.Skipped)
	}
	return nil
}

// findingsTable renders findings as a bordered table.
func findingsTable(findings []exposure.Finding) string {
	rows := make([][]string, len(findings))
	for i, f := range findings {
		rows[i] = []string{f.Name, f.Type, f.Rule}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Resource", "Type", "Rule").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleExposed
			}
			return StyleDim
		})
	return t.Render()
}
