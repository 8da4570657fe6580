package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *cli) presentationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "presentations",
		Aliases: []string{"presentation"},
		Short:   "List and remove presentations",
	}
	cmd.AddCommand(c.presentationsListCmd(), c.presentationsDeleteCmd())
	return cmd
}

func (c *cli) presentationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presentations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := c.client.ListPresentations(cmd.Context())
			if err != nil {
				return fmt.Errorf("list presentations: %w", err)
			}
			if c.jsonOutput() {
				return printJSON(c.out, items)
			}
			if len(items) == 0 {
				fmt.Fprintln(c.out, "No presentations found.")
				return nil
			}
			rows := make([][]string, 0, len(items))
			for _, p := range items {
				title := p.Title.En
				if title == "" {
					title = p.Title.Ar
				}
				rows = append(rows, []string{p.ID, truncate(title, 40), string(p.Type), strconv.Itoa(len(p.Slides)), p.Date})
			}
			if err := printTable(c.out, []string{"ID", "TITLE", "TYPE", "SLIDES", "DATE"}, rows); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Total: %d presentation(s)\n", len(items))
			return nil
		},
	}
}

func (c *cli) presentationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client.DeletePresentation(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete presentation %q: %w", args[0], err)
			}
			if c.jsonOutput() {
				return printJSON(c.out, map[string]string{"deleted": args[0], "status": "success"})
			}
			fmt.Fprintf(c.out, "Deleted presentation: %s\n", args[0])
			return nil
		},
	}
}
