package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (c *Cli) runList(ctx context.Context) error {
	leadList, err := c.leadService.ListLeads(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	if len(leadList) == 0 {
		c.io.Println("No leads found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPHONE\tASSIGNED\tVALUE")
	for _, lead := range leadList {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.0f\n",
			lead.ID, lead.Name, lead.Status, lead.Phone, lead.AssignedTo, lead.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("%d lead(s)\n", len(leadList))
	return nil
}
