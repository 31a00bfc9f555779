package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing lead id. Usage: leadsync delete <lead-id>")
	}
	leadID := args[0]

	answer, err := c.io.ReadInput(fmt.Sprintf("Delete lead %s? [y/N]: ", leadID))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.leadService.DeleteLead(ctx, leadID); err != nil {
		return err
	}

	c.io.Printf("✓ Lead %s deleted\n", leadID)
	return nil
}
