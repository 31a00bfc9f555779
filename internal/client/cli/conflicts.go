package cli

import (
	"context"
	"time"
)

func (c *Cli) runConflicts(ctx context.Context) error {
	conflicts := c.syncService.Conflicts()
	if len(conflicts) == 0 {
		c.io.Println("No unresolved conflicts.")
		return nil
	}

	c.io.Printf("%d unresolved conflict(s):\n", len(conflicts))
	c.io.Println()

	for _, conflict := range conflicts {
		op := conflict.Operation
		c.io.Printf("Operation: %s\n", op.ID)
		c.io.Printf("  %s %s %s, queued %s\n",
			op.Kind, op.Entity, op.EntityID,
			time.UnixMilli(op.CreatedAt).Format(time.RFC3339))
		c.io.Printf("  server: %s\n", string(conflict.ServerData))
		c.io.Printf("  local:  %s\n", string(conflict.LocalData))
		c.io.Println()
	}

	c.io.Println("Resolve with: leadsync resolve <operation-id> <local|server|merge>")
	return nil
}
