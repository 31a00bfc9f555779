package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Checking connectivity...")
	if !c.monitor.CheckNow(ctx) {
		return fmt.Errorf("server unreachable, try again when online")
	}

	st := c.syncService.Status()
	if st.PendingCount == 0 {
		c.io.Println("Nothing to sync.")
		return nil
	}

	c.io.Printf("Syncing %d pending operation(s)...\n", st.PendingCount)

	result, err := c.syncService.SyncPendingOperations(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Synced:    %d\n", len(result.Synced))
	if len(result.Failed) > 0 {
		c.io.Printf("✗ Failed:    %d\n", len(result.Failed))
		for _, op := range result.Failed {
			c.io.Printf("    %s: %s\n", op.ID, op.LastError)
		}
	}
	if len(result.Conflicts) > 0 {
		c.io.Printf("! Conflicts: %d\n", len(result.Conflicts))
		c.io.Println()
		c.io.Println("Run 'leadsync conflicts' to inspect and 'leadsync resolve' to settle them.")
	}

	return nil
}
