package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Session: not authenticated")
		c.io.Println("Run 'leadsync login' to authenticate.")
	} else {
		session, err := c.authService.CurrentSession(ctx)
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		c.io.Printf("Session: %s, expires %s\n",
			session.Username, session.ExpiresAt.Format(time.RFC3339))
	}

	c.io.Println()
	if c.monitor.CheckNow(ctx) {
		c.io.Println("Network: online")
	} else {
		c.io.Println("Network: offline")
	}

	st := c.syncService.Status()
	c.io.Println()
	c.io.Printf("Pending operations: %d\n", st.PendingCount)
	c.io.Printf("Failed operations:  %d\n", st.FailedCount)
	c.io.Printf("Conflicts:          %d\n", st.ConflictCount)
	if st.LastSyncTime > 0 {
		c.io.Printf("Last sync:          %s\n",
			time.UnixMilli(st.LastSyncTime).Format(time.RFC3339))
	} else {
		c.io.Println("Last sync:          never")
	}

	if st.PendingCount > 0 {
		c.io.Println()
		c.io.Println("Run 'leadsync sync' to push pending changes.")
	}

	return nil
}
