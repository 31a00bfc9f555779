package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/leadsync/internal/models"
)

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: leadsync resolve <operation-id> <local|server|merge>")
	}
	opID := args[0]

	var resolution models.Resolution
	switch args[1] {
	case "local":
		resolution = models.ResolutionLocal
	case "server":
		resolution = models.ResolutionServer
	case "merge":
		resolution = models.ResolutionMerge
	default:
		return fmt.Errorf("unknown strategy %q, expected local, server or merge", args[1])
	}

	var target *models.SyncConflict
	for _, conflict := range c.syncService.Conflicts() {
		if conflict.Operation.ID == opID {
			target = conflict
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no conflict found for operation %s", opID)
	}

	if err := c.syncService.ResolveConflict(ctx, target, resolution); err != nil {
		return err
	}

	c.io.Printf("✓ Conflict resolved (%s)\n", resolution)
	if resolution != models.ResolutionServer {
		c.io.Println("The operation will be retried on the next sync.")
	}
	return nil
}
