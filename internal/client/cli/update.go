package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/leadsync/internal/models"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing lead id. Usage: leadsync update <lead-id> [flags]")
	}
	leadID := args[0]

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	status := fs.String("status", "", "New pipeline status (New|Contacted|Proposal|Won|Lost)")
	assignTo := fs.String("assign", "", "Assign the lead to a user")
	temperature := fs.String("temperature", "", "Lead temperature (hot|warm|cold)")
	notes := fs.String("notes", "", "Replace the lead notes")
	followUp := fs.String("followup", "", "Follow-up date (YYYY-MM-DD)")
	lostReason := fs.String("lost-reason", "", "Reason when marking the lead Lost")
	value := fs.Float64("value", -1, "Estimated value")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	lead, err := c.leadService.GetLead(ctx, leadID)
	if err != nil {
		return fmt.Errorf("failed to get lead: %w", err)
	}

	changed := false
	if *status != "" {
		lead.Status = models.LeadStatus(*status)
		changed = true
	}
	if *assignTo != "" {
		lead.AssignedTo = *assignTo
		changed = true
	}
	if *temperature != "" {
		lead.Temperature = *temperature
		changed = true
	}
	if *notes != "" {
		lead.Notes = *notes
		changed = true
	}
	if *followUp != "" {
		lead.FollowUpDate = *followUp
		changed = true
	}
	if *lostReason != "" {
		lead.LostReason = *lostReason
		changed = true
	}
	if *value >= 0 {
		lead.Value = *value
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to update, pass at least one flag")
	}

	if _, err := c.leadService.UpdateLead(ctx, lead); err != nil {
		return err
	}

	c.io.Printf("✓ Lead %s updated\n", leadID)
	return nil
}
