package cli

import (
	"context"
	"fmt"
	"text/template"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing lead id. Usage: leadsync get <lead-id>")
	}
	leadID := args[0]

	lead, err := c.leadService.GetLead(ctx, leadID)
	if err != nil {
		return fmt.Errorf("failed to get lead: %w", err)
	}

	tmpl, err := template.New("lead").Parse(leadDetailsTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(c.io, lead); err != nil {
		return fmt.Errorf("failed to render lead: %w", err)
	}

	tasks, err := c.leadService.ListTasks(ctx, leadID)
	if err == nil && len(tasks) > 0 {
		c.io.Println()
		c.io.Println("Tasks:")
		for _, task := range tasks {
			marker := " "
			if task.Status == "completed" {
				marker = "x"
			}
			c.io.Printf("  [%s] %s (%s)\n", marker, task.Title, task.ID)
		}
	}

	activities, err := c.leadService.ListActivities(ctx, leadID)
	if err == nil && len(activities) > 0 {
		c.io.Println()
		c.io.Println("Recent activity:")
		for _, activity := range activities {
			c.io.Printf("  %s  %s: %s\n", activity.Timestamp, activity.Type, activity.Note)
		}
	}

	return nil
}
