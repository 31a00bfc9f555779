package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/leadsync/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Lead ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	phone, err := c.io.ReadInput("Phone: ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	email, err := c.io.ReadInput("Email (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	location, err := c.io.ReadInput("Location (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read location: %w", err)
	}

	interest, err := c.io.ReadInput("Interest (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read interest: %w", err)
	}

	source, err := c.io.ReadInput("Source (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	valueStr, err := c.io.ReadInput("Estimated value (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}
	var value float64
	if valueStr != "" {
		value, err = strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
	}

	lead := &models.Lead{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Location: location,
		Interest: interest,
		Source:   source,
		Value:    value,
		Status:   models.LeadStatusNew,
	}

	created, err := c.leadService.CreateLead(ctx, lead)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Lead created: %s\n", created.ID)
	c.io.Println("The lead will reach the server on the next sync.")
	return nil
}
