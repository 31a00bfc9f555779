// Package validation holds field validation shared by the client and the
// server
package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/leadsync/internal/models"
)

// EmailPattern is deliberately loose: one @ with something on both sides
// and a dot in the domain
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PhonePattern accepts digits, spaces, dashes, parentheses and an
// optional leading +
var PhonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)

const (
	// MaxNameLen bounds the lead name
	MaxNameLen = 100
)

// ValidateName checks the lead name is present and within bounds
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}
	return nil
}

// ValidatePhone checks the phone number format when one is given
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !PhonePattern.MatchString(phone) {
		return fmt.Errorf("phone number format is invalid")
	}
	return nil
}

// ValidateEmail checks the email format when one is given
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ValidateStatus checks the pipeline stage is one of the known values
func ValidateStatus(status models.LeadStatus) error {
	switch status {
	case "", models.LeadStatusNew, models.LeadStatusContacted,
		models.LeadStatusProposal, models.LeadStatusWon, models.LeadStatusLost:
		return nil
	}
	return fmt.Errorf("unknown lead status: %s", status)
}

// ValidateLead runs all field checks on a lead
func ValidateLead(lead *models.Lead) error {
	if err := ValidateName(lead.Name); err != nil {
		return err
	}
	if err := ValidatePhone(lead.Phone); err != nil {
		return err
	}
	if err := ValidateEmail(lead.Email); err != nil {
		return err
	}
	if err := ValidateStatus(lead.Status); err != nil {
		return err
	}
	if lead.Status == models.LeadStatusLost && lead.LostReason == "" {
		return fmt.Errorf("lost leads require a lost reason")
	}
	return nil
}
