package domain

import "time"

// OrgPolicy pricing and cancellation policy of an organisation.
// IsDefault is true when the organisation has no override and the
// process-wide defaults are used.
type OrgPolicy struct {
	OrgID        int64
	Pricing      *PricingPolicy
	Cancellation *CancellationPolicy
	IsDefault    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate validates both parts of the policy
func (p *OrgPolicy) Validate() error {
	if err := p.Pricing.Validate(); err != nil {
		return err
	}
	return p.Cancellation.Validate()
}
