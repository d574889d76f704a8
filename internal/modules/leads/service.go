// README: Lead submission service; dedup check, single CRM attempt, local persistence.
package leads

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"

	"haulquote/internal/modules/dedup"
	"haulquote/internal/modules/pricing"
)

// Submitter is the CRM ingestion surface.
type Submitter interface {
	SubmitLead(ctx context.Context, lead Lead) error
}

// Recorder persists accepted leads locally and looks them back up by
// calculation hash.
type Recorder interface {
	Insert(ctx context.Context, lead *Lead, crmStatus Status) error
	GetByHash(ctx context.Context, hash string) (*Lead, error)
}

type SubmitCommand struct {
	Contact       Contact
	Pickup        string
	Delivery      string
	ShipDate      string
	TransportType string
	VehicleType   string
	VehicleValue  string
	Services      pricing.ServiceFlags
	PaymentMethod string
	FinalPrice    float64
	Breakdown     pricing.PriceBreakdown
	ActionCode    string
	ClientID      string
}

type Service struct {
	deduper *dedup.Deduper
	crm     Submitter
	store   Recorder
	logger  *zap.Logger
}

func NewService(deduper *dedup.Deduper, crm Submitter, store Recorder, logger *zap.Logger) *Service {
	return &Service{deduper: deduper, crm: crm, store: store, logger: logger}
}

// Submit pushes one lead toward the CRM. The calculation hash is recorded
// before the outcome is known, so a CRM outage yields at most one attempt
// per calculation. CRM and persistence failures degrade to a warning; they
// never invalidate the already-displayed price.
func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) (Result, error) {
	if strings.TrimSpace(cmd.Contact.Phone) == "" && strings.TrimSpace(cmd.Contact.Email) == "" {
		return Result{}, ErrBadRequest
	}
	if cmd.Pickup == "" || cmd.Delivery == "" {
		return Result{}, ErrBadRequest
	}
	if cmd.ActionCode == "" {
		cmd.ActionCode = ActionQuoteSubmit
	}

	// High-value tiers force premium on during composition; normalize here
	// too so this hash matches the one the quote path returned.
	if pricing.VehicleValueTier(cmd.VehicleValue).RequiresPremium() {
		cmd.Services.PremiumEnhancements = true
	}

	hash := dedup.Hash(dedup.Inputs{
		Pickup:                 cmd.Pickup,
		Delivery:               cmd.Delivery,
		ShipDate:               cmd.ShipDate,
		TransportType:          cmd.TransportType,
		VehicleType:            cmd.VehicleType,
		VehicleValue:           cmd.VehicleValue,
		PremiumEnhancements:    cmd.Services.PremiumEnhancements,
		SpecialLoad:            cmd.Services.SpecialLoad,
		Inoperable:             cmd.Services.Inoperable,
		SupplementaryInsurance: cmd.Services.SupplementaryInsurance,
		FinalPrice:             cmd.FinalPrice,
	})

	if !s.deduper.ShouldSubmit(ctx, cmd.ClientID, hash) {
		result := Result{Status: StatusDuplicate, CalculationHash: hash}
		// Surface the original lead so the caller can reference it.
		if s.store != nil {
			if prior, err := s.store.GetByHash(ctx, hash); err == nil {
				result.LeadID = prior.ID
			}
		}
		return result, nil
	}
	if err := s.deduper.RecordSubmitted(ctx, cmd.ClientID, hash); err != nil {
		s.logger.Warn("failed to record submission hash", zap.Error(err))
	}

	lead := Lead{
		ID:              newID(),
		Contact:         cmd.Contact,
		Pickup:          cmd.Pickup,
		Delivery:        cmd.Delivery,
		ShipDate:        cmd.ShipDate,
		TransportType:   cmd.TransportType,
		VehicleType:     cmd.VehicleType,
		VehicleValue:    cmd.VehicleValue,
		Services:        cmd.Services,
		PaymentMethod:   cmd.PaymentMethod,
		Breakdown:       cmd.Breakdown,
		FinalPrice:      cmd.FinalPrice,
		CalculationHash: hash,
		ActionCode:      cmd.ActionCode,
		CreatedAt:       time.Now().UTC(),
	}

	status := StatusSubmitted
	if err := s.crm.SubmitLead(ctx, lead); err != nil {
		s.logger.Warn("crm submission failed",
			zap.String("lead_id", lead.ID),
			zap.String("hash", hash),
			zap.Error(err))
		status = StatusWarning
	}

	if s.store != nil {
		if err := s.store.Insert(ctx, &lead, status); err != nil {
			s.logger.Warn("lead persistence failed",
				zap.String("lead_id", lead.ID),
				zap.Error(err))
		}
	}

	return Result{Status: status, LeadID: lead.ID, CalculationHash: hash}, nil
}

func newID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
