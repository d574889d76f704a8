package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"haulquote/internal/modules/dedup"
)

type stubCRM struct {
	err   error
	calls int
	last  Lead
}

func (s *stubCRM) SubmitLead(_ context.Context, lead Lead) error {
	s.calls++
	s.last = lead
	return s.err
}

func validCommand() SubmitCommand {
	return SubmitCommand{
		Contact:       Contact{Name: "Pat Doe", Phone: "+1 555 0100"},
		Pickup:        "Newark, NJ",
		Delivery:      "Chicago, IL",
		ShipDate:      "2026-09-15",
		TransportType: "open",
		VehicleType:   "sedan",
		VehicleValue:  "under100k",
		PaymentMethod: "cash",
		FinalPrice:    1080.0,
		ActionCode:    ActionQuoteSubmit,
		ClientID:      "203.0.113.7",
	}
}

func newTestService(crm *stubCRM) *Service {
	return NewService(dedup.NewDeduper(dedup.NewMemoryStore()), crm, nil, zap.NewNop())
}

func TestSubmit_Success(t *testing.T) {
	crm := &stubCRM{}
	svc := newTestService(crm)

	got, err := svc.Submit(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, got.Status)
	assert.NotEmpty(t, got.LeadID)
	assert.Len(t, got.CalculationHash, 16)
	assert.Equal(t, 1, crm.calls)
	assert.Equal(t, got.CalculationHash, crm.last.CalculationHash)
	assert.Equal(t, ActionQuoteSubmit, crm.last.ActionCode)
}

func TestSubmit_DuplicateSuppressed(t *testing.T) {
	crm := &stubCRM{}
	svc := newTestService(crm)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)
	require.Equal(t, StatusSubmitted, first.Status)

	second, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
	assert.Equal(t, first.CalculationHash, second.CalculationHash)
	assert.Equal(t, 1, crm.calls, "duplicate must not reach the CRM")
}

// Formatting-only differences hash identically and are treated as the same
// lead.
func TestSubmit_DuplicateAcrossFormatting(t *testing.T) {
	crm := &stubCRM{}
	svc := newTestService(crm)
	ctx := context.Background()

	_, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)

	cmd := validCommand()
	cmd.Pickup = "  NEWARK,  nj "
	got, err := svc.Submit(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, got.Status)
}

// A CRM outage yields a warning result, and the hash is recorded anyway:
// exactly one attempt per calculation, no retry storm.
func TestSubmit_CRMFailureRecordsHash(t *testing.T) {
	crm := &stubCRM{err: errors.New("crm down")}
	svc := newTestService(crm)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)
	assert.Equal(t, StatusWarning, first.Status)

	second, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
	assert.Equal(t, 1, crm.calls)
}

func TestSubmit_Validation(t *testing.T) {
	svc := newTestService(&stubCRM{})
	ctx := context.Background()

	cmd := validCommand()
	cmd.Contact = Contact{Name: "No Reach"}
	_, err := svc.Submit(ctx, cmd)
	assert.ErrorIs(t, err, ErrBadRequest)

	cmd = validCommand()
	cmd.Pickup = ""
	_, err = svc.Submit(ctx, cmd)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestSubmit_DefaultsActionCode(t *testing.T) {
	crm := &stubCRM{}
	svc := newTestService(crm)

	cmd := validCommand()
	cmd.ActionCode = ""
	_, err := svc.Submit(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, ActionQuoteSubmit, crm.last.ActionCode)
}

// High-value tiers force premium on during composition, so the lead path
// must hash with the forced flag to agree with the quote path's hash.
func TestSubmit_ForcedPremiumHashMatchesQuotePath(t *testing.T) {
	crm := &stubCRM{}
	svc := newTestService(crm)
	ctx := context.Background()

	cmd := validCommand()
	cmd.VehicleValue = "under500k"
	cmd.Services.PremiumEnhancements = false

	got, err := svc.Submit(ctx, cmd)
	require.NoError(t, err)

	want := dedup.Hash(dedup.Inputs{
		Pickup:              cmd.Pickup,
		Delivery:            cmd.Delivery,
		ShipDate:            cmd.ShipDate,
		TransportType:       cmd.TransportType,
		VehicleType:         cmd.VehicleType,
		VehicleValue:        cmd.VehicleValue,
		PremiumEnhancements: true,
		FinalPrice:          cmd.FinalPrice,
	})
	assert.Equal(t, want, got.CalculationHash)
	assert.True(t, crm.last.Services.PremiumEnhancements,
		"the persisted lead reflects the services actually priced")

	// Re-submitting with the flag explicitly checked is the same calculation.
	cmd.Services.PremiumEnhancements = true
	second, err := svc.Submit(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
}

// memRecorder is a test double for the Postgres lead store.
type memRecorder struct {
	byHash map[string]*Lead
}

func newMemRecorder() *memRecorder {
	return &memRecorder{byHash: map[string]*Lead{}}
}

func (m *memRecorder) Insert(_ context.Context, lead *Lead, _ Status) error {
	m.byHash[lead.CalculationHash] = lead
	return nil
}

func (m *memRecorder) GetByHash(_ context.Context, hash string) (*Lead, error) {
	lead, ok := m.byHash[hash]
	if !ok {
		return nil, errors.New("no lead for hash")
	}
	return lead, nil
}

func TestSubmit_DuplicateReturnsOriginalLeadID(t *testing.T) {
	store := newMemRecorder()
	svc := NewService(dedup.NewDeduper(dedup.NewMemoryStore()), &stubCRM{}, store, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)
	require.Equal(t, StatusSubmitted, first.Status)

	second, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
	assert.Equal(t, first.LeadID, second.LeadID)
}

func TestSubmit_DifferentPriceIsNewLead(t *testing.T) {
	crm := &stubCRM{}
	svc := newTestService(crm)
	ctx := context.Background()

	_, err := svc.Submit(ctx, validCommand())
	require.NoError(t, err)

	cmd := validCommand()
	cmd.FinalPrice = 1116.0
	got, err := svc.Submit(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, got.Status)
	assert.Equal(t, 2, crm.calls)
}
