// README: Lead store backed by PostgreSQL.
package leads

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, lead *Lead, crmStatus Status) error {
	breakdown, err := json.Marshal(lead.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	_, err = s.db.Exec(ctx, `
        INSERT INTO leads (
            id, contact_name, contact_phone, contact_email,
            pickup, delivery, ship_date,
            transport_type, vehicle_type, vehicle_value,
            premium_enhancements, special_load, inoperable, supplementary_insurance,
            payment_method, final_price, breakdown,
            calculation_hash, action_code, crm_status, created_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7,
            $8, $9, $10,
            $11, $12, $13, $14,
            $15, $16, $17,
            $18, $19, $20, $21
        )`,
		lead.ID,
		lead.Contact.Name, lead.Contact.Phone, lead.Contact.Email,
		lead.Pickup, lead.Delivery, lead.ShipDate,
		lead.TransportType, lead.VehicleType, lead.VehicleValue,
		lead.Services.PremiumEnhancements, lead.Services.SpecialLoad,
		lead.Services.Inoperable, lead.Services.SupplementaryInsurance,
		lead.PaymentMethod, lead.FinalPrice, breakdown,
		lead.CalculationHash, lead.ActionCode, string(crmStatus), lead.CreatedAt,
	)
	return err
}

func (s *Store) GetByHash(ctx context.Context, hash string) (*Lead, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, contact_name, contact_phone, contact_email,
               pickup, delivery, ship_date,
               transport_type, vehicle_type, vehicle_value,
               premium_enhancements, special_load, inoperable, supplementary_insurance,
               payment_method, final_price, calculation_hash, action_code, created_at
        FROM leads
        WHERE calculation_hash = $1
        ORDER BY created_at DESC
        LIMIT 1`, hash,
	)

	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.Contact.Name, &lead.Contact.Phone, &lead.Contact.Email,
		&lead.Pickup, &lead.Delivery, &lead.ShipDate,
		&lead.TransportType, &lead.VehicleType, &lead.VehicleValue,
		&lead.Services.PremiumEnhancements, &lead.Services.SpecialLoad,
		&lead.Services.Inoperable, &lead.Services.SupplementaryInsurance,
		&lead.PaymentMethod, &lead.FinalPrice, &lead.CalculationHash,
		&lead.ActionCode, &lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
