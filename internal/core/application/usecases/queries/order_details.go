// Package queries is the read side: projections built with raw SQL straight
// from the tables, bypassing the aggregates.
package queries

import (
	"database/sql"
	"time"

	"shipment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDetails is the order projection served by the read side.
type OrderDetails struct {
	ID            string    `json:"id"`
	Number        string    `json:"order_number"`
	AccountID     string    `json:"account_id"`
	ProductID     string    `json:"product_id"`
	SellerID      string    `json:"seller_id"`
	RiderID       *string   `json:"rider_id"`
	Quantity      int       `json:"quantity"`
	TotalAmount   string    `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	ShipTo        string    `json:"ship_to"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	DeliveryProof *string   `json:"delivery_proof"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const orderColumns = `
	id,
	order_number,
	account_id,
	product_id,
	seller_id,
	rider_id,
	quantity,
	total_amount,
	payment_method,
	ship_to,
	status,
	delivery_proof,
	created_at,
	updated_at`

func scanOrderDetails(rows *sql.Rows) ([]OrderDetails, error) {
	defer rows.Close()

	result := make([]OrderDetails, 0)
	for rows.Next() {
		var (
			d                             OrderDetails
			id, accountID, productID, sel uuid.UUID
			riderID                       uuid.NullUUID
			total                         decimal.Decimal
			status                        int
			proof                         sql.NullString
		)
		if err := rows.Scan(
			&id,
			&d.Number,
			&accountID,
			&productID,
			&sel,
			&riderID,
			&d.Quantity,
			&total,
			&d.PaymentMethod,
			&d.ShipTo,
			&status,
			&proof,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}

		d.ID = id.String()
		d.AccountID = accountID.String()
		d.ProductID = productID.String()
		d.SellerID = sel.String()
		if riderID.Valid {
			s := riderID.UUID.String()
			d.RiderID = &s
		}
		d.TotalAmount = total.StringFixed(2)
		d.Status = order.Status(status).String()
		d.StatusLabel = order.Status(status).Label()
		if proof.Valid {
			d.DeliveryProof = &proof.String
		}
		d.CreatedAt = d.CreatedAt.UTC()
		d.UpdatedAt = d.UpdatedAt.UTC()
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
