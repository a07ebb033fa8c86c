package queries

import (
	"database/sql"
	"time"

	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/model/refund"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundRequestDetails is a refund request joined with its order.
type RefundRequestDetails struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	AccountID     string    `json:"account_id"`
	SellerID      string    `json:"seller_id"`
	Reason        string    `json:"reason"`
	Solution      string    `json:"solution"`
	ReturnMethod  string    `json:"return_method"`
	PaymentMethod *string   `json:"payment_method"`
	ProofImage    *string   `json:"proof_image"`
	RefundAmount  *string   `json:"refund_amount"`
	Status        string    `json:"status"`
	OrderStatus   string    `json:"order_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const refundRequestColumns = `
	r.id,
	r.order_id,
	o.order_number,
	r.account_id,
	o.seller_id,
	r.reason,
	r.solution,
	r.return_method,
	r.payment_method,
	r.proof_image,
	r.refund_amount,
	r.status,
	o.status,
	r.created_at,
	r.updated_at`

func scanRefundRequestDetails(rows *sql.Rows) ([]RefundRequestDetails, error) {
	defer rows.Close()

	result := make([]RefundRequestDetails, 0)
	for rows.Next() {
		var (
			d                                RefundRequestDetails
			id, orderID, accountID, sellerID uuid.UUID
			solution, returnMethod, status   int
			orderStatus                      int
			payment, proof                   sql.NullString
			amount                           decimal.NullDecimal
		)
		if err := rows.Scan(
			&id,
			&orderID,
			&d.OrderNumber,
			&accountID,
			&sellerID,
			&d.Reason,
			&solution,
			&returnMethod,
			&payment,
			&proof,
			&amount,
			&status,
			&orderStatus,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}

		d.ID = id.String()
		d.OrderID = orderID.String()
		d.AccountID = accountID.String()
		d.SellerID = sellerID.String()
		d.Solution = refund.Solution(solution).String()
		d.ReturnMethod = refund.ReturnMethod(returnMethod).String()
		if payment.Valid {
			d.PaymentMethod = &payment.String
		}
		if proof.Valid {
			d.ProofImage = &proof.String
		}
		if amount.Valid {
			s := amount.Decimal.StringFixed(2)
			d.RefundAmount = &s
		}
		d.Status = refund.Status(status).String()
		d.OrderStatus = order.Status(orderStatus).String()
		d.CreatedAt = d.CreatedAt.UTC()
		d.UpdatedAt = d.UpdatedAt.UTC()
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
