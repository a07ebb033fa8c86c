package order

import (
	"fmt"
	"strings"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StatusChange is one accepted action on an order. From equals To for
// AttachProof, which records evidence without moving the status.
type StatusChange struct {
	OrderID     kernel.UUID
	OrderNumber string
	From        Status
	To          Status
	Action      Action
	ActorID     kernel.UUID
	ActorRole   actor.Role
	At          time.Time
}

// GenerateNumber builds a human-facing order number such as
// ORD-20260314-9F3A1C02.
func GenerateNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", at.UTC().Format("20060102"), suffix)
}
