package queries_test

import (
	"context"

	"shipment/internal/adapters/out/postgres/refundrepo"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/pkg/errs"
)

// storeRefund saves a request against o in the given status.
func (suite *QueriesIntegrationTestSuite) storeRefund(o *order.Order, claim refund.Claim, status refund.Status) *refund.Request {
	var amount *kernel.Money
	if claim.Solution.IsMonetary() {
		total := o.TotalAmount()
		amount = &total
	}
	var resolvedBy *kernel.UUID
	if status != refund.Pending {
		id := suite.seller.ID()
		resolvedBy = &id
	}

	r, err := refund.RestoreRequest(kernel.NewUUID(), o.ID(), o.AccountID(), claim, amount, status, resolvedBy, suite.clock, suite.clock)
	suite.Require().NoError(err)
	suite.Require().NoError(refundrepo.NewGormRefundRepository(suite.pg.DB, noopTracker{}).Add(context.Background(), r))
	return r
}

func refundIDs(details []queries.RefundRequestDetails) []string {
	out := make([]string, 0, len(details))
	for _, d := range details {
		out = append(out, d.ID)
	}
	return out
}

func (suite *QueriesIntegrationTestSuite) TestListRefundRequests() {
	ctx := context.Background()
	refundClaim := refund.Claim{Reason: "Tomatoes arrived crushed", Solution: refund.SolutionRefund, ReturnMethod: refund.PickUp, PaymentMethod: "GCash"}
	replaceClaim := refund.Claim{Reason: "Wrong variety", Solution: refund.SolutionReplace, ReturnMethod: refund.DropOff}

	mine := suite.store(seed{buyer: suite.buyer, seller: suite.seller, status: order.Pending, proof: "p.jpg"})
	pending := suite.storeRefund(mine, refundClaim, refund.Pending)
	decided := suite.store(seed{buyer: suite.buyer, seller: suite.seller, status: order.Replace, proof: "p.jpg"})
	approved := suite.storeRefund(decided, replaceClaim, refund.Approved)
	foreign := suite.store(seed{buyer: suite.otherBuyer, seller: suite.otherSeller, status: order.Pending, proof: "p.jpg"})
	other := suite.storeRefund(foreign, refundClaim, refund.Pending)

	handler := queries.NewListRefundRequestsQueryHandler(suite.pg.DB)
	handle := func(status refund.Status, by actor.Actor) ([]queries.RefundRequestDetails, error) {
		query, err := queries.NewListRefundRequestsQuery(status, by)
		suite.Require().NoError(err)
		return handler.Handle(ctx, query)
	}

	suite.Run("buyer sees the requests they opened", func() {
		found, err := handle(refund.UnknownStatus, suite.buyer)

		suite.Require().NoError(err)
		suite.Equal([]string{approved.ID().String(), pending.ID().String()}, refundIDs(found))
	})

	suite.Run("seller sees pending requests on their products", func() {
		found, err := handle(refund.Pending, suite.seller)

		suite.Require().NoError(err)
		suite.Require().Len(found, 1)
		d := found[0]
		suite.Equal(pending.ID().String(), d.ID)
		suite.Equal(mine.Number(), d.OrderNumber)
		suite.Equal("Tomatoes arrived crushed", d.Reason)
		suite.Equal("Refund", d.Solution)
		suite.Equal("Pick Up", d.ReturnMethod)
		suite.Require().NotNil(d.RefundAmount)
		suite.Equal("1250.75", *d.RefundAmount)
		suite.Equal("Pending", d.Status)
		suite.Equal("Pending", d.OrderStatus)
	})

	suite.Run("replacement carries no amount", func() {
		found, err := handle(refund.Approved, suite.seller)

		suite.Require().NoError(err)
		suite.Require().Len(found, 1)
		suite.Equal("Replace", found[0].Solution)
		suite.Nil(found[0].RefundAmount)
		suite.Nil(found[0].PaymentMethod)
	})

	suite.Run("admin sees everything", func() {
		found, err := handle(refund.UnknownStatus, suite.admin)

		suite.Require().NoError(err)
		suite.ElementsMatch([]string{pending.ID().String(), approved.ID().String(), other.ID().String()}, refundIDs(found))
	})

	suite.Run("other seller sees only their own", func() {
		found, err := handle(refund.UnknownStatus, suite.otherSeller)

		suite.Require().NoError(err)
		suite.Equal([]string{other.ID().String()}, refundIDs(found))
	})

	suite.Run("rider is forbidden", func() {
		_, err := handle(refund.UnknownStatus, suite.rider)

		suite.Require().ErrorIs(err, errs.ErrForbidden)
	})
}
