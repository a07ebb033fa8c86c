package queries_test

import (
	"context"
	"errors"
	"time"

	"shipment/internal/adapters/out/postgres/orderrepo"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_ReadsThroughTheCache() {
	ctx := context.Background()
	o := suite.store(seed{buyer: suite.buyer, seller: suite.seller, status: order.OrderPlaced})

	cache := new(MockOrderDetailsCache)
	mock.InOrder(
		cache.On("Get", ctx, o.Number()).Return(queries.OrderDetails{}, int64(3), false, nil).Once(),
		cache.On("Set", ctx, mock.MatchedBy(func(d queries.OrderDetails) bool {
			return d.Number == o.Number()
		}), int64(3)).Return(nil).Once(),
	)
	handler := queries.NewGetOrderDetailsQueryHandler(suite.pg.DB, cache, nil)
	query, err := queries.NewGetOrderDetailsQuery(o.Number())
	suite.Require().NoError(err)

	details, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID().String(), details.ID)
	suite.Equal("1250.75", details.TotalAmount)
	suite.Equal("OrderPlaced", details.Status)
	suite.Equal("Order placed", details.StatusLabel)
	suite.Nil(details.RiderID)
	suite.Nil(details.DeliveryProof)
	cache.AssertExpectations(suite.T())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_CacheHitSkipsTheDatabase() {
	ctx := context.Background()
	cached := queries.OrderDetails{ID: kernel.NewUUID().String(), Number: "ORD-20260803-00000001"}
	cache := new(MockOrderDetailsCache)
	cache.On("Get", ctx, cached.Number).Return(cached, int64(0), true, nil).Once()

	query, err := queries.NewGetOrderDetailsQuery(cached.Number)
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderDetailsQueryHandler(suite.pg.DB, cache, nil).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(cached, details)
	cache.AssertExpectations(suite.T())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_CacheFailureFallsBack() {
	ctx := context.Background()
	rider := suite.rider
	o := suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &rider, status: order.OrderDelivered, proof: "DeliveryProof-x.jpg"})

	cache := new(MockOrderDetailsCache)
	cache.On("Get", ctx, o.Number()).Return(queries.OrderDetails{}, int64(0), false, errors.New("redis down")).Once()

	query, err := queries.NewGetOrderDetailsQuery(o.Number())
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderDetailsQueryHandler(suite.pg.DB, cache, nil).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().NotNil(details.RiderID)
	suite.Equal(rider.ID().String(), *details.RiderID)
	suite.Require().NotNil(details.DeliveryProof)
	suite.Equal("DeliveryProof-x.jpg", *details.DeliveryProof)
	cache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_UnknownNumber() {
	query, err := queries.NewGetOrderDetailsQuery("ORD-20260803-DEADBEEF")
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderDetailsQueryHandler(suite.pg.DB, nil, nil).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrdersByStatus_FiltersByRole() {
	rider, otherRider := suite.rider, suite.otherRider

	waiting := suite.store(seed{buyer: suite.buyer, seller: suite.seller, status: order.WaitingForCourier})
	waitingElsewhere := suite.store(seed{buyer: suite.otherBuyer, seller: suite.otherSeller, status: order.WaitingForCourier})
	mine := suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &rider, status: order.InTransit})
	theirs := suite.store(seed{buyer: suite.otherBuyer, seller: suite.otherSeller, rider: &otherRider, status: order.InTransit})

	list := func(status order.Status, by actor.Actor) []string {
		query, err := queries.NewListOrdersByStatusQuery(status, by)
		suite.Require().NoError(err)
		found, err := queries.NewListOrdersByStatusQueryHandler(suite.pg.DB).Handle(context.Background(), query)
		suite.Require().NoError(err)
		return ids(found)
	}

	suite.Run("seller sees the orders of their products", func() {
		suite.Equal([]string{waiting.ID().String()}, list(order.WaitingForCourier, suite.seller))
	})
	suite.Run("buyer sees their own orders", func() {
		suite.Equal([]string{theirs.ID().String()}, list(order.InTransit, suite.otherBuyer))
	})
	suite.Run("rider sees every order waiting for a courier", func() {
		suite.ElementsMatch([]string{waiting.ID().String(), waitingElsewhere.ID().String()},
			list(order.WaitingForCourier, suite.rider))
	})
	suite.Run("rider sees only bound orders in other statuses", func() {
		suite.Equal([]string{mine.ID().String()}, list(order.InTransit, suite.rider))
	})
	suite.Run("admin sees everything newest first", func() {
		suite.Equal([]string{theirs.ID().String(), mine.ID().String()}, list(order.InTransit, suite.admin))
	})
	suite.Run("empty status yields an empty list", func() {
		found := list(order.Refund, suite.admin)
		suite.NotNil(found)
		suite.Empty(found)
	})
}

func (suite *QueriesIntegrationTestSuite) TestGetStatusHistory_OldestFirst() {
	ctx := context.Background()
	o := suite.store(seed{buyer: suite.buyer, seller: suite.seller, status: order.OrderPlaced})
	at := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)

	rows := []orderrepo.StatusChangeDTO{
		{OrderID: o.ID().Bytes(), FromStatus: int(order.WaitingForCourier), ToStatus: int(order.InTransit),
			Action: order.Pickup.String(), ActorID: suite.rider.ID().Bytes(), ActorRole: "Rider", ChangedAt: at.Add(time.Hour)},
		{OrderID: o.ID().Bytes(), FromStatus: int(order.OrderPlaced), ToStatus: int(order.WaitingForCourier),
			Action: order.MarkAwaitingCourier.String(), ActorID: suite.seller.ID().Bytes(), ActorRole: "Farmer", ChangedAt: at},
	}
	suite.Require().NoError(suite.pg.DB.Create(&rows).Error)

	query, err := queries.NewGetStatusHistoryQuery(o.ID())
	suite.Require().NoError(err)

	history, err := queries.NewGetStatusHistoryQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("OrderPlaced", history[0].From)
	suite.Equal("WaitingForCourier", history[0].To)
	suite.Equal(suite.seller.ID().String(), history[0].ActorID)
	suite.Equal(order.Pickup.String(), history[1].Action)
	suite.Equal(at.Add(time.Hour), history[1].ChangedAt)
}

func (suite *QueriesIntegrationTestSuite) TestGetStatusHistory_NewOrderAndUnknownOrder() {
	ctx := context.Background()
	handler := queries.NewGetStatusHistoryQueryHandler(suite.pg.DB)
	o := suite.store(seed{buyer: suite.buyer, seller: suite.seller, status: order.OrderPlaced})

	query, err := queries.NewGetStatusHistoryQuery(o.ID())
	suite.Require().NoError(err)
	history, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(history)

	query, err = queries.NewGetStatusHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetDeliveryProof() {
	ctx := context.Background()
	rider := suite.rider
	delivered := suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &rider, status: order.OrderDelivered, proof: "DeliveryProof-abc.png"})
	inTransit := suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &rider, status: order.InTransit})

	handle := func(blobs *MockBlobStorage, id kernel.UUID, by actor.Actor) (queries.DeliveryProof, error) {
		query, err := queries.NewGetDeliveryProofQuery(id, by)
		suite.Require().NoError(err)
		return queries.NewGetDeliveryProofQueryHandler(suite.pg.DB, blobs).Handle(ctx, query)
	}

	suite.Run("seller gets a presigned link", func() {
		blobs := new(MockBlobStorage)
		blobs.On("PresignedURL", ctx, "DeliveryProof-abc.png", queries.DeliveryProofURLTTL).
			Return("https://blobs.local/DeliveryProof-abc.png?sig=1", nil).Once()

		proof, err := handle(blobs, delivered.ID(), suite.seller)

		suite.Require().NoError(err)
		suite.Equal("https://blobs.local/DeliveryProof-abc.png?sig=1", proof.URL)
		suite.WithinDuration(time.Now().Add(queries.DeliveryProofURLTTL), proof.ExpiresAt, time.Minute)
		blobs.AssertExpectations(suite.T())
	})

	suite.Run("admin gets a presigned link", func() {
		blobs := new(MockBlobStorage)
		blobs.On("PresignedURL", ctx, "DeliveryProof-abc.png", queries.DeliveryProofURLTTL).Return("u", nil).Once()

		_, err := handle(blobs, delivered.ID(), suite.admin)

		suite.Require().NoError(err)
	})

	suite.Run("buyer, rider and other sellers are forbidden", func() {
		for _, by := range []actor.Actor{suite.buyer, suite.rider, suite.otherSeller} {
			blobs := new(MockBlobStorage)

			_, err := handle(blobs, delivered.ID(), by)

			suite.Require().ErrorIs(err, errs.ErrForbidden)
			blobs.AssertNotCalled(suite.T(), "PresignedURL", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	suite.Run("order without proof", func() {
		_, err := handle(new(MockBlobStorage), inTransit.ID(), suite.seller)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("unknown order", func() {
		_, err := handle(new(MockBlobStorage), kernel.NewUUID(), suite.admin)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueriesIntegrationTestSuite) TestGetRiderHistory() {
	ctx := context.Background()
	rider, otherRider := suite.rider, suite.otherRider

	delivered := suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &rider, status: order.OrderDelivered, proof: "p.jpg"})
	cancelled := suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &rider, status: order.Cancelled})
	suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &rider, status: order.InTransit})
	suite.store(seed{buyer: suite.buyer, seller: suite.seller, rider: &otherRider, status: order.OrderDelivered, proof: "q.jpg"})

	handler := queries.NewGetRiderHistoryQueryHandler(suite.pg.DB)

	suite.Run("rider sees their finished orders", func() {
		query, err := queries.NewGetRiderHistoryQuery(rider.ID(), rider)
		suite.Require().NoError(err)

		found, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Equal([]string{cancelled.ID().String(), delivered.ID().String()}, ids(found))
	})

	suite.Run("admin sees any rider", func() {
		query, err := queries.NewGetRiderHistoryQuery(otherRider.ID(), suite.admin)
		suite.Require().NoError(err)

		found, err := handler.Handle(ctx, query)

		suite.Require().NoError(err)
		suite.Len(found, 1)
	})

	suite.Run("rider cannot see another rider", func() {
		query, err := queries.NewGetRiderHistoryQuery(otherRider.ID(), rider)
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)

		suite.Require().ErrorIs(err, errs.ErrForbidden)
	})
}
