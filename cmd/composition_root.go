package cmd

import (
	"log/slog"

	httpin "shipment/internal/adapters/in/http"
	"shipment/internal/adapters/out/postgres"
	"shipment/internal/adapters/out/postgres/auditrepo"
	"shipment/internal/core/application/boundary"
	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/ports"
	"shipment/internal/jobs"

	"gorm.io/gorm"
)

// auditQueueCapacity bounds the entries waiting for the audit writer.
const auditQueueCapacity = 1024

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	blobs      ports.BlobStorage
	cache      queries.OrderDetailsCache
	auditRepo  *auditrepo.GormAuditLog
	auditLog   *auditrepo.AsyncAuditLog
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, infra *Infrastructure, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		cfg:        cfg,
		gormDB:     infra.DB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(infra.DB, infra.Publisher, logger),
		blobs:      infra.Blobs,
		auditRepo:  auditrepo.NewGormAuditLog(infra.DB),
		logger:     logger,
	}
	// A nil *OrderDetailsCache must stay a nil interface.
	if infra.Cache != nil {
		root.cache = infra.Cache
	}
	root.auditLog = auditrepo.NewAsyncAuditLog(root.auditRepo, auditQueueCapacity, logger)
	return root
}

// AuditLog must be Run for recorded entries to reach the database.
func (c *CompositionRoot) AuditLog() *auditrepo.AsyncAuditLog {
	return c.auditLog
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	return commands.NewApplyTransitionCommandHandler(c.orderUoWFactory(), c.blobs)
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	return commands.NewRequestRefundCommandHandler(c.uowFactoryFunc(), c.blobs)
}

func (c *CompositionRoot) CreateApproveRefundCommandHandler() commands.ApproveRefundCommandHandler {
	return commands.NewApproveRefundCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateRejectRefundCommandHandler() commands.RejectRefundCommandHandler {
	return commands.NewRejectRefundCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreatePurgeAuditLogCommandHandler() commands.PurgeAuditLogCommandHandler {
	return commands.NewPurgeAuditLogCommandHandler(c.auditRepo)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateListOrdersByStatusQueryHandler() queries.ListOrdersByStatusQueryHandler {
	return queries.NewListOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryProofQueryHandler() queries.GetDeliveryProofQueryHandler {
	return queries.NewGetDeliveryProofQueryHandler(c.gormDB, c.blobs)
}

func (c *CompositionRoot) CreateGetRiderHistoryQueryHandler() queries.GetRiderHistoryQueryHandler {
	return queries.NewGetRiderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRefundRequestsQueryHandler() queries.ListRefundRequestsQueryHandler {
	return queries.NewListRefundRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateActions() *boundary.Actions {
	return boundary.NewActions(boundary.Handlers{
		PlaceOrder:      c.CreateCreateOrderCommandHandler(),
		ApplyTransition: c.CreateApplyTransitionCommandHandler(),
		RequestRefund:   c.CreateRequestRefundCommandHandler(),
		ApproveRefund:   c.CreateApproveRefundCommandHandler(),
		RejectRefund:    c.CreateRejectRefundCommandHandler(),
	}, c.auditLog, c.logger)
}

func (c *CompositionRoot) CreateServer(actions *boundary.Actions) *httpin.Server {
	return httpin.NewServer(actions, httpin.Queries{
		OrderDetails:  c.CreateGetOrderDetailsQueryHandler(),
		ListOrders:    c.CreateListOrdersByStatusQueryHandler(),
		StatusHistory: c.CreateGetStatusHistoryQueryHandler(),
		DeliveryProof: c.CreateGetDeliveryProofQueryHandler(),
		RiderHistory:  c.CreateGetRiderHistoryQueryHandler(),
		Refunds:       c.CreateListRefundRequestsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	retention, err := c.cfg.AuditRetention()
	if err != nil {
		return nil, err
	}
	retentionJob, err := jobs.NewAuditRetentionJob(c.CreatePurgeAuditLogCommandHandler(), retention, c.logger)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(retentionJob), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
