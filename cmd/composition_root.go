package cmd

import (
	"log/slog"

	"logistics/internal/adapters/out/orderservice"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/viacep"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	orderGateway   *orderservice.Gateway
	addressGateway *viacep.Gateway
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderGateway:   orderservice.NewGateway(configs.OrderServiceBaseURL, nil, logger),
		addressGateway: viacep.NewGateway(configs.ViaCepBaseURL, nil, logger),
		logger:         logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionShipmentStatusCommandHandler() commands.TransitionShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionShipmentStatusCommandHandler(f, c.orderGateway, shipment.DefaultOrderStatusMap())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByIDQueryHandler() queries.GetShipmentByIDQueryHandler {
	return queries.NewGetShipmentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueShipmentsQueryHandler() queries.GetOverdueShipmentsQueryHandler {
	return queries.NewGetOverdueShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckShippingAvailabilityQueryHandler() queries.CheckShippingAvailabilityQueryHandler {
	return queries.NewCheckShippingAvailabilityQueryHandler(c.addressGateway)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
