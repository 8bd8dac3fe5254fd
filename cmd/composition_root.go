package cmd

import (
	"log/slog"
	"strings"

	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/ordernum"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. Each Create*
// method hands out a fully wired handler; handlers are cheap to construct
// and hold no per-request state.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	orderNumbers ports.OrderNumberGenerator
	events       ports.OrderEventPublisher
	logger       *slog.Logger
}

// NewCompositionRoot builds the composition root from configuration and an
// open database connection. When no Kafka host is configured, order events
// are discarded instead of published.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	fallback, err := ordernum.NewFallbackGenerator()
	if err != nil {
		return CompositionRoot{}, err
	}

	var events ports.OrderEventPublisher = kafka.NewNopPublisher()
	if config.KafkaHost != "" {
		events = kafka.NewPublisher(strings.Split(config.KafkaHost, ","), config.KafkaOrderEventsTopic)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderNumbers: ordernum.NewGenerator(ordernum.NewProcedureGenerator(gormDB), fallback, logger),
		events:       events,
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.orderNumbers, c.events, c.logger)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.events, c.logger)
}

func (c *CompositionRoot) CreateAttachReceiptCommandHandler() commands.AttachReceiptCommandHandler {
	var f commands.ReceiptUoWFactory = FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachReceiptCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewReceiptCommandHandler() commands.ReviewReceiptCommandHandler {
	var f commands.ReceiptUoWFactory = FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewReceiptCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.events, c.logger)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB, c.logger)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}
