package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// overdueCheckSchedule runs the watch every five minutes.
const overdueCheckSchedule = "0 */5 * * * *"

// OverdueShipmentsJob periodically finds shipments still in transit past
// their expected arrival date and reports them to the log, so operators can
// chase carriers before customers do.
type OverdueShipmentsJob struct {
	handler queries.GetOverdueShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentsJob creates a job that watches for overdue shipments.
func NewOverdueShipmentsJob(handler queries.GetOverdueShipmentsQueryHandler, logger *slog.Logger) *OverdueShipmentsJob {
	return &OverdueShipmentsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_shipments_job"),
	}
}

// Start begins the overdue shipment watch.
func (j *OverdueShipmentsJob) Start() error {
	_, err := j.cron.AddFunc(overdueCheckSchedule, func() {
		ctx := context.Background()
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipments job started (running every five minutes)")
	return nil
}

// Stop stops the overdue shipment watch.
func (j *OverdueShipmentsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipments job stopped")
}

func (j *OverdueShipmentsJob) run(ctx context.Context) {
	query, err := queries.NewGetOverdueShipmentsQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipments job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipments job failed", "error", err)
		return
	}

	for _, s := range overdue {
		j.logger.WarnContext(ctx, "Shipment is overdue",
			"shipmentId", s.ID.String(),
			"orderId", s.OrderID.String(),
			"trackingCode", s.TrackingCode,
			"carrier", s.Carrier,
			"expectedArrival", s.ExpectedArrival,
		)
	}
}
