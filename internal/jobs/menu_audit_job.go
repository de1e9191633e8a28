package jobs

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/robfig/cron/v3"
)

// DefaultMenuAuditSchedule runs the audit every minute, at second zero.
const DefaultMenuAuditSchedule = "0 * * * * *"

type overpricedMenuHider interface {
	Handle(ctx context.Context, cmd commands.HideOverpricedMenusCommand) ([]*menu.Menu, error)
}

// AuditRecorder receives the outcome of each audit run.
type AuditRecorder interface {
	MenuAuditFinished(hidden int, err error)
}

// MenuAuditJob periodically hides displayed menus whose price exceeds their
// products total. Product price changes already hide such menus, the audit
// catches anything that slipped through.
type MenuAuditJob struct {
	handler  overpricedMenuHider
	recorder AuditRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMenuAuditJob takes a six-field cron schedule (with seconds).
func NewMenuAuditJob(
	handler overpricedMenuHider,
	recorder AuditRecorder,
	schedule string,
	logger *slog.Logger,
) *MenuAuditJob {
	if schedule == "" {
		schedule = DefaultMenuAuditSchedule
	}
	return &MenuAuditJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "menu_audit_job"),
	}
}

func (j *MenuAuditJob) Name() string {
	return "menu audit"
}

func (j *MenuAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu audit job started", "schedule", j.schedule)
	return nil
}

// Run performs a single audit.
func (j *MenuAuditJob) Run(ctx context.Context) {
	hidden, err := j.handler.Handle(ctx, commands.NewHideOverpricedMenusCommand())
	j.recorder.MenuAuditFinished(len(hidden), err)

	if err != nil {
		j.logger.ErrorContext(ctx, "Menu audit job failed", "error", err)
		return
	}

	for _, m := range hidden {
		j.logger.WarnContext(ctx, "Overpriced menu hidden",
			"menu_id", m.ID().String(),
			"price", m.Price().String(),
			"products_total", m.ProductsTotal().String(),
		)
	}
}

// Stop waits for a running audit to finish.
func (j *MenuAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Menu audit job stopped")
}
