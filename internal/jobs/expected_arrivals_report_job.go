package jobs

import (
	"context"
	"log/slog"

	"cargo/internal/core/application/usecases/report"
	"cargo/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at second zero of every fifth minute.
const DefaultReportSchedule = "0 */5 * * * *"

// ReportUseCaseFactory builds a report use case bound to a presenter.
type ReportUseCaseFactory interface {
	CreateReportUseCase(presenter ports.ReportPresenter) *report.UseCase
}

// ExpectedArrivalsReportJob periodically logs how many cargoes are bound for
// each destination.
type ExpectedArrivalsReportJob struct {
	reports  ReportUseCaseFactory
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExpectedArrivalsReportJob creates the job. An empty schedule falls back to
// DefaultReportSchedule. Schedules use the six-field cron syntax with seconds.
func NewExpectedArrivalsReportJob(
	reports ReportUseCaseFactory,
	schedule string,
	logger *slog.Logger,
) *ExpectedArrivalsReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &ExpectedArrivalsReportJob{
		reports:  reports,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "expected_arrivals_report_job"),
	}
}

func (j *ExpectedArrivalsReportJob) Name() string {
	return "expected arrivals report"
}

// Start registers the job on its schedule and starts the scheduler.
func (j *ExpectedArrivalsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expected arrivals report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *ExpectedArrivalsReportJob) Run(ctx context.Context) {
	j.reports.CreateReportUseCase(newReportLogPresenter(j.logger)).ExpectedArrivals(ctx)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ExpectedArrivalsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expected arrivals report job stopped")
}
