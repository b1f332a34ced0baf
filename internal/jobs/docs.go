// Package jobs provides scheduled background tasks for the cargo service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field syntax, seconds first.
//
// # Available Jobs
//
// ExpectedArrivalsReportJob runs the expected arrivals report and writes one
// log line per destination. Its schedule comes from REPORT_SCHEDULE and
// defaults to "0 */5 * * * *" (every five minutes).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(compositionRoot, cfg.ReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A report that cannot be produced is logged as a warning and the job keeps
// its schedule. A job that fails to start stops the jobs started before it.
package jobs
