// Package jobs provides scheduled background tasks for the point-of-sale service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field schedules with seconds).
//
// # Available Jobs
//
// MenuAuditJob hides displayed menus whose price exceeds the total of their products.
// Its schedule comes from MENU_AUDIT_SCHEDULE and defaults to once a minute.
//
// # Usage
//
//	audit := jobs.NewMenuAuditJob(hideOverpricedHandler, metrics, cfg.MenuAuditSchedule, logger)
//	jobManager := jobs.NewJobManager(audit)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted; the next scheduled run retries.
// A job that fails to start stops the jobs started before it.
package jobs
