// Package jobs provides scheduled background tasks for the shipment service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// AuditRetentionJob runs daily at 03:00 and deletes API log entries older than
// AUDIT_RETENTION_DAYS. It never touches orders or refund requests.
//
// # Usage
//
//	retention, err := jobs.NewAuditRetentionJob(purgeHandler, 90*24*time.Hour, logger)
//	if err != nil {
//		return err
//	}
//
//	jobManager := jobs.NewJobManager(retention)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed purge is logged and retried on the next tick. A retention shorter
// than one day is rejected when the job is built.
package jobs
