// Package jobs implements background job processing for the WorkHive API.
//
// The jobs package contains scheduled tasks that run independently of
// HTTP request handling.
//
// # Job Types
//
//   - DigestWeeklyJob: Sends the subscriber job digest every Sunday at 00:10
//
// # Lifecycle
//
// Jobs expose Start and Stop for graceful lifecycle management:
//
//	job := jobs.NewDigestWeeklyJob(digestService, logger)
//	job.Start()
//	defer job.Stop()
//
// RunOnce triggers a single pass immediately, used by the manual mail
// endpoint and by tests.
package jobs
