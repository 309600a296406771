// Package orchestration runs several engines on the same index concurrently
// and cross-checks their results. It decouples business logic from
// presentation via the ProgressReporter, ResultPresenter and ErrorHandler
// interfaces.
package orchestration
