package services

import (
	"als-keeper/internal/logger"
)

// InstallationStatus is a coarse progress signal emitted while the keeper
// acquires a language server binary.
type InstallationStatus string

const (
	StatusCheckingForUpdate InstallationStatus = "checking for update"
	StatusDownloading       InstallationStatus = "downloading"
)

/**
 * Sink for installation progress signals
 * @description
 * - Notifications are fire-and-forget; resolution never waits on them and
 *   never fails because of them
 * - Editor frontends plug in their own reporter to surface progress in the UI
 */
type StatusReporter interface {
	ReportStatus(status InstallationStatus)
}

type logStatusReporter struct {
	name string
}

/**
 * Create the default status reporter, which writes progress to the log
 * @param {string} name - Language server name included in each line
 * @returns {StatusReporter} Returns new log-backed reporter
 */
func NewLogStatusReporter(name string) StatusReporter {
	return &logStatusReporter{name: name}
}

func (r *logStatusReporter) ReportStatus(status InstallationStatus) {
	logger.Infof("%s: %s", r.name, status)
}
