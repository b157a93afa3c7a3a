// Package fatal formats and delivers unrecoverable error reports.
//
// A Reporter is the single funnel for every failed check: it writes the abort
// banner, emits a structured log event, counts the failure, and hands control
// to an Aborter that never returns. There is no recovery path; once Fatalf is
// entered, no caller observes a normal return.
//
// The package default reporter is used by the check, assert, and ppcport
// packages. Programs can replace it at startup:
//
//	fatal.SetDefault(fatal.NewReporter(fatal.Config{
//		Logger:  appLogger,
//		Aborter: fatal.ProcessAborter{},
//	}))
package fatal
