// Package browser is an interactive Bubble Tea viewer for decoded frames.
//
// The list screen shows one entry per decode attempt with its source,
// command and checksum status. Enter opens the detail screen, which renders
// the frame in the detailed report format inside a scrollable viewport.
// The list supports filtering with "/" (by source, command or field value).
//
// Usage:
//
//	results, _ := processor.Collect(ctx, file)
//	if err := browser.Run(results, "capture.log", report.Options{}); err != nil {
//	    return err
//	}
package browser
