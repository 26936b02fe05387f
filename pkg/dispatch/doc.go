// Package dispatch runs the mail-merge send loop: render each row, hand the
// message to the transport, report progress, wait the configured interval,
// repeat.
//
// A Controller runs one job at a time on its own goroutine and reports
// through an event channel: one progress event per delivered row, then
// exactly one terminal event (finished or error), after which the channel is
// closed. The loop is strictly sequential and fails closed: the first
// transport failure aborts the job and the remaining rows are never
// attempted. There are no retries and no resume; a failed job restarts from
// the first row.
//
// Cancellation is cooperative. Cancel (or cancelling the start context)
// is observed at the top of each iteration and during the inter-message
// wait; an in-flight transport call is never interrupted. A cancelled job
// ends with a normal finished event whose Cancelled flag is set and whose
// Sent count reflects the rows delivered before the stop.
package dispatch
