/*
Package picker defines the contract between a pick session and the UI that
collects media from the user, plus two implementations.

A Picker completes exactly once, either cancelled or with the selected items
in selection order:

	outcome, err := p.Pick(ctx, cfg)
	if outcome.Cancelled { ... }

Static serves paths chosen up front by the host (command line arguments, an
HTTP request body). Dialog opens a native file dialog through zenity with
filters derived from the configured media type, and re-prompts with the
configured warning when the selection exceeds the maximum.
*/
package picker
