/*
Package session orchestrates pick sessions and exposes the plugin commands.

A Plugin owns the picker, the normalizer and the temp file manager. Each call
to Present creates an independent Session that moves through

	Idle -> AwaitingPick -> Normalizing -> Completed
	Idle -> Failed                        (invalid configuration)
	AwaitingPick -> Cancelled | Failed
	Normalizing -> Failed

and delivers exactly one Response to its callback, success or error. Errors
carry the wire codes of ErrorCode. Dispatch routes the named commands
"present" and "cleanup" and rejects anything else with
CodeUnsupportedAction.
*/
package session
