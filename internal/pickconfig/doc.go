// Package pickconfig turns the loosely-typed option map sent by the host into
// an immutable, validated Config for one pick session.
//
// Parse never touches the outside world. Values of the wrong type are treated
// as absent and replaced by their defaults; only a missing map and
// inconsistent min/max bounds are rejected, with errors matching
// ErrInvalidConfig.
//
// Config also derives the settings a picker UI needs (screens, start screen,
// library filter, multiple selection, confirm label) so collaborators do not
// re-interpret the raw options.
package pickconfig
