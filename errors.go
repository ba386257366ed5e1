package hashlife

import "errors"

// Sentinel errors returned by the node algebra. Wrap with fmt.Errorf
// and %w for context; test with errors.Is.
var (
	// ErrInconsistentLevels is returned by Intern when the four
	// supplied children are not all at the same level.
	ErrInconsistentLevels = errors.New("hashlife: children are not all at the same level")

	// ErrLevelMismatch is returned by AsStateMap when the supplied
	// target StateMap's level does not match the node's level.
	ErrLevelMismatch = errors.New("hashlife: state map level does not match node level")

	// ErrLevelTooLow is returned by operations (NextGen, LeapGen,
	// CenteredSubnode, CenteredHorizontal, CenteredVertical, Expand,
	// Shrink) invoked on a node below their minimum required level.
	ErrLevelTooLow = errors.New("hashlife: node level is too low for this operation")

	// ErrCannotShrink is returned by Shrink when the outer ring of
	// the node is not entirely empty.
	ErrCannotShrink = errors.New("hashlife: outer ring is not empty, cannot shrink")
)
