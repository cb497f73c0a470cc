package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoScript is returned by Scripted when a prompt has no scripted
	// answer left.
	ErrNoScript = errors.New("prompt: no scripted answer")
)
