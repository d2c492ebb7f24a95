// Package events defines the command started/completed notifications the
// execution subsystem emits to the surrounding shell's logging collaborator.
package events
