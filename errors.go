// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package treesnap

import "errors"

// Sentinel errors for treesnap operations.
var (
	// ErrNilWalker indicates a nil Walker receiver.
	ErrNilWalker = errors.New("walker is nil")
	// ErrNotDirectory indicates a walk root that is not a directory.
	ErrNotDirectory = errors.New("root is not a directory")
	// ErrWalkStopped is a convenience sentinel for callbacks that stop a walk.
	ErrWalkStopped = errors.New("walk stopped by callback")
)
