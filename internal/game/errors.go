/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import "errors"

var (
	// ErrEmptyPool means no hunting ground carries the requested
	// difficulty. With well-formed reference data this never happens.
	ErrEmptyPool = errors.New("no hunting grounds at requested difficulty")

	// ErrNoCandidates means the selected hunting ground has no goal
	// records. Also a data-integrity fault, not a user error.
	ErrNoCandidates = errors.New("no goal records for hunting ground")

	// ErrInvalidTransition is returned when an action arrives in a turn
	// phase that does not permit it.
	ErrInvalidTransition = errors.New("invalid turn transition")

	// ErrBadDifficulty is returned for difficulties outside [1,10].
	ErrBadDifficulty = errors.New("difficulty out of range")
)
