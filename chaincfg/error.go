// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidParams indicates a parameter set that violates one of its
	// construction invariants.  It is never recoverable.
	ErrInvalidParams ErrorCode = iota

	// ErrHeightOutOfRange indicates a founders reward lookup for a height
	// outside of the founders reward period.
	ErrHeightOutOfRange

	// ErrInvalidDestination indicates a founders reward address that does
	// not decode to a pay-to-script-hash destination for the network.
	ErrInvalidDestination

	// ErrActivationHashMismatch indicates that the block observed at an
	// upgrade activation height is not the pinned activation block.
	ErrActivationHashMismatch

	// ErrNetworkAlreadySelected indicates an attempt to select a network
	// after one was already selected.
	ErrNetworkAlreadySelected

	// ErrRegtestOnly indicates an override requested for a network other
	// than the regression test network.
	ErrRegtestOnly

	// ErrInvalidUpgradeIndex indicates an upgrade that is unknown or may
	// not be overridden.
	ErrInvalidUpgradeIndex

	// ErrUnknownNetwork indicates an unrecognized network name.
	ErrUnknownNetwork

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidParams:          "ErrInvalidParams",
	ErrHeightOutOfRange:       "ErrHeightOutOfRange",
	ErrInvalidDestination:     "ErrInvalidDestination",
	ErrActivationHashMismatch: "ErrActivationHashMismatch",
	ErrNetworkAlreadySelected: "ErrNetworkAlreadySelected",
	ErrRegtestOnly:            "ErrRegtestOnly",
	ErrInvalidUpgradeIndex:    "ErrInvalidUpgradeIndex",
	ErrUnknownNetwork:         "ErrUnknownNetwork",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a violation of the parameter rules.  The caller can use
// errors.Is with an ErrorCode, or type assert to *Error to access the code.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e *Error) Error() string {
	return e.Description
}

// Is implements the interface to work with errors.Is.  An *Error matches an
// ErrorCode of the same value and any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.ErrorCode == t
	case *Error:
		return e.ErrorCode == t.ErrorCode
	}
	return false
}

// Error satisfies the error interface so an ErrorCode can be used as the
// target of errors.Is.
func (e ErrorCode) Error() string {
	return e.String()
}

// paramsError creates an Error given a set of arguments.
func paramsError(c ErrorCode, desc string) *Error {
	return &Error{ErrorCode: c, Description: desc}
}
