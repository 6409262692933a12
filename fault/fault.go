// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LimitError    GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCapacityExceeded     = LimitError("tree capacity exceeded")
	ErrCountMismatch        = ProcessError("node count does not match tree count")
	ErrFileNotFound         = NotFoundError("file not found")
	ErrHeightIncorrect      = ProcessError("stored height is incorrect")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidValue         = InvalidError("invalid value")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrOrderingViolated     = ProcessError("value ordering violated")
	ErrPathIsNotADirectory  = InvalidError("path is not a directory")
	ErrTreeUnbalanced       = ProcessError("tree is unbalanced")
	ErrValueNotFound        = NotFoundError("value not found")
	ErrWatcherStopped       = ProcessError("watcher stopped")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLimit - determine the class of an error
func IsErrLimit(e error) bool { _, ok := e.(LimitError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
