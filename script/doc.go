// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - drive a tree from a Lua script
//
// the script sees these global functions:
//
//   insert(v)    add integer v, returns false if the tree is full
//   remove(v)    remove one v, returns false if not present
//   contains(v)  true if v is present
//   count()      number of values
//   height()     height of the root, -1 when empty
//   values()     sequence table of all values in ascending order
//   log(msg)     write msg to the script log channel
//
// a value is an integral number smaller than 2^53 in magnitude, or a
// decimal string for any int64.  values() returns strings for values
// of 2^53 or more in magnitude so they are never rounded
package script
