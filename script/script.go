// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"context"
	"math"
	"strconv"

	"github.com/bitmark-inc/logger"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/container.go -package=mocks github.com/bitmark-inc/avltree/script Container

// Container - the tree operations available to a script
type Container interface {
	Insert(value int64) bool
	Remove(value int64) bool
	Contains(value int64) bool
	Count() int
	Height() int
	Values() []int64
}

// Runner - executes scripts against a container
type Runner struct {
	container Container
	log       *logger.L
}

// New - create a runner
func New(container Container, log *logger.L) (*Runner, error) {
	if nil == container {
		return nil, fault.ErrMissingArgument
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Runner{
		container: container,
		log:       log,
	}, nil
}

// RunFile - execute a Lua file in a fresh interpreter
func (r *Runner) RunFile(ctx context.Context, fileName string) error {
	L := r.newState(ctx)
	defer L.Close()

	r.log.Debugf("run file: %q", fileName)
	if err := L.DoFile(fileName); nil != err {
		r.log.Errorf("file: %q  error: %s", fileName, err)
		return err
	}
	return nil
}

// RunString - execute Lua source in a fresh interpreter
func (r *Runner) RunString(ctx context.Context, source string) error {
	L := r.newState(ctx)
	defer L.Close()

	if err := L.DoString(source); nil != err {
		r.log.Errorf("script error: %s", err)
		return err
	}
	return nil
}

func (r *Runner) newState(ctx context.Context) *lua.LState {
	L := lua.NewState()
	L.OpenLibs()
	if nil != ctx {
		L.SetContext(ctx)
	}

	functions := map[string]lua.LGFunction{
		"insert":   r.insert,
		"remove":   r.remove,
		"contains": r.contains,
		"count":    r.count,
		"height":   r.height,
		"values":   r.values,
		"log":      r.logMessage,
	}
	for name, f := range functions {
		L.SetGlobal(name, L.NewFunction(f))
	}
	return L
}

// a Lua number below this magnitude is known not to have been rounded
const exactLimit = 1 << 53

// fetch an integer argument, raising a Lua error for anything else
//
// numbers must be integral and below exactLimit; a decimal string
// gives the full int64 range
func checkValue(L *lua.LState, n int) int64 {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		f := float64(v)
		if f != math.Trunc(f) || f >= exactLimit || f <= -exactLimit {
			L.ArgError(n, fault.ErrInvalidValue.Error())
		}
		return int64(f)
	case lua.LString:
		i, err := strconv.ParseInt(string(v), 10, 64)
		if nil != err {
			L.ArgError(n, fault.ErrInvalidValue.Error())
		}
		return i
	default:
		L.TypeError(n, lua.LTNumber)
	}
	return 0
}

// convert a value for Lua, as a string if a number would round it
func pushable(v int64) lua.LValue {
	if v >= exactLimit || v <= -exactLimit {
		return lua.LString(strconv.FormatInt(v, 10))
	}
	return lua.LNumber(v)
}

func (r *Runner) insert(L *lua.LState) int {
	value := checkValue(L, 1)
	ok := r.container.Insert(value)
	if !ok {
		r.log.Warnf("insert: %d  error: %s", value, fault.ErrCapacityExceeded)
	}
	L.Push(lua.LBool(ok))
	return 1
}

func (r *Runner) remove(L *lua.LState) int {
	value := checkValue(L, 1)
	ok := r.container.Remove(value)
	if !ok {
		r.log.Debugf("remove: %d  error: %s", value, fault.ErrValueNotFound)
	}
	L.Push(lua.LBool(ok))
	return 1
}

func (r *Runner) contains(L *lua.LState) int {
	L.Push(lua.LBool(r.container.Contains(checkValue(L, 1))))
	return 1
}

func (r *Runner) count(L *lua.LState) int {
	L.Push(lua.LNumber(r.container.Count()))
	return 1
}

func (r *Runner) height(L *lua.LState) int {
	L.Push(lua.LNumber(r.container.Height()))
	return 1
}

func (r *Runner) values(L *lua.LState) int {
	t := L.NewTable()
	for _, v := range r.container.Values() {
		t.Append(pushable(v))
	}
	L.Push(t)
	return 1
}

func (r *Runner) logMessage(L *lua.LState) int {
	r.log.Infof("script: %s", L.CheckString(1))
	return 0
}
