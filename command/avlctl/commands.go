// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/watcher"
)

// setup command handler
//
// commands that need neither the configuration nor the tree
func processSetupCommand(out io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Fprintf(out, "%s\n", version)
		return true

	case "help", "h", "?":
		usage(out, program)
		return true

	default:
		return false
	}
}

func usage(out io.Writer, program string) {
	fmt.Fprintf(out, "usage: %s [--help] [--verbose] [--capacity=N] [--config-file=FILE] [[command|help] arguments...]\n", program)

	fmt.Fprintf(out, "supported commands (may be chained):\n\n")
	fmt.Fprintf(out, "  help                   (h)   - display this message\n")
	fmt.Fprintf(out, "  version                (v)   - display version string\n\n")

	fmt.Fprintf(out, "  insert V...            (i)   - insert values, duplicates allowed\n")
	fmt.Fprintf(out, "  remove V...            (r)   - remove one occurrence of each value\n")
	fmt.Fprintf(out, "  contains V...          (c)   - report whether values are present\n\n")

	fmt.Fprintf(out, "  print                  (p)   - draw the tree with heights and balance\n")
	fmt.Fprintf(out, "  inorder                      - list values in order\n")
	fmt.Fprintf(out, "  preorder                     - list values node before children\n")
	fmt.Fprintf(out, "  postorder                    - list values children before node\n")
	fmt.Fprintf(out, "  check                        - verify ordering, heights and balance\n")
	fmt.Fprintf(out, "  stats                        - display node and rotation counters\n\n")

	fmt.Fprintf(out, "  compare V...                 - insert values into balanced and plain trees\n")
	fmt.Fprintf(out, "                                 and display both heights\n\n")

	fmt.Fprintf(out, "  run [SCRIPT]                 - execute a Lua script against the tree\n")
	fmt.Fprintf(out, "  watch [SCRIPT]               - execute a Lua script each time it is saved\n")
	fmt.Fprintf(out, "                                 until interrupted or the script is removed\n")
	fmt.Fprintf(out, "\n")
}

// processor - executes a chain of commands against one tree
type processor struct {
	out       io.Writer
	program   string
	tree      *avl.Locked
	script    string
	log       *logger.L
	scriptLog *logger.L
	watchLog  *logger.L
}

func newProcessor(out io.Writer, program string, tree *avl.Tree, defaultScript string) *processor {
	return &processor{
		out:       out,
		program:   program,
		tree:      avl.NewLocked(tree),
		script:    defaultScript,
		log:       logger.New("commands"),
		scriptLog: logger.New("script"),
		watchLog:  logger.New("watcher"),
	}
}

var commandNames = map[string]struct{}{
	"insert": {}, "i": {},
	"remove": {}, "r": {},
	"contains": {}, "c": {},
	"print": {}, "p": {},
	"inorder": {}, "preorder": {}, "postorder": {},
	"check": {}, "stats": {}, "compare": {},
	"run": {}, "watch": {},
	"version": {}, "v": {},
	"help": {}, "h": {}, "?": {},
}

// process all commands in order, stopping at the first error
func (p *processor) process(ctx context.Context, arguments []string) error {

	for len(arguments) > 0 {
		command := arguments[0]
		arguments = arguments[1:]

		p.log.Debugf("command: %q", command)

		var err error
		switch command {
		case "insert", "i":
			var values []int64
			values, arguments, err = takeValues(arguments)
			if nil == err {
				err = p.insert(values)
			}

		case "remove", "r":
			var values []int64
			values, arguments, err = takeValues(arguments)
			if nil == err {
				err = p.remove(values)
			}

		case "contains", "c":
			var values []int64
			values, arguments, err = takeValues(arguments)
			if nil == err {
				for _, v := range values {
					fmt.Fprintf(p.out, "%d: %t\n", v, p.tree.Contains(v))
				}
			}

		case "print", "p":
			p.tree.Do(func(tree *avl.Tree) {
				tree.Print(p.out)
			})

		case "inorder":
			p.list(avl.InOrder)

		case "preorder":
			p.list(avl.PreOrder)

		case "postorder":
			p.list(avl.PostOrder)

		case "check":
			err = p.tree.Check()
			if nil == err {
				fmt.Fprintf(p.out, "ok\n")
			}

		case "stats":
			p.stats()

		case "compare":
			var values []int64
			values, arguments, err = takeValues(arguments)
			if nil == err {
				compare(p.out, values)
			}

		case "run":
			var fileName string
			fileName, arguments, err = p.takeScript(arguments)
			if nil == err {
				err = p.run(ctx, fileName)
			}

		case "watch":
			var fileName string
			fileName, arguments, err = p.takeScript(arguments)
			if nil == err {
				err = p.watch(ctx, fileName)
			}

		case "version", "v":
			fmt.Fprintf(p.out, "%s\n", version)

		case "help", "h", "?":
			usage(p.out, p.program)

		default:
			p.log.Errorf("no such command: %q", command)
			fmt.Fprintf(p.out, "error: no such command: %q\n", command)
			err = fault.ErrInvalidCommand
		}

		if nil != err {
			return err
		}
	}
	return nil
}

// takeValues - consume leading integer arguments, at least one is required
func takeValues(arguments []string) ([]int64, []string, error) {
	values := []int64{}
	n := 0
	for _, a := range arguments {
		if _, isCommand := commandNames[a]; isCommand {
			break
		}
		v, err := strconv.ParseInt(a, 10, 64)
		if nil != err {
			return nil, arguments, fault.ErrInvalidValue
		}
		values = append(values, v)
		n++
	}
	if 0 == n {
		return nil, arguments, fault.ErrMissingArgument
	}
	return values, arguments[n:], nil
}

// takeScript - an optional file name argument, otherwise the configured script
func (p *processor) takeScript(arguments []string) (string, []string, error) {
	if len(arguments) > 0 {
		if _, isCommand := commandNames[arguments[0]]; !isCommand {
			return arguments[0], arguments[1:], nil
		}
	}
	if "" == p.script {
		return "", arguments, fault.ErrMissingArgument
	}
	return p.script, arguments, nil
}

func (p *processor) insert(values []int64) error {
	for _, v := range values {
		if !p.tree.Insert(v) {
			p.log.Warnf("insert: %d  error: %s", v, fault.ErrCapacityExceeded)
			fmt.Fprintf(p.out, "insert: %d: %s\n", v, fault.ErrCapacityExceeded)
			return fault.ErrCapacityExceeded
		}
	}
	return nil
}

func (p *processor) remove(values []int64) error {
	for _, v := range values {
		if !p.tree.Remove(v) {
			p.log.Warnf("remove: %d  error: %s", v, fault.ErrValueNotFound)
			fmt.Fprintf(p.out, "remove: %d: %s\n", v, fault.ErrValueNotFound)
			return fault.ErrValueNotFound
		}
	}
	return nil
}

func (p *processor) list(order avl.Order) {
	s := make([]string, 0, p.tree.Count())
	p.tree.Do(func(tree *avl.Tree) {
		for it := tree.Iterate(order); it.Next(); {
			s = append(s, strconv.FormatInt(it.Value(), 10))
		}
	})
	fmt.Fprintf(p.out, "%s: %s\n", order, strings.Join(s, " "))
}

func (p *processor) stats() {
	p.tree.Do(func(tree *avl.Tree) {
		s := tree.Statistics()
		fmt.Fprintf(p.out, "count:      %d\n", tree.Count())
		fmt.Fprintf(p.out, "height:     %d\n", tree.Height())
		fmt.Fprintf(p.out, "capacity:   %d\n", tree.Capacity())
		fmt.Fprintf(p.out, "allocated:  %d\n", s.Allocated)
		fmt.Fprintf(p.out, "in use:     %d\n", s.InUse)
		fmt.Fprintf(p.out, "pooled:     %d\n", s.Pooled)
		fmt.Fprintf(p.out, "released:   %d\n", s.Released)
		fmt.Fprintf(p.out, "rotations:  %d\n", s.Rotations)
		fmt.Fprintf(p.out, "rebalances: %d\n", s.Rebalances)
	})
}

// compare - heights of balanced and unbalanced trees built from the same values
func compare(out io.Writer, values []int64) {
	balanced := avl.New()
	plain := bst.New()
	for _, v := range values {
		balanced.Insert(v)
		plain.Insert(v)
	}
	fmt.Fprintf(out, "values: %d  bst height: %d  avl height: %d\n", len(values), plain.Height(), balanced.Height())
}

func (p *processor) run(ctx context.Context, fileName string) error {
	runner, err := script.New(p.tree, p.scriptLog)
	if nil != err {
		return err
	}
	err = runner.RunFile(ctx, fileName)
	if nil != err {
		fmt.Fprintf(p.out, "run: %q  error: %s\n", fileName, err)
		return err
	}
	fmt.Fprintf(p.out, "%s: count: %d  height: %d\n", fileName, p.tree.Count(), p.tree.Height())
	return nil
}

// watch - run the script now and again after every change
//
// script errors are reported but do not stop the watch
func (p *processor) watch(ctx context.Context, fileName string) error {
	w, err := watcher.New(fileName, p.watchLog)
	if nil != err {
		return err
	}
	defer w.Stop()

	if err := w.Start(); nil != err {
		return err
	}

	p.log.Infof("watching: %q", w.FilePath())
	_ = p.run(ctx, w.FilePath())

	for {
		select {
		case <-ctx.Done():
			p.log.Info("watch cancelled")
			return nil

		case <-w.Removed():
			p.log.Warnf("script: %q removed", w.FilePath())
			fmt.Fprintf(p.out, "%s: removed\n", w.FilePath())
			return nil

		case <-w.Changes():
			_ = p.run(ctx, w.FilePath())
		}
	}
}
