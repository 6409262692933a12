// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "capacity", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(os.Stdout, program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		processSetupCommand(os.Stdout, program, []string{"help"})
		return
	}

	if 1 == len(arguments) && processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	// read options and parse the configuration file
	var theConfiguration *Configuration
	switch len(options["config-file"]) {
	case 0:
		theConfiguration, err = defaultConfiguration()
	case 1:
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	if n := len(options["capacity"]); n > 0 {
		capacity, err := strconv.Atoi(options["capacity"][n-1])
		if nil != err || capacity < 0 {
			exitwithstatus.Message("%s: capacity: %q  error: %s", program, options["capacity"][n-1], fault.ErrInvalidCount)
		}
		theConfiguration.Capacity = capacity
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	tree := avl.New()
	if theConfiguration.Capacity > 0 {
		tree = avl.NewLimited(theConfiguration.Capacity)
	}
	log.Infof("capacity: %d", tree.Capacity())

	for _, v := range theConfiguration.Values {
		if !tree.Insert(v) {
			log.Criticalf("preload value: %d  error: %s", v, fault.ErrCapacityExceeded)
			exitwithstatus.Message("%s: preload value: %d  error: %s", program, v, fault.ErrCapacityExceeded)
		}
	}
	log.Infof("preloaded: %d values", tree.Count())

	// cancel any long running command on SIGINT or SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		log.Infof("received signal: %v", sig)
		cancel()
	}()

	p := newProcessor(os.Stdout, program, tree, theConfiguration.Script)
	if err := p.process(ctx, arguments); nil != err {
		log.Errorf("command error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}
