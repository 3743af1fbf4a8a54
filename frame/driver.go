// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame drives a per-frame callback from a host frame source,
// such as the browser requestAnimationFrame.
package frame

import (
	"fmt"
	"sync/atomic"

	"cogentcore.org/spincube/base/errors"
)

// States are the states of a [Driver].
type States int32

const (
	// Idle is the state before Start.
	Idle States = iota

	// Scheduled means one frame callback is pending.
	Scheduled

	// Running means the ticker is running for the current frame.
	Running

	// Stopped is the terminal state after Stop.
	Stopped
)

func (s States) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Scheduled:
		return "Scheduled"
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

// Ticker is advanced once per frame.
type Ticker interface {
	Tick()
}

// Host is a display synchronized frame source bound to one callback.
// The host owns the callback handle for as long as it lives.
type Host interface {

	// RequestFrame schedules one call of the bound callback
	// for the next frame.
	RequestFrame() error

	// Release cancels any pending frame and frees the callback handle.
	Release()
}

// NewHostFunc returns a [Host] bound to the given callback.
type NewHostFunc func(callback func()) (Host, error)

// Driver calls a [Ticker] once per host frame until stopped.
type Driver struct {
	ticker Ticker
	host   Host
	state  atomic.Int32
}

// NewDriver returns a new idle [Driver] for t.
func NewDriver(t Ticker) *Driver {
	return &Driver{ticker: t}
}

// State returns the current state.
func (d *Driver) State() States {
	return States(d.state.Load())
}

// Start binds the driver to a new host and schedules the first frame.
// A driver can only be started once.
func (d *Driver) Start(newHost NewHostFunc) error {
	if !d.state.CompareAndSwap(int32(Idle), int32(Scheduled)) {
		return fmt.Errorf("frame: cannot start driver in state %v", d.State())
	}
	h, err := newHost(d.frame)
	if err != nil {
		d.state.Store(int32(Stopped))
		return err
	}
	d.host = h
	if err := h.RequestFrame(); err != nil {
		d.Stop()
		return err
	}
	return nil
}

// frame is the callback bound to the host.
func (d *Driver) frame() {
	if !d.state.CompareAndSwap(int32(Scheduled), int32(Running)) {
		return
	}
	d.ticker.Tick()
	if !d.state.CompareAndSwap(int32(Running), int32(Scheduled)) {
		return // stopped during the tick
	}
	errors.Log(d.host.RequestFrame())
}

// Stop stops the driver and releases its host. It is safe to call
// more than once, including from within the ticker.
func (d *Driver) Stop() {
	if States(d.state.Swap(int32(Stopped))) == Stopped {
		return
	}
	if d.host != nil {
		d.host.Release()
	}
}
