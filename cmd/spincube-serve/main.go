// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spincube-serve serves a spincube WASM build and reloads open
// pages whenever the build changes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cogentcore.org/spincube/base/logx"
	"cogentcore.org/spincube/devserver"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand(serve).Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg devserver.Config) error {
	s := devserver.New(cfg)
	logx.PrintlnDebug("wasm_exec.js:", s.Config.WasmExec)
	return s.Run(ctx)
}

// newCommand returns the root command, which calls run with the
// configuration given by its flags.
func newCommand(run func(ctx context.Context, cfg devserver.Config) error) *cobra.Command {
	cfg := devserver.DefaultConfig()
	var verbose, veryVerbose, quiet bool

	cmd := &cobra.Command{
		Use:   "spincube-serve",
		Short: "Serve a spincube WASM build with live reload",
		Long: `spincube-serve serves index.html, wasm_exec.js and the files in --dir.
Pages connect back over a WebSocket and reload when the WASM binary or
spincube.toml in --dir changes, or when "spincube-serve reload" is run.
Build the binary with:

	GOOS=js GOARCH=wasm go build -o spincube.wasm ./cmd/spincube`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// the listen address is logged at info level, so keep it
			// visible unless a flag says otherwise
			if verbose || veryVerbose || quiet {
				logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			} else {
				logx.UserLevel = slog.LevelInfo
			}
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			logx.PrintlnInfo("rebuild with: GOOS=js GOARCH=wasm go build -o",
				filepath.Join(cfg.Dir, cfg.Wasm), "./cmd/spincube")
			return run(ctx, cfg)
		},
	}
	cmd.SetContext(context.Background())

	f := cmd.Flags()
	f.StringVar(&cfg.Addr, "addr", cfg.Addr, "address to listen on")
	f.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding the WASM binary and spincube.toml")
	f.StringVar(&cfg.Wasm, "wasm", cfg.Wasm, "file name of the WASM binary in --dir")
	f.StringVar(&cfg.WasmExec, "wasm-exec", cfg.WasmExec, "path of wasm_exec.js (default: found in GOROOT)")
	f.StringVar(&cfg.Title, "title", cfg.Title, "page title")
	f.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "how long changes must settle before reloading")
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "print verbose log messages (the default)")
	pf.BoolVar(&veryVerbose, "vv", false, "print very verbose (debug) log messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only print errors")

	cmd.AddCommand(newReloadCommand())
	return cmd
}

// newReloadCommand returns the command that asks a running server to
// reload its pages.
func newReloadCommand() *cobra.Command {
	addr := devserver.DefaultConfig().Addr
	timeout := 5 * time.Second
	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Reload the pages connected to a running spincube-serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return devserver.RequestReload(ctx, addr)
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", addr, "address of the running server")
	f.DurationVar(&timeout, "timeout", timeout, "how long to wait for the server")
	return cmd
}
