// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/trivert/config"
	"cogentcore.org/trivert/logx"
	"cogentcore.org/trivert/math32"
	"cogentcore.org/trivert/system"
	_ "cogentcore.org/trivert/system/driver"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// flags are the command line flags of the root command.
type flags struct {
	config  string
	logFile string
	vv      bool
	v       bool
	q       bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "trivert",
		Short:         "Open a TriVert window and check the math kernel",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "config file (.toml, .yaml or .yml)")
	cmd.Flags().StringVar(&f.logFile, "log", "", "log file, overriding the config file; empty disables file logging")
	pf.BoolVar(&f.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&f.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&f.q, "quiet", "q", false, "only show error messages")
	cmd.AddCommand(newConfigCmd(f))
	return cmd
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config <file>",
		Short: "Write the default configuration to the given .toml or .yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			if err := config.Save(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0])
			return nil
		},
	}
}

// loadConfig returns the default config, overridden by the config file if any.
func loadConfig(f *flags) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if f.config != "" {
		if err := config.Open(cfg, f.config); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log") {
		cfg.Log.File = f.logFile
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if f.vv || f.v || f.q {
		level = logx.LevelFromFlags(f.vv, f.v, f.q)
	}
	logx.UserLevel = level

	handlers := []slog.Handler{logx.NewConsoleHandler(cmd.ErrOrStderr())}
	if cfg.Log.File != "" {
		file, err := homedir.Expand(cfg.Log.File)
		if err != nil {
			return err
		}
		fl := logx.NewLogger(file)
		fl.BeginLog()
		defer func() {
			fl.EndLog()
			fl.Close()
		}()
		handlers = append(handlers, fl.Handler())
	}
	prev := slog.Default()
	slog.SetDefault(slog.New(logx.NewMultiHandler(handlers...)))
	defer slog.SetDefault(prev)

	w, err := system.NewWindow(cfg.WindowOptions())
	if err != nil {
		slog.Error("could not create window", "err", err)
		return err
	}
	defer w.Release()
	slog.Info("window created", "driver", w.Driver(), "title", w.Title(), "geometry", w.Geometry())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "window %q (%s): %v\n", w.Title(), w.Driver(), w.Geometry())
	checkMath(out)
	return nil
}

// checkMath prints the results of a few kernel operations with
// well-known answers.
func checkMath(out io.Writer) {
	fmt.Fprintf(out, "clamp(23, 5, 19) = %v\n", math32.Clamp[float32](23, 5, 19))
	fmt.Fprintf(out, "lerp(9, 22, 0.5) = %v\n", math32.Lerp(9, 22, 0.5))
	fmt.Fprintf(out, "normal(3, 4) = %v\n", math32.Vec2(3, 4).Normal())
	fmt.Fprintf(out, "right x up = %v\n", math32.Vector3Right().Cross(math32.Vector3Up()))
	slog.Debug("math check done", "deg2rad(180)", math32.DegToRad(180))
}
