//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/463N7/CYD-wifi-monitor/app"
	"github.com/463N7/CYD-wifi-monitor/hal"
	"github.com/463N7/CYD-wifi-monitor/internal/buildinfo"
	"github.com/463N7/CYD-wifi-monitor/internal/config"
	"github.com/463N7/CYD-wifi-monitor/internal/metrics"
	"github.com/463N7/CYD-wifi-monitor/internal/tui"
)

//nolint:gochecknoglobals // flag bindings
var (
	headless     bool
	hz           int
	ticks        uint64
	snapshotPath string
	tuiMode      bool
	configPath   string
	scenarioPath string
	metricsAddr  string
	serialMirror bool
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   "cyd-wifi-monitor",
		Short: "2.4 GHz Wi-Fi congestion monitor (host simulator)",
		Long: `Runs the CYD Wi-Fi monitor firmware loop on the desktop against a simulated radio.
By default a window shows the 320x240 panel; click to toggle the view, type 't' to toggle
and 's' to rescan. --headless runs without a window and --tui shows the text views in the terminal.`,
		SilenceUsage: true,
		RunE:         run,
	}
)

//nolint:gochecknoinits // cobra wiring
func init() {
	logrus.SetOutput(os.Stderr)

	f := rootCmd.Flags()
	f.BoolVar(&headless, "headless", false, "Run without a window.")
	f.IntVar(&hz, "hz", 60, "Loop rate in headless and TUI mode.")
	f.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	f.StringVar(&snapshotPath, "snapshot", "", "Write the final panel as a PNG when a headless run ends.")
	f.BoolVar(&tuiMode, "tui", false, "Show the text views in an interactive terminal UI.")
	f.StringVar(&configPath, "config", "", "YAML file overriding the default parameters.")
	f.StringVar(&scenarioPath, "scenario", "", "YAML file describing the simulated access points.")
	f.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9109).")
	f.BoolVar(&serialMirror, "serial-mirror", false, "Mirror every rendered view as text on the log output.")
	f.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")

	rootCmd.Version = buildinfo.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if headless && tuiMode {
		return errors.New("--headless and --tui cannot be used together")
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("serial-mirror") {
		cfg.SerialMirror = serialMirror
	}

	hostCfg := hal.HostConfig{Console: !tuiMode}
	if scenarioPath != "" {
		s, err := hal.LoadScenario(scenarioPath)
		if err != nil {
			return err
		}
		hostCfg.Scenario = s
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	appCfg := app.Config{
		Monitor: cfg,
		Verbose: verbose,
		Console: !tuiMode,
		Boot:    !tuiMode,
	}

	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		m, err := metrics.New(reg)
		if err != nil {
			return err
		}
		appCfg.Observer = m
		var log logrus.FieldLogger = logrus.StandardLogger()
		if tuiMode {
			log = nil
		}
		go func() {
			if err := metrics.Serve(ctx, metricsAddr, reg, log); err != nil {
				logrus.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	switch {
	case tuiMode:
		return runTUI(ctx, hostCfg, appCfg)
	case headless:
		err := hal.RunHeadless(ctx, app.StepFunc(appCfg), hal.HeadlessConfig{
			Hz:       hz,
			Ticks:    ticks,
			Snapshot: snapshotPath,
			Host:     hostCfg,
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	default:
		return hal.RunWindow(hostCfg, app.StepFunc(appCfg))
	}
}

func runTUI(ctx context.Context, hostCfg hal.HostConfig, appCfg app.Config) error {
	hostCfg.LogOutput = io.Discard
	appCfg.Monitor.SerialMirror = false

	h := hal.NewHost(hostCfg)
	log := app.NewLogger(h.Logger(), appCfg.Verbose)
	appCfg.Log = log

	sys, err := app.NewWithConfig(h, appCfg)
	if err != nil {
		return err
	}
	return tui.Run(ctx, sys, sys.Monitor(), tui.Options{
		Hz:       hz,
		BarWidth: appCfg.Monitor.BarWidth,
		Log:      log,
	})
}
