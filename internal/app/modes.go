package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feeboard/internal/api"
	"feeboard/internal/live"
	"feeboard/internal/metrics"
	"feeboard/internal/render"
	"feeboard/internal/tui/controller"
	"feeboard/internal/tui/design"
	"feeboard/pkg/logging"
)

// WatchOptions tunes the headless watch mode.
type WatchOptions struct {
	// Interval overrides live.pollInterval when positive
	Interval time.Duration
	// MetricsAddr overrides metrics.listenAddr when set
	MetricsAddr string
	// Out receives one summary line per applied update; nil discards them
	Out io.Writer
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(true)

	level, err := logging.ParseLevel(config.Feeboard.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	logChan := logging.InitForTUI(logLevel(config, level))
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(*config.Feeboard, services.Client, services.Poller, config.Debug, logChan)
	// Quitting stops the poller; this covers the program ending any other way.
	defer services.Poller.Stop()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// runWatchMode polls the live status without a UI, logging every update
// and feeding the live gauges.
func runWatchMode(ctx context.Context, config *Config, services *Services, opts WatchOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := services.Poller
	if opts.Interval > 0 {
		poller = live.NewPoller(services.Client, opts.Interval)
	}

	addr := config.Feeboard.Metrics.ListenAddr
	if opts.MetricsAddr != "" {
		addr = opts.MetricsAddr
	}
	if addr != "" {
		metrics.RegisterMetrics([]string{"gateway", "live"})
		srv := metrics.NewServer(addr)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logging.Warn("Watch", "Metrics server shutdown: %v", err)
			}
		}()
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	board := render.NewLiveBoard()
	liveMetrics := metrics.NewLiveMetrics()

	logging.Info("Watch", "Watching %s every %s. Press Ctrl+C to stop.", config.Feeboard.Backend.BaseURL, poller.Interval())
	updates := poller.Start(ctx)
	defer poller.Stop()

	for u := range updates {
		if !applyWatchUpdate(board, liveMetrics, u) {
			continue
		}
		fmt.Fprintln(out, watchLine(board))
	}

	logging.Info("Watch", "Stopped after %d polls", board.LastSequence())
	return nil
}

// applyWatchUpdate applies u to the board and the gauges. It reports
// false for an update older than one already applied.
func applyWatchUpdate(board *render.LiveBoard, lm *metrics.LiveMetrics, u live.Update) bool {
	if u.Err != nil {
		if !board.Fail(u.Seq, u.Err) {
			return false
		}
		lm.RecordFailure()
		logging.Warn("Watch", "Poll %d failed: %v", u.Seq, u.Err)
		return true
	}
	if !board.Apply(u.Seq, u.Status) {
		return false
	}
	lm.RecordSuccess(liveSample(u.Status))
	logging.Info("Watch", "Poll %d: fastest %s, half hour %s sat/vB, mempool %s tx",
		u.Seq, board.Fastest, board.HalfHour, board.Mempool)
	return true
}

func liveSample(st api.LiveStatus) metrics.LiveSample {
	s := metrics.LiveSample{CacheUsed: st.CacheUsed}
	if v, ok := st.MempoolCount().Get(); ok {
		s.MempoolTxCount = &v
	}
	if v, ok := st.FastestFee().Get(); ok {
		s.FastestFee = &v
	}
	if v, ok := st.HalfHourFee().Get(); ok {
		s.HalfHourFee = &v
	}
	if v, ok := st.UpdatedAtEpoch.Get(); ok {
		s.UpdatedAt = &v
	}
	return s
}

func watchLine(b *render.LiveBoard) string {
	line := fmt.Sprintf("%s  mempool=%s  fastest=%s  half_hour=%s  state=%s",
		b.Updated, b.Mempool, b.Fastest, b.HalfHour, b.State.Text)
	if b.CacheVisible {
		line += "  cache"
	}
	if b.ErrorVisible {
		line += "  error=" + b.ErrorText
	}
	return line
}
