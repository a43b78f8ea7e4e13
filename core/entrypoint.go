package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"reflect"
	"runtime"
	"syscall"
	"time"

	"github.com/encodeous/hopsim/perf"
	"github.com/encodeous/hopsim/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var (
	errSessionClosed = errors.New("session closed")
	errShutdown      = errors.New("received shutdown signal")
)

// SimCfg holds everything needed to run one simulation
type SimCfg struct {
	// TopologyPath is optional, the simulation starts empty without it
	TopologyPath string
	LogPath      string
	LogLevel     slog.Level
	In           io.Reader
	Out          io.Writer
	// LogOut receives console logs, usually stderr
	LogOut io.Writer
	// Interactive prints prompts before reading input
	Interactive bool
	// HandleSignals cancels the simulation on SIGINT or SIGTERM
	HandleSignals bool
	// SavePath receives the final topology when the simulation ends, if set
	SavePath string
}

func setupDebugging() {
	if state.DBG_debug {
		go func() {
			log.Println(http.ListenAndServe(state.DebugAddr, nil))
		}()
	}
}

func IsTerminal(f any) bool {
	fd, ok := f.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fd.Fd()))
}

// NewLogger logs to w, and to logPath when it is set. The returned func closes the log file.
func NewLogger(w io.Writer, logLevel slog.Level, logPath string) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(w, &tint.Options{
			Level:     logLevel,
			AddSource: false,
			NoColor:   !IsTerminal(w),
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err != nil {
			return nil, nil, err
		}
		closer = f.Close
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// LoadOrEmpty loads the topology at path. A topology that fails to load is discarded as a whole
// and the simulation continues with an empty registry.
func LoadOrEmpty(logger *slog.Logger, out io.Writer, path string) *state.Registry {
	if path == "" {
		return state.NewRegistry()
	}
	reg, err := state.LoadRegistry(path)
	if err != nil {
		logger.Error("failed to load topology", "path", path, "error", err)
		fmt.Fprintln(out, "Error: the file could not be read or there is something wrong with it.")
		return state.NewRegistry()
	}
	logger.Info("loaded topology", "path", path, "routers", reg.Len())
	return reg
}

// Start runs a simulation until the session ends or the context is cancelled.
func Start(ctx context.Context, cfg SimCfg) error {
	setupDebugging()

	logger, closeLog, err := NewLogger(cfg.LogOut, cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(context.Canceled)

	dispatch := make(chan func(s *state.State) error, state.DispatchQueueSize)

	s := &state.State{
		Env: &state.Env{
			DispatchChannel: dispatch,
			Context:         ctx,
			Cancel:          cancel,
			Log:             logger,
		},
		Registry: LoadOrEmpty(logger, cfg.Out, cfg.TopologyPath),
	}

	if cfg.HandleSignals {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(c)
		go watchSignals(s, c)
	}

	session := NewSession(s.Env, NewSimRouter(logger), cfg.In, cfg.Out, cfg.Interactive)

	g := new(errgroup.Group)
	g.Go(func() error {
		return MainLoop(s, dispatch)
	})
	g.Go(func() error {
		defer s.Cancel(errSessionClosed)
		return session.Run()
	})
	err = g.Wait()
	if err != nil {
		return err
	}
	// both goroutines are done, the registry has no other owner now
	if cfg.SavePath != "" {
		err = state.WriteTopology(cfg.SavePath, state.ExportTopology(s.Registry))
		if err != nil {
			return fmt.Errorf("failed to save topology: %w", err)
		}
		logger.Info("saved topology", "path", cfg.SavePath)
	}
	return nil
}

// watchSignals stops the main loop on the first signal from c.
func watchSignals(s *state.State, c <-chan os.Signal) {
	select {
	case sig := <-c:
		s.Dispatch(func(s *state.State) error {
			s.Log.Info("received signal, shutting down", "signal", sig)
			s.Cancel(errShutdown)
			return nil
		})
	case <-s.Context.Done():
	}
}

func MainLoop(s *state.State, dispatch <-chan func(*state.State) error) error {
	s.Log.Debug("started main loop")
	for {
		select {
		case fun := <-dispatch:
			if fun == nil {
				goto endLoop
			}
			start := time.Now()
			err := fun(s)
			if err != nil {
				s.Log.Error("error occurred during dispatch: ", "error", err)
				s.Cancel(err)
			}
			elapsed := time.Since(start)
			perf.DispatchLatency.Add(float64(elapsed.Microseconds()))
			if elapsed > time.Millisecond*4 {
				s.Log.Warn("dispatch took a long time!", "fun", runtime.FuncForPC(reflect.ValueOf(fun).Pointer()).Name(), "elapsed", elapsed, "len", len(dispatch))
			}
		case <-s.Context.Done():
			goto endLoop
		}
	}
endLoop:
	s.Log.Debug("stopped main loop", "reason", context.Cause(s.Context))
	Stop(s)
	return nil
}

func Stop(s *state.State) {
	s.Cancel(context.Canceled)
	s.Log.Info("simulation stopped", "routers", s.Len())
}
