package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"go.uber.org/zap"

	"github.com/driftchain/node/app/services/node/handlers"
	"github.com/driftchain/node/foundation/blockchain/bus"
	"github.com/driftchain/node/foundation/blockchain/node"
	"github.com/driftchain/node/foundation/logger"
	"github.com/driftchain/node/foundation/validate"
)

// build is the git version of this program. It is set using build flags in
// the makefile.
var build = "develop"

func main() {
	log, err := logger.New("NODE")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:10s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			DebugHost       string        `conf:"default:0.0.0.0:7080"`
			APIHost         string        `conf:"default:0.0.0.0:8080"`
		}
		Difficulty string   `conf:"default:00,short:d,env:DIFFICULTY" validate:"omitempty,hexadecimal"`
		KnownPeers []string `conf:"default:"`
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	help, err := conf.Parse("", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if err := validate.Check(cfg); err != nil {
		return fmt.Errorf("bad difficulty suffix: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Blockchain Support

	ev := func(v string, args ...any) {
		log.Infow(fmt.Sprintf(v, args...), "traceid", "00000000-0000-0000-0000-000000000000")
	}

	mesh := bus.NewWS(bus.EventHandler(ev))
	for _, addr := range cfg.KnownPeers {
		if err := mesh.Dial(addr); err != nil {
			log.Infow("startup", "status", "peer dial failed", "peer", addr, "ERROR", err)
		}
	}

	n := node.New(node.Config{
		Suffix:    cfg.Difficulty,
		Bus:       mesh,
		EvHandler: node.EventHandler(ev),
	})
	defer n.Shutdown()

	log.Infow("startup", "status", "node online", "peer", n.ID(), "difficulty", cfg.Difficulty)

	// =========================================================================
	// Start Debug Service

	log.Infow("startup", "status", "debug v1 router started", "host", cfg.Web.DebugHost)

	debugMux := handlers.DebugMux(build, log)
	go func() {
		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux); err != nil {
			log.Errorw("shutdown", "status", "debug v1 router closed", "host", cfg.Web.DebugHost, "ERROR", err)
		}
	}()

	// =========================================================================
	// Service Start/Stop Support

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	// =========================================================================
	// Start API Service

	log.Infow("startup", "status", "initializing v1 api support")

	apiMux := handlers.APIMux(handlers.MuxConfig{
		Shutdown: shutdown,
		Log:      log,
		Node:     n,
		Mesh:     mesh,
	})

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      apiMux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// =========================================================================
	// Interactive REPL

	replDone := make(chan struct{})
	go runREPL(n, shutdown, replDone)

	// =========================================================================
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop api service gracefully: %w", err)
		}
	}

	<-replDone
	return nil
}

// runREPL drives the interactive console: "ls" prints the chain, "=<text>"
// submits a transaction, "exit" requests shutdown.
func runREPL(n *node.Node, shutdown chan<- os.Signal, done chan<- struct{}) {
	defer close(done)

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\n")

		switch {
		case line == "ls":
			for _, b := range n.Snapshot().Blocks() {
				fmt.Println(b.String())
			}

		case line == "exit":
			select {
			case shutdown <- syscall.SIGTERM:
			default:
			}
			return

		case strings.HasPrefix(line, "="):
			text := strings.TrimPrefix(line, "=")
			if text == "" {
				fmt.Println("usage: =<text>")
				continue
			}
			n.SubmitTransaction(text)

		case line == "":

		default:
			fmt.Printf("unknown command %q\n", line)
		}
	}
}
