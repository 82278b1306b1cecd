package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
	"github.com/sgostarter/liblagrange/solver"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger l.Wrapper

	listener   net.Listener
	httpServer *http.Server
	routineMan routineman.RoutineMan
}

func NewServer(ctx context.Context, cfg *Config, logger l.Wrapper) (*Server, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = &Config{}
	}

	cfg.fillDefaults()

	logger = logger.WithFields(l.StringField(l.ClsKey, "Server"))

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		logger:   logger,
		listener: listener,
		httpServer: &http.Server{
			Handler:           NewHandler(solver.NewSolver(&cfg.Solver, logger), cfg.MaxBodyBytes, logger),
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		routineMan: routineman.NewRoutineMan(ctx, logger),
	}

	srv.routineMan.StartRoutine(srv.serveRoutine, "serveRoutine")

	return srv, nil
}

func (srv *Server) Addr() string {
	return srv.listener.Addr().String()
}

func (srv *Server) TriggerStop() {
	srv.routineMan.TriggerStop()
}

func (srv *Server) Wait() {
	srv.routineMan.Wait()
}

func (srv *Server) serveRoutine(ctx context.Context, _ func() bool) {
	srv.logger.WithFields(l.StringField("addr", srv.Addr())).Info("listening")

	chServeDone := make(chan error, 1)

	go func() {
		chServeDone <- srv.httpServer.Serve(srv.listener)
	}()

	select {
	case err := <-chServeDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.WithFields(l.ErrorField(err)).Error("serve failed")
		}

		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.httpServer.Shutdown(shutdownCtx); err != nil {
		srv.logger.WithFields(l.ErrorField(err)).Error("shutdown failed")
	}

	<-chServeDone
}
