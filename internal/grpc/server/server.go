package grpcserver

import (
	"context"
	"net"
	"time"

	"github.com/ak7sky/subnet-quiz/internal/core"
	"github.com/ak7sky/subnet-quiz/internal/logger"
	"google.golang.org/grpc"
)

type AppServer struct {
	server          *grpc.Server
	logger          logger.Logger
	errCh           chan error
	shutdownTimeout time.Duration
}

func New(qsrv core.QuizService, logger logger.Logger, shutdownTimeout time.Duration) *AppServer {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggerInterceptor(logger),
			reqValidatorInterceptor(),
		),
	)
	RegisterQuizServiceServer(grpcServer, newHandler(qsrv, logger))
	return &AppServer{
		server:          grpcServer,
		logger:          logger,
		errCh:           make(chan error, 1),
		shutdownTimeout: shutdownTimeout,
	}
}

// Start listens on addr and serves in the background. Listen and serve
// failures are reported on ErrCh.
func (appServer *AppServer) Start(addr string) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		appServer.errCh <- err
		return
	}
	appServer.Serve(listener)
}

func (appServer *AppServer) Serve(listener net.Listener) {
	appServer.logger.Info("starting server on %s", listener.Addr().String())

	go func() {
		appServer.errCh <- appServer.server.Serve(listener)
		close(appServer.errCh)
	}()
}

func (appServer *AppServer) ErrCh() <-chan error {
	return appServer.errCh
}

func (appServer *AppServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), appServer.shutdownTimeout)
	defer cancel()
	return shutdown(ctx, appServer.server)
}

func shutdown(ctx context.Context, server *grpc.Server) error {
	gracefulStopDone := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(gracefulStopDone)
	}()

	select {
	case <-gracefulStopDone:
		return nil
	case <-ctx.Done():
		server.Stop()
		return ctx.Err()
	}
}
