package app

import (
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ak7sky/subnet-quiz/internal/config"
	"github.com/ak7sky/subnet-quiz/internal/core/netgen"
	"github.com/ak7sky/subnet-quiz/internal/core/quiz"
	"github.com/ak7sky/subnet-quiz/internal/core/service"
	"github.com/ak7sky/subnet-quiz/internal/core/storage/mem"
	grpcserver "github.com/ak7sky/subnet-quiz/internal/grpc/server"
	"github.com/ak7sky/subnet-quiz/internal/logger"
)

// NewQuizService wires the quiz service over in-memory sessions.
func NewQuizService(cfg config.Config) *service.QuizService {
	generator := netgen.New(rand.New(rand.NewSource(time.Now().UnixNano())), cfg.MaxGenAttempts)
	return service.New(mem.NewSessionMemStorage(), generator, quiz.NewGrader(cfg.StrictAddrs))
}

func Run(cfg config.Config) {
	appLogger := logger.NewLogger(cfg.LogLevel)
	appServer := grpcserver.New(NewQuizService(cfg), appLogger, cfg.ShutdownTimeout)
	appServer.Start(cfg.ListenAddr)

	// Waiting signal
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	select {
	case oss := <-signalCh:
		appLogger.Info("app stops after receiving a signal %s", oss.String())
	case err := <-appServer.ErrCh():
		if err != nil {
			appLogger.Error("app stops after an err %s", err.Error())
		} else {
			appLogger.Info("app stops, server closed")
		}
	}

	// Shutdown
	if err := appServer.Shutdown(); err != nil {
		appLogger.Error("app stopped with err %s", err.Error())
	}
}
