package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-list/internal/infrastructure/app"

	"go.uber.org/zap"
)

func main() {
	application, err := app.Init()
	if err != nil {
		fmt.Printf("app init error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if application.Config.Journal.Smoke && application.Pool != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		runJournalSmokeTest(ctx, application.Log, application.Pool)
		cancel()
	}

	go func() {
		application.Log.Info("grpc server started", zap.String("addr", application.Listener.Addr().String()))
		if err := application.GRPCServer.Serve(application.Listener); err != nil {
			application.Log.Error("grpc server stopped", zap.Error(err))
		}
	}()

	application.Log.Info("server is starting", zap.String("env", application.Config.Logger.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	s := <-quit
	application.Log.Info("shutting down server", zap.String("signal", s.String()))

	application.GRPCServer.GracefulStop()
	application.Log.Info("server stopped")
}
