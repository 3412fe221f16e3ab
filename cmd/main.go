package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/bugsnag/panicwrap"
	"github.com/medilink/api/data/mutate"
	"github.com/medilink/api/data/query"
	"github.com/medilink/api/internal/configure"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/health"
	"github.com/medilink/api/internal/monitoring"
	"github.com/medilink/api/internal/rest"
	"github.com/medilink/api/internal/svc/auth"
	"github.com/medilink/api/internal/svc/availability"
	"github.com/medilink/api/internal/svc/dispatch"
	"github.com/medilink/api/internal/svc/events"
	"github.com/medilink/api/internal/svc/gateway"
	"github.com/medilink/api/internal/svc/mongo"
	"github.com/medilink/api/internal/svc/presence"
	"github.com/medilink/api/internal/svc/prometheus"
	"go.uber.org/zap"
)

var (
	Version = "development"
	Unix    = ""
	Time    = "unknown"
	User    = "unknown"
)

func init() {
	debug.SetGCPercent(2000)
	if i, err := strconv.Atoi(Unix); err == nil {
		Time = time.Unix(int64(i), 0).Format(time.RFC3339)
	}
}

// validateConfig rejects configurations the process must not start with.
func validateConfig(config *configure.Config) error {
	if config.Credentials.JWTSecret == "" {
		return fmt.Errorf("credentials.jwt_secret is required; refusing to sign tokens with an empty key")
	}

	return nil
}

func main() {
	config := configure.New()

	if err := validateConfig(config); err != nil {
		zap.S().Fatalw("invalid config",
			"error", err,
		)
	}

	exitStatus, err := panicwrap.BasicWrap(func(s string) {
		zap.S().Errorw("panic detected",
			"panic", s,
		)
	})
	if err != nil {
		zap.S().Errorw("failed to setup panic handler",
			"error", err,
		)
		os.Exit(2)
	}

	if exitStatus >= 0 {
		os.Exit(exitStatus)
	}

	if !config.NoHeader {
		zap.S().Info("MediLink Dispatch API")
		zap.S().Infof("Version: %s", Version)
		zap.S().Infof("build.Time: %s", Time)
		zap.S().Infof("build.User: %s", User)
	}

	zap.S().Debugf("MaxProcs: %d", runtime.GOMAXPROCS(0))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	gCtx, cancel := global.WithCancel(global.New(context.Background(), config))

	{
		gCtx.Inst().Mongo, err = mongo.Setup(gCtx, mongo.SetupOptions{
			URI:    config.Mongo.URI,
			DB:     config.Mongo.DB,
			Direct: config.Mongo.Direct,
		})
		if err != nil {
			zap.S().Fatalw("failed to setup mongo handler",
				"error", err,
			)
		}
	}

	{
		gCtx.Inst().Prometheus = prometheus.New(prometheus.Options{
			Labels: config.Monitoring.Labels.ToPrometheus(),
		})
	}

	{
		gCtx.Inst().Auth = auth.New(auth.Options{
			JWTSecret: config.Credentials.JWTSecret,
		})
	}

	{
		gCtx.Inst().Presence = presence.New(presence.Options{
			Prometheus: gCtx.Inst().Prometheus,
		})
	}

	{
		gCtx.Inst().Events = events.New(events.Options{
			Presence:   gCtx.Inst().Presence,
			Prometheus: gCtx.Inst().Prometheus,
		})
	}

	{
		gCtx.Inst().Availability = availability.New(availability.Options{
			Mongo: gCtx.Inst().Mongo,
		})
	}

	{
		gCtx.Inst().Dispatch = dispatch.New(gCtx, dispatch.Options{
			Availability: gCtx.Inst().Availability,
			Events:       gCtx.Inst().Events,
			Auth:         gCtx.Inst().Auth,
			Prometheus:   gCtx.Inst().Prometheus,

			RoomPrefix:   config.Dispatch.RoomPrefix,
			SessionTTL:   time.Duration(config.Dispatch.SessionTTLMins) * time.Minute,
			ReclaimAfter: time.Duration(config.Dispatch.ReclaimAfterMins) * time.Minute,
			ReclaimSweep: time.Duration(config.Dispatch.ReclaimSweepSecs) * time.Second,
		})
	}

	{
		gCtx.Inst().Gateway = gateway.New(gateway.Options{
			Enabled:    config.Gateway.Enabled,
			SmsURL:     config.Gateway.SmsURL,
			FromNumber: config.Gateway.FromNumber,
			AuthToken:  config.Gateway.AuthToken,
		})
	}

	{
		gCtx.Inst().Query = query.New(gCtx.Inst().Mongo)
		gCtx.Inst().Mutate = mutate.New(gCtx.Inst().Mongo)
	}

	wg := sync.WaitGroup{}

	if gCtx.Config().Health.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-health.New(gCtx)
		}()
	}
	if gCtx.Config().Monitoring.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-monitoring.New(gCtx)
		}()
	}

	done := make(chan struct{})
	go func() {
		<-sig
		cancel()
		go func() {
			select {
			case <-time.After(time.Minute):
			case <-sig:
			}
			zap.S().Fatal("force shutdown")
		}()

		zap.S().Info("shutting down")

		wg.Wait()

		close(done)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := rest.New(gCtx); err != nil {
			zap.S().Fatalw("rest failed",
				"error", err,
			)
		}
	}()

	zap.S().Info("running")

	<-done

	zap.S().Info("shutdown")
	os.Exit(0)
}
