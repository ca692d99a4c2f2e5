package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/birthdaybot/internal/birthday/command"
	"github.com/louisbranch/birthdaybot/internal/birthday/domain"
	"github.com/louisbranch/birthdaybot/internal/birthday/render"
	birthdaysqlite "github.com/louisbranch/birthdaybot/internal/birthday/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config controls bot startup, dependencies, and scheduling behavior.
type Config struct {
	DBPath      string `env:"BIRTHDAYBOT_DB_PATH" envDefault:"data/birthdays.db"`
	AdminID     int64  `env:"BIRTHDAYBOT_ADMIN_ID"`
	GroupChatID string `env:"BIRTHDAYBOT_GROUP_ID"`
	NotifyHour  int    `env:"BIRTHDAYBOT_NOTIFY_HOUR" envDefault:"12"`
	Timezone    string `env:"BIRTHDAYBOT_TIMEZONE" envDefault:"Europe/Moscow"`
	Locale      string `env:"BIRTHDAYBOT_LOCALE" envDefault:"ru"`
	HealthPort  int    `env:"BIRTHDAYBOT_HEALTH_PORT" envDefault:"8090"`
}

const defaultHealthPort = 8090

// Run starts bot runtime dependencies, the daily announcement loop,
// and the command dispatch loop. It blocks until ctx is done or the
// transport stops.
func Run(ctx context.Context, cfg Config, transport Transport) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if transport == nil {
		return fmt.Errorf("chat transport is required")
	}
	if cfg.AdminID == 0 {
		return fmt.Errorf("admin id is required")
	}
	if strings.TrimSpace(cfg.GroupChatID) == "" {
		return fmt.Errorf("group chat id is required")
	}
	if cfg.NotifyHour < 0 || cfg.NotifyHour > 23 {
		return fmt.Errorf("notify hour %d is out of range", cfg.NotifyHour)
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = "data/birthdays.db"
	}
	if cfg.HealthPort <= 0 {
		cfg.HealthPort = defaultHealthPort
	}

	location, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone))
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bot storage dir: %w", err)
		}
	}

	store, err := birthdaysqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open birthday sqlite store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close birthday sqlite store: %v", closeErr)
		}
	}()

	svc := domain.NewService(store, nil)
	loc := render.NewLocalizer(cfg.Locale)
	handler := command.NewHandler(svc, cfg.AdminID, loc)
	daily := newAnnouncer(svc, transport, loc, cfg.GroupChatID, cfg.NotifyHour, location, nil)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.HealthPort))
	if err != nil {
		return fmt.Errorf("listen on health port %d: %w", cfg.HealthPort, err)
	}
	defer listener.Close()

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("birthdaybot.runtime", grpc_health_v1.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(listener)
	}()
	defer func() {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		<-serveErr
	}()

	log.Printf("health server listening at %v", listener.Addr())

	announceErr := make(chan error, 1)
	go func() {
		announceErr <- daily.run(ctx)
	}()

	messages := transport.Messages(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-announceErr:
			return err
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			response, respond := handler.Handle(ctx, msg)
			if !respond {
				continue
			}
			if err := transport.SendMessage(ctx, msg.ChatID, response); err != nil {
				log.Printf("send command response to %s: %v", msg.ChatID, err)
			}
		}
	}
}
