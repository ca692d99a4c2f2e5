// Package main starts the birthday bot process lifecycle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/birthdaybot/internal/birthday/app"
	"github.com/louisbranch/birthdaybot/internal/birthday/transport/telegram"
	platformcmd "github.com/louisbranch/birthdaybot/internal/platform/cmd"
	"github.com/louisbranch/birthdaybot/internal/platform/config"
)

type botConfig struct {
	Token string `env:"BIRTHDAYBOT_TOKEN"`
	app.Config
}

func main() {
	cfg := botConfig{}
	fs := flag.NewFlagSet(platformcmd.ServiceBirthdayBot, flag.ExitOnError)
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		config.Exitf("parse env config: %v", err)
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the sqlite database")
	fs.Int64Var(&cfg.AdminID, "admin-id", cfg.AdminID, "chat identity allowed to manage the list")
	fs.StringVar(&cfg.GroupChatID, "group-id", cfg.GroupChatID, "chat that receives announcements")
	fs.IntVar(&cfg.NotifyHour, "notify-hour", cfg.NotifyHour, "local hour of the daily announcement")
	fs.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA timezone of the daily announcement")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale")
	fs.IntVar(&cfg.HealthPort, "health-port", cfg.HealthPort, "grpc health listen port")
	if err := platformcmd.ParseArgs(fs, os.Args[1:]); err != nil {
		config.Exitf("parse flags: %v", err)
	}

	transport, err := telegram.New(telegram.Config{Token: cfg.Token})
	if err != nil {
		config.Exitf("configure telegram transport: %v", err)
	}

	log.SetPrefix("[BIRTHDAYBOT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceBirthdayBot, func(ctx context.Context) error {
		return app.Run(ctx, cfg.Config, transport)
	})
	if err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
