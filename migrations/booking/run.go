package main

import (
	"embed"

	"github.com/thientruong51/asms-booking/pkg/config"
	"github.com/thientruong51/asms-booking/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.BookingDatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
