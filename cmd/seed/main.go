package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/daavo03/node-tours-app/internal/app"
	"github.com/daavo03/node-tours-app/internal/auth"
	"github.com/daavo03/node-tours-app/internal/config"
	"github.com/daavo03/node-tours-app/internal/repository"
	"github.com/daavo03/node-tours-app/internal/seed"
	"github.com/fatih/color"
)

func main() {
	var (
		doImport = flag.Bool("import", false, "load the dev-data fixtures")
		doDelete = flag.Bool("delete", false, "remove all bookings, reviews, tours and users")
		dir      = flag.String("dir", "dev-data", "fixtures directory")
	)
	flag.Parse()

	if *doImport == *doDelete {
		fail(fmt.Errorf("pass exactly one of --import or --delete"))
	}

	cfg := config.MustLoad()

	log, err := app.NewLogger(cfg)
	if err != nil {
		fail(fmt.Errorf("init logger: %w", err))
	}

	if err = app.RunMigrations(cfg.Postgres, log); err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := app.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		fail(err)
	}
	defer db.Master.Close()

	s := seed.New(
		repository.NewTourRepo(db),
		repository.NewUserRepo(db),
		repository.NewReviewRepo(db),
		repository.NewDataRepo(db),
		auth.NewHasher(cfg.Security.BcryptCost),
		log,
	)

	if *doDelete {
		if err = s.Delete(ctx); err != nil {
			fail(err)
		}
		color.Green("Data successfully deleted!")
		return
	}

	res, err := s.Import(ctx, *dir)
	if err != nil {
		fail(err)
	}
	color.Green("Data successfully loaded!")
	fmt.Printf("  %s %d  %s %d  %s %d\n",
		color.CyanString("users"), res.Users,
		color.CyanString("tours"), res.Tours,
		color.CyanString("reviews"), res.Reviews,
	)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.New(color.FgWhite, color.BgRed).Sprint(" ERR "), err)
	os.Exit(1)
}
