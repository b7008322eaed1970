package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/asmolkov/taskhub/internal/client"
	"github.com/asmolkov/taskhub/internal/config"
	"github.com/asmolkov/taskhub/internal/entity"
	"github.com/asmolkov/taskhub/internal/handler"
	"github.com/asmolkov/taskhub/internal/migrations"
	"github.com/asmolkov/taskhub/internal/repository"
	"github.com/asmolkov/taskhub/internal/security"
	"github.com/asmolkov/taskhub/internal/service"
	"github.com/asmolkov/taskhub/internal/validator"
	"github.com/asmolkov/taskhub/internal/worker"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	v10validator "github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	if err := Execute(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func Execute() error {
	cfg, err := config.NewBuilder().LoadFlags().LoadEnv().Build()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseURI())
	if err != nil {
		return err
	}

	defer func(db *sql.DB) {
		err = db.Close()
	}(db)

	if err := migrations.Up(db); err != nil {
		return err
	}

	validationEngine := v10validator.New()
	if err := validationEngine.RegisterValidation("difficulty", validator.Difficulty); err != nil {
		return err
	}

	var (
		ctx, cancel = context.WithCancel(context.Background())
		r           = chi.NewRouter()
		v           = validator.New(validationEngine)
		wg          = &sync.WaitGroup{}
		tasks       = make(chan entity.Task, 8)
		or          = repository.NewOrder(db)
		tr          = repository.NewTask(db)
		cc          = client.NewCatalog(cfg.CatalogAddress())
		tf          = worker.NewTaskFetcher(tr, cc, tasks, wg, cfg.TaskImportInterval())
		tw          = worker.NewTaskSaver(tr, tasks, wg, 4)
		ss          = service.NewSignup(
			repository.NewUser(db),
			security.NewArgonHasher(security.DefaultHashConfig()),
		)
		os = service.NewOrder(or)
		rs = service.NewRating(or, service.DefaultWeights())
		ts = service.NewTask(tr)
		sh = handler.NewSignup(ss, v)
		oh = handler.NewOrder(os, v)
		rh = handler.NewRating(rs)
		th = handler.NewTask(ts, v)
	)

	defer func() {
		cancel()
		wg.Wait()
		close(tasks)
	}()

	tf.Do(ctx)
	tw.Do(ctx)

	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", sh.Register)
		r.Post("/tasks", th.Create)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Post("/orders", oh.Assign)
			r.Get("/orders", oh.GetAll)
			r.Get("/orders/active", oh.GetActive)
		})

		r.Route("/orders/{orderID}", func(r chi.Router) {
			r.Post("/complete", oh.Complete)
			r.Delete("/", oh.Delete)
		})

		r.Get("/rating", rh.Top)
	})

	err = http.ListenAndServe(cfg.ServerAddress(), r)

	return err
}
