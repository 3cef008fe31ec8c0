package cmd

import (
	"context"
	"net/http"
	"time"

	"pegvault/handler"
	"pegvault/service/engine"
	"pegvault/worker"
	"pegvault/worker/priceoracle"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run pegvault api server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctx = logger.WithContext(ctx, logrus.NewEntry(logrus.StandardLogger()))

		feeds := provideFeeds()
		eventJournal := provideEventJournal()

		eng, err := provideEngine(feeds, eventJournal)
		if err != nil {
			return err
		}

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)

		svr := handler.New(provideConfig(), engine.Serialized(eng), eventJournal)
		mux.Mount("/", svr.Handler())

		addr := cfg.API.Addr
		if addr == "" {
			addr = ":9000"
		}

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		signal.WithContextFunc(ctx, quit)

		workers := []worker.Worker{
			priceoracle.New(
				provideOracleClient(),
				time.Duration(cfg.Oracle.PullInterval)*time.Second,
				feeds...,
			),
		}

		var g errgroup.Group

		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		g.Go(func() error {
			logrus.Infoln("serve at", addr)
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}

			return nil
		})

		g.Go(func() error {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil && err != context.Canceled {
			logrus.WithError(err).Error("server aborted")
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
