package main

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"notesapi/pkg/note"
	"notesapi/routers"
	"notesapi/utils/logging"
	"notesapi/utils/options"
	"notesapi/utils/telemetry"
)

func main() {
	conf, err := options.InitConfig()
	if err != nil {
		logging.Fatal(err)
	}
	logging.ConfigInit()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "notes-api", conf.Otel.Endpoint)
	if err != nil {
		logging.Fatal(errors.WithStack(err))
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logging.Error("telemetry shutdown:", err)
		}
	}()

	backends := note.NewSelector(conf)
	noter := note.NewWithSelector(backends)

	s := &http.Server{
		Addr:           conf.Http.Addr,
		Handler:        routers.InitRouter(conf, noter),
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	logging.Info("listening on", conf.Http.Addr)
	if err := s.ListenAndServe(); err != nil {
		logging.Error(errors.WithStack(err))
	}
}
