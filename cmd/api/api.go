package main

import (
	"net/http"
	"time"

	"github.com/farxc/contract_consumption/internal/dataset"
	"github.com/farxc/contract_consumption/internal/logger"
	"github.com/farxc/contract_consumption/internal/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type application struct {
	config   config
	cache    *dataset.Cache
	receipts *report.ReceiptIndex
	logger   *logger.Logger
}

type config struct {
	addr        string
	source      string
	logLevel    string
	logRequests bool
	csv      csvConfig
	xlsx     xlsxConfig
	sheets   sheetsConfig
	db       dbConfig
	receipts receiptsConfig
}

type csvConfig struct {
	paymentsPath    string
	commitmentsPath string
	delimiter       string
}

type xlsxConfig struct {
	paymentsPath     string
	paymentsSheet    string
	commitmentsPath  string
	commitmentsSheet string
}

type sheetsConfig struct {
	spreadsheetID      string
	paymentsRange      string
	commitmentsRange   string
	serviceAccountPath string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

type receiptsConfig struct {
	dir                string
	driveFolderID      string
	serviceAccountPath string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	if app.config.logRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", app.handleSearchPayments)
			r.Get("/filters", app.handleGetFilterOptions)
			r.Get("/export", app.handleExportPayments)
		})
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/{contractID}/consumption", app.handleGetContractConsumption)
		})
		r.Post("/refresh", app.handleRefreshDatasets)
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	app.logger.Info("Server", "Listening on %s", app.config.addr)
	return srv.ListenAndServe()
}
