package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/mcintyrejak/bankist/internal/handlers/v1/loan"
	"github.com/mcintyrejak/bankist/internal/handlers/v1/movement"
	"github.com/mcintyrejak/bankist/internal/handlers/v1/session"
	"github.com/mcintyrejak/bankist/internal/handlers/v1/status"
	"github.com/mcintyrejak/bankist/internal/handlers/v1/summary"
	"github.com/mcintyrejak/bankist/internal/handlers/v1/transfer"
	"github.com/mcintyrejak/bankist/internal/logging"
	"github.com/mcintyrejak/bankist/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Session *service.Session
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("bankist", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	session.NewLoginHandler(r.Session).Register(humaAPI)
	session.NewLogoutHandler(r.Session).Register(humaAPI)
	session.NewCloseAccountHandler(r.Session).Register(humaAPI)
	movement.NewListMovementsHandler(r.Session).Register(humaAPI)
	summary.NewGetSummaryHandler(r.Session).Register(humaAPI)
	transfer.NewCreateTransferHandler(r.Session).Register(humaAPI)
	loan.NewRequestLoanHandler(r.Session).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
