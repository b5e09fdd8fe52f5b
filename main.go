package main

import (
	"github.com/sirupsen/logrus"

	"github.com/mcintyrejak/bankist/api"
	"github.com/mcintyrejak/bankist/internal/config"
	"github.com/mcintyrejak/bankist/internal/logging"
	"github.com/mcintyrejak/bankist/internal/operator"
	"github.com/mcintyrejak/bankist/internal/service"
	"github.com/mcintyrejak/bankist/internal/store"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("bankist starting")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	accountStore := store.New(config.SeedAccounts())
	logrus.WithField("accounts", accountStore.Len()).Info("account store seeded")

	// One worker: every mutation applies in submission order.
	op := operator.NewOperatorDelegator(accountStore, 1)
	op.Start()
	defer op.Stop()

	sess := service.NewSession(accountStore, op)

	httpRest := api.Rest{
		Logger:  logger,
		Port:    cfg.Port,
		Session: sess,
	}
	httpRest.Serve()
}
