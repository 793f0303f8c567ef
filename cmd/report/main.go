package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp"
	"github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/mailchimpclient"
	"github.com/vfg2006/daily-report/infrastructure/integrator/posthog"
	"github.com/vfg2006/daily-report/infrastructure/integrator/posthog/posthogclient"
	"github.com/vfg2006/daily-report/infrastructure/mailer"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/internal/scheduler"
	"github.com/vfg2006/daily-report/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailchimpIntegrator := mailchimp.New(cfg, mailchimpclient.NewClient(cfg))
	posthogIntegrator := posthog.New(cfg, posthogclient.NewClient(cfg))

	sender, err := mailer.New(ctx, cfg.Mail)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar envio de e-mail")
	}

	composer, err := reporting.NewComposer()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar template do relatório")
	}

	reportService := reporting.NewService(
		mailchimpIntegrator,
		posthogIntegrator,
		composer,
		reporting.NewDispatcher(cfg.Mail, sender),
	)

	// Sem REPORT_CRON o binário faz uma única execução, para ser chamado por um agendador externo
	if cfg.Schedule.CronSchedule == "" {
		logrus.Info("🚀 Starting daily report...")
		if err := reportService.Run(ctx); err != nil {
			logrus.WithError(err).Fatal("❌ Report failed")
		}
		logrus.Info("✅ Report sent successfully!")
		return
	}

	dailyReportService := scheduler.NewDailyReportService(reportService, cfg.Schedule.CronSchedule)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador do relatório diário")
	}
	logrus.Info("Agendador do relatório diário iniciado com sucesso")

	<-ctx.Done()
	logrus.Info("Encerrando")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
