package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ReportRunner executa uma geração completa do relatório
type ReportRunner interface {
	Run(ctx context.Context) error
}

// DailyReportService mantém o processo residente e dispara o relatório na expressão cron configurada
type DailyReportService struct {
	scheduler *gocron.Scheduler
	cron      string
	runner    ReportRunner

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       error
}

func NewDailyReportService(runner ReportRunner, cronSchedule string) *DailyReportService {
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithField("cron_schedule", cronSchedule).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportService{
		scheduler: scheduler,
		cron:      cronSchedule,
		runner:    runner,
	}
}

// Start agenda o relatório e retorna imediatamente. O agendador para quando ctx é cancelado.
func (s *DailyReportService) Start(ctx context.Context) error {
	logrus.WithField("cron", s.cron).Info("Iniciando agendador do relatório diário")

	_, err := s.scheduler.Cron(s.cron).Do(func() {
		s.runReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
		logrus.WithFields(logrus.Fields(s.status())).Info("Agendador do relatório diário parado")
	}()

	return nil
}

// runReport ignora o disparo quando a execução anterior ainda não terminou
func (s *DailyReportService) runReport(ctx context.Context) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando disparo")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	var err error
	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.lastError = err
		s.runMutex.Unlock()
	}()

	err = s.runner.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("❌ Report failed")
		return
	}

	logrus.Info("✅ Report sent successfully!")
}

// status resume o estado do agendador; é registrado no log ao parar
func (s *DailyReportService) status() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	lastError := ""
	if s.lastError != nil {
		lastError = s.lastError.Error()
	}

	return map[string]any{
		"cron":              s.cron,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        lastError,
	}
}
