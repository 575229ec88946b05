// Package reports monta a visão filtrada e exportável das tarefas:
// lista ordenada, resumo estatístico, CSV e o documento HTML usado na
// geração externa de PDF.
package reports

import (
	"context"
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"time"

	"planeja-backend/models"
)

// Formatos fixos de data nas exportações
const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// TaskFinder é a fatia do banco que o gerador de relatórios precisa
type TaskFinder interface {
	Find(ctx context.Context, userUID string, filter models.TaskFilter) ([]models.Task, error)
}

type Service struct {
	store TaskFinder
}

func NewService(store TaskFinder) *Service {
	return &Service{store: store}
}

type Summary struct {
	Total                 int                         `json:"total"`
	Completed             int                         `json:"completed"`
	Pending               int                         `json:"pending"`
	Cancelled             int                         `json:"cancelled"`
	Overdue               int                         `json:"overdue"`
	ByPriority            map[models.TaskPriority]int `json:"byPriority"`
	ByCategory            map[models.TaskCategory]int `json:"byCategory"`
	AverageCompletionTime int                         `json:"averageCompletionTime"`
}

// GetFilteredTasks devolve as tarefas ativas do usuário que batem com o
// filtro, ordenadas por data agendada e prioridade decrescentes. A validação
// do filtro acontece antes de qualquer consulta.
func (s *Service) GetFilteredTasks(ctx context.Context, userUID string, filter models.TaskFilter) ([]models.Task, error) {
	return s.store.Find(ctx, userUID, filter)
}

// GetReportSummary agrega o conjunto filtrado: contagens por status,
// histogramas de prioridade e categoria e o tempo médio de conclusão.
// Conjunto vazio devolve zeros, não erro.
func (s *Service) GetReportSummary(ctx context.Context, userUID string, now time.Time, filter models.TaskFilter) (*Summary, error) {
	tasks, err := s.GetFilteredTasks(ctx, userUID, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Total:      len(tasks),
		ByPriority: map[models.TaskPriority]int{models.PriorityLow: 0, models.PriorityMedium: 0, models.PriorityHigh: 0},
		ByCategory: map[models.TaskCategory]int{},
	}

	totalMinutes := 0
	timedTasks := 0

	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusPending:
			summary.Pending++
		case models.StatusCancelled:
			summary.Cancelled++
		}

		if task.IsOverdue(now) {
			summary.Overdue++
		}

		summary.ByPriority[task.Priority]++
		summary.ByCategory[task.Category]++

		if task.Status == models.StatusCompleted {
			if minutes, ok := task.CompletionTimeMinutes(); ok {
				totalMinutes += minutes
				timedTasks++
			}
		}
	}

	if timedTasks > 0 {
		summary.AverageCompletionTime = int(math.Round(float64(totalMinutes) / float64(timedTasks)))
	}

	return summary, nil
}

// GenerateCSV serializa o conjunto filtrado. Conjunto vazio gera só o
// cabeçalho; campos opcionais ausentes viram string vazia.
func (s *Service) GenerateCSV(ctx context.Context, userUID string, now time.Time, filter models.TaskFilter) (string, error) {
	tasks, err := s.GetFilteredTasks(ctx, userUID, filter)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	header := []string{
		"Title", "Description", "Date", "Due Time", "Status", "Priority", "Category",
		"Tags", "Estimated Minutes", "Created At", "Completed At",
		"Completion Time (minutes)", "Is Overdue",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, task := range tasks {
		estimated := ""
		if task.EstimatedMinutes > 0 {
			estimated = strconv.Itoa(task.EstimatedMinutes)
		}

		completedAt := ""
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.Format(timestampLayout)
		}

		completionTime := ""
		if minutes, ok := task.CompletionTimeMinutes(); ok {
			completionTime = strconv.Itoa(minutes)
		}

		overdue := "No"
		if task.IsOverdue(now) {
			overdue = "Yes"
		}

		record := []string{
			task.Title,
			task.Description,
			task.ScheduledDate.Format(dateLayout),
			task.DueTime,
			string(task.Status),
			string(task.Priority),
			string(task.Category),
			strings.Join(task.Tags, ", "),
			estimated,
			task.CreatedAt.Format(timestampLayout),
			completedAt,
			completionTime,
			overdue,
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GeneratePDF monta o documento HTML autocontido do relatório. A conversão
// para PDF fica a cargo de um renderizador externo; o contrato aqui é só o
// documento estilizado.
func (s *Service) GeneratePDF(ctx context.Context, userUID string, now time.Time, filter models.TaskFilter) (string, error) {
	tasks, err := s.GetFilteredTasks(ctx, userUID, filter)
	if err != nil {
		return "", err
	}
	return renderReportHTML(tasks, filter, now)
}
