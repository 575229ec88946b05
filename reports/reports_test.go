package reports

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"planeja-backend/models"
)

// fakeStore aplica os filtros em memória, espelhando o comportamento do banco
type fakeStore struct {
	tasks []models.Task
	err   error
}

func (f *fakeStore) Find(ctx context.Context, userUID string, filter models.TaskFilter) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	matched := []models.Task{}
	for _, task := range f.tasks {
		if task.DeletedAt != nil && !filter.IncludeDeleted {
			continue
		}
		if filter.DateFrom != nil && task.ScheduledDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && task.ScheduledDate.After(*filter.DateTo) {
			continue
		}
		if filter.HasStatus() && string(task.Status) != filter.Status {
			continue
		}
		if filter.HasPriority() && string(task.Priority) != filter.Priority {
			continue
		}
		if filter.HasCategory() && string(task.Category) != filter.Category {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(task.Tags, filter.Tags) {
			continue
		}
		matched = append(matched, task)
	}

	// Mesma ordenação do banco: data e prioridade decrescentes
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].ScheduledDate.Equal(matched[j].ScheduledDate) {
			return matched[i].ScheduledDate.After(matched[j].ScheduledDate)
		}
		return models.PriorityRank(matched[i].Priority) > models.PriorityRank(matched[j].Priority)
	})
	return matched, nil
}

func hasAnyTag(taskTags, filterTags []string) bool {
	for _, want := range filterTags {
		for _, have := range taskTags {
			if want == have {
				return true
			}
		}
	}
	return false
}

func buildTask(title string, day time.Time, status models.TaskStatus, priority models.TaskPriority) models.Task {
	return models.Task{
		Title:         title,
		ScheduledDate: day,
		Status:        status,
		Priority:      priority,
		Category:      models.CategoryWork,
		CreatedAt:     day,
	}
}

func TestGetFilteredTasksPriorityAllEqualsNoFilter(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{tasks: []models.Task{
		buildTask("alta", day, models.StatusPending, models.PriorityHigh),
		buildTask("baixa", day, models.StatusPending, models.PriorityLow),
	}}
	service := NewService(store)

	all, err := service.GetFilteredTasks(context.Background(), "uid", models.TaskFilter{Priority: models.FilterAll})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	none, err := service.GetFilteredTasks(context.Background(), "uid", models.TaskFilter{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(all) != len(none) {
		t.Errorf("priority=all devolveu %d tarefas, sem filtro devolveu %d", len(all), len(none))
	}
}

func TestGetFilteredTasksTagMatchesAny(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	tagged := buildTask("etiquetada", day, models.StatusPending, models.PriorityMedium)
	tagged.Tags = []string{"urgente", "casa"}
	other := buildTask("sem etiqueta", day, models.StatusPending, models.PriorityMedium)

	service := NewService(&fakeStore{tasks: []models.Task{tagged, other}})

	tasks, err := service.GetFilteredTasks(context.Background(), "uid",
		models.TaskFilter{Tags: []string{"casa", "trabalho"}})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "etiquetada" {
		t.Errorf("esperado apenas a tarefa etiquetada, obtido %+v", tasks)
	}
}

func TestGetReportSummary(t *testing.T) {
	now := time.Date(2024, time.March, 15, 15, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)

	completedAt := day.Add(90 * time.Minute)
	done := buildTask("feita", day, models.StatusCompleted, models.PriorityHigh)
	done.CompletedAt = &completedAt

	pending := buildTask("pendente", day, models.StatusPending, models.PriorityMedium)
	pending.DueTime = "09:00" // já venceu

	cancelled := buildTask("cancelada", day, models.StatusCancelled, models.PriorityLow)
	cancelled.Category = models.CategoryHealth

	service := NewService(&fakeStore{tasks: []models.Task{done, pending, cancelled}})

	summary, err := service.GetReportSummary(context.Background(), "uid", now, models.TaskFilter{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if summary.Total != 3 || summary.Completed != 1 || summary.Pending != 1 || summary.Cancelled != 1 {
		t.Errorf("contagens = %+v, esperado 3 no total com 1 de cada status", summary)
	}
	if summary.Overdue != 1 {
		t.Errorf("atrasadas = %d, esperado 1", summary.Overdue)
	}
	if summary.ByPriority[models.PriorityHigh] != 1 || summary.ByPriority[models.PriorityLow] != 1 {
		t.Errorf("histograma de prioridade = %v", summary.ByPriority)
	}
	if summary.ByCategory[models.CategoryWork] != 2 || summary.ByCategory[models.CategoryHealth] != 1 {
		t.Errorf("histograma de categoria = %v", summary.ByCategory)
	}
	if summary.AverageCompletionTime != 90 {
		t.Errorf("tempo médio = %d, esperado 90", summary.AverageCompletionTime)
	}
}

func TestGetReportSummaryEmptySetIsZeroNotError(t *testing.T) {
	now := time.Date(2024, time.March, 15, 15, 0, 0, 0, time.UTC)
	service := NewService(&fakeStore{})

	summary, err := service.GetReportSummary(context.Background(), "uid", now, models.TaskFilter{})
	if err != nil {
		t.Fatalf("conjunto vazio não é erro, obtido %v", err)
	}
	if summary.Total != 0 || summary.AverageCompletionTime != 0 {
		t.Errorf("resumo vazio = %+v, esperado zeros", summary)
	}
	// Prioridades aparecem zeradas mesmo sem tarefas
	if len(summary.ByPriority) != 3 {
		t.Errorf("histograma de prioridade = %v, esperado as 3 chaves zeradas", summary.ByPriority)
	}
}

func TestGenerateCSVEmptySetHasOnlyHeader(t *testing.T) {
	now := time.Date(2024, time.March, 15, 15, 0, 0, 0, time.UTC)
	service := NewService(&fakeStore{})

	content, err := service.GenerateCSV(context.Background(), "uid", now, models.TaskFilter{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("esperado apenas o cabeçalho, obtido %d linhas", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Title,Description,Date") {
		t.Errorf("cabeçalho inesperado: %q", lines[0])
	}
}

func TestGenerateCSVOneLinePerTask(t *testing.T) {
	now := time.Date(2024, time.March, 15, 15, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)

	completedAt := day.Add(time.Hour)
	done := buildTask("feita", day, models.StatusCompleted, models.PriorityHigh)
	done.CompletedAt = &completedAt
	done.Tags = []string{"casa", "urgente"}
	done.EstimatedMinutes = 45

	pending := buildTask("pendente", day, models.StatusPending, models.PriorityLow)

	service := NewService(&fakeStore{tasks: []models.Task{done, pending}})

	content, err := service.GenerateCSV(context.Background(), "uid", now, models.TaskFilter{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("esperado cabeçalho + 2 tarefas, obtido %d linhas", len(lines))
	}

	if !strings.Contains(content, "feita") || !strings.Contains(content, "casa, urgente") {
		t.Errorf("linha da tarefa concluída incompleta:\n%s", content)
	}
	// Pendente agendada para 10/03 sem hora limite: atrasada em 15/03
	if !strings.Contains(lines[2], "Yes") && !strings.Contains(lines[1], "Yes") {
		t.Errorf("tarefa pendente vencida deveria aparecer como Yes:\n%s", content)
	}
}

func TestGeneratePDFRendersHTMLDocument(t *testing.T) {
	now := time.Date(2024, time.March, 15, 15, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)

	task := buildTask("revisar contrato", day, models.StatusPending, models.PriorityHigh)
	service := NewService(&fakeStore{tasks: []models.Task{task}})

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	content, err := service.GeneratePDF(context.Background(), "uid", now,
		models.TaskFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	for _, fragment := range []string{
		"<!DOCTYPE html>",
		"revisar contrato",
		"Mar 01, 2024 - Mar 31, 2024",
		"priority-high",
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("documento sem o trecho %q", fragment)
		}
	}
}

func TestGeneratePDFWithoutRangeShowsAllTime(t *testing.T) {
	now := time.Date(2024, time.March, 15, 15, 0, 0, 0, time.UTC)
	service := NewService(&fakeStore{})

	content, err := service.GeneratePDF(context.Background(), "uid", now, models.TaskFilter{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(content, "All Time") {
		t.Error("sem intervalo de datas o documento deveria exibir All Time")
	}
}
