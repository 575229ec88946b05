package analytics

import (
	"context"
	"errors"
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
		matched = append(matched, task)
	}
	return matched, nil
}

func (f *fakeStore) FindTouched(ctx context.Context, userUID string, from, to time.Time) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}

	matched := []models.Task{}
	for _, task := range f.tasks {
		if task.DeletedAt != nil {
			continue
		}
		createdIn := !task.CreatedAt.Before(from) && !task.CreatedAt.After(to)
		completedIn := task.CompletedAt != nil &&
			!task.CompletedAt.Before(from) && !task.CompletedAt.After(to)
		if createdIn || completedIn {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

func scheduled(day time.Time, status models.TaskStatus) models.Task {
	return models.Task{
		Title:         "tarefa",
		ScheduledDate: day,
		Status:        status,
		Priority:      models.PriorityMedium,
		Category:      models.CategoryWork,
		CreatedAt:     day,
	}
}

func completedOn(day, completedAt time.Time) models.Task {
	task := scheduled(day, models.StatusCompleted)
	task.CompletedAt = &completedAt
	return task
}

func TestCompletionRateTrend(t *testing.T) {
	day1 := instant(2024, time.January, 1, 0, 0)
	now := instant(2024, time.January, 3, 12, 0)

	store := &fakeStore{tasks: []models.Task{
		completedOn(day1, day1.Add(2*time.Hour)),
		completedOn(day1, day1.Add(3*time.Hour)),
		scheduled(day1, models.StatusPending),
	}}
	service := NewService(store)

	trend, err := service.CompletionRateTrend(context.Background(), "uid", now, 3)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(trend) != 3 {
		t.Fatalf("esperado 3 pontos, obtido %d", len(trend))
	}

	first := trend[0]
	if first.Date != "2024-01-01" || first.Total != 3 || first.Completed != 2 {
		t.Errorf("primeiro ponto = %+v, esperado 2024-01-01 com 3 tarefas e 2 conclusões", first)
	}
	if first.CompletionRate != 66.67 {
		t.Errorf("taxa = %v, esperado 66.67", first.CompletionRate)
	}

	// Dias sem tarefas aparecem zerados, nunca ficam de fora
	for i, date := range []string{"2024-01-02", "2024-01-03"} {
		point := trend[i+1]
		if point.Date != date || point.Total != 0 || point.CompletionRate != 0 {
			t.Errorf("ponto vazio %d = %+v, esperado %s zerado", i+1, point, date)
		}
	}
}

func TestWeeklyCreatedVsCompletedUsesIndependentBuckets(t *testing.T) {
	created := instant(2024, time.January, 2, 10, 0)   // 2024-W01
	completed := instant(2024, time.January, 8, 10, 0) // 2024-W02
	now := instant(2024, time.January, 10, 12, 0)

	task := models.Task{
		Title:         "tarefa",
		ScheduledDate: created,
		Status:        models.StatusCompleted,
		Priority:      models.PriorityLow,
		Category:      models.CategoryWork,
		CreatedAt:     created,
		CompletedAt:   &completed,
	}
	service := NewService(&fakeStore{tasks: []models.Task{task}})

	weekly, err := service.WeeklyCreatedVsCompleted(context.Background(), "uid", now, 2)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(weekly) != 2 {
		t.Fatalf("esperado 2 semanas, obtido %d", len(weekly))
	}

	if weekly[0].Week != "2024-W01" || weekly[0].Created != 1 || weekly[0].Completed != 0 {
		t.Errorf("semana da criação = %+v, esperado 2024-W01 com 1 criação", weekly[0])
	}
	if weekly[1].Week != "2024-W02" || weekly[1].Created != 0 || weekly[1].Completed != 1 {
		t.Errorf("semana da conclusão = %+v, esperado 2024-W02 com 1 conclusão", weekly[1])
	}
}

func TestCategoryBreakdownSortsByCountDescending(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	day := instant(2024, time.March, 14, 0, 0)

	work1 := scheduled(day, models.StatusPending)
	work2 := scheduled(day, models.StatusPending)
	work3 := completedOn(day, day.Add(time.Hour))
	health := scheduled(day, models.StatusPending)
	health.Category = models.CategoryHealth

	service := NewService(&fakeStore{tasks: []models.Task{health, work1, work2, work3}})

	breakdown, err := service.CategoryBreakdown(context.Background(), "uid", now, 30)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("esperado 2 categorias presentes, obtido %d", len(breakdown))
	}

	if breakdown[0].Category != models.CategoryWork || breakdown[0].Count != 3 {
		t.Errorf("primeira categoria = %+v, esperado work com 3 tarefas", breakdown[0])
	}
	if breakdown[0].CompletionRate != 33.33 {
		t.Errorf("taxa de work = %v, esperado 33.33", breakdown[0].CompletionRate)
	}
	if breakdown[1].Category != models.CategoryHealth || breakdown[1].Count != 1 {
		t.Errorf("segunda categoria = %+v, esperado health com 1 tarefa", breakdown[1])
	}
}

func TestPriorityBreakdownTieFollowsDeclaredOrder(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	day := instant(2024, time.March, 14, 0, 0)

	high := scheduled(day, models.StatusPending)
	high.Priority = models.PriorityHigh
	low := scheduled(day, models.StatusPending)
	low.Priority = models.PriorityLow

	service := NewService(&fakeStore{tasks: []models.Task{high, low}})

	breakdown, err := service.PriorityBreakdown(context.Background(), "uid", now, 30)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("esperado 2 prioridades, obtido %d", len(breakdown))
	}

	// Empate em contagem: prevalece a ordem declarada do enum (low antes de high)
	if breakdown[0].Priority != models.PriorityLow || breakdown[1].Priority != models.PriorityHigh {
		t.Errorf("ordem no empate = [%s, %s], esperado [low, high]",
			breakdown[0].Priority, breakdown[1].Priority)
	}
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	now := instant(2024, time.March, 15, 18, 0)

	today := instant(2024, time.March, 15, 9, 0)
	yesterday := instant(2024, time.March, 14, 20, 0)
	beforeGap := instant(2024, time.March, 12, 10, 0)

	store := &fakeStore{tasks: []models.Task{
		completedOn(today, today),
		completedOn(yesterday, yesterday),
		completedOn(beforeGap, beforeGap),
	}}
	service := NewService(store)

	streak, err := service.CurrentStreak(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if streak != 2 {
		t.Errorf("streak = %d, esperado 2 (a lacuna de 13/03 encerra a conta)", streak)
	}
}

func TestCurrentStreakZeroWithoutCompletionToday(t *testing.T) {
	now := instant(2024, time.March, 15, 18, 0)
	yesterday := instant(2024, time.March, 14, 20, 0)

	service := NewService(&fakeStore{tasks: []models.Task{completedOn(yesterday, yesterday)}})

	streak, err := service.CurrentStreak(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, esperado 0 sem conclusão hoje", streak)
	}
}

func TestAverageCompletionTime(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)

	day := instant(2024, time.March, 14, 10, 0)
	fast := completedOn(day, day.Add(30*time.Minute))
	slow := completedOn(day, day.Add(60*time.Minute))

	service := NewService(&fakeStore{tasks: []models.Task{fast, slow}})

	average, err := service.AverageCompletionTime(context.Background(), "uid", now, 30)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if average != 45 {
		t.Errorf("tempo médio = %d, esperado 45", average)
	}
}

func TestOverdueCountUsesDueInstant(t *testing.T) {
	now := instant(2024, time.March, 15, 15, 0)
	today := instant(2024, time.March, 15, 0, 0)

	morning := scheduled(today, models.StatusPending)
	morning.DueTime = "14:00" // já venceu às 15h

	evening := scheduled(today, models.StatusPending)
	evening.DueTime = "20:00" // ainda no prazo

	noDueTime := scheduled(today, models.StatusPending) // vence no fim do dia

	service := NewService(&fakeStore{tasks: []models.Task{morning, evening, noDueTime}})

	count, err := service.OverdueCount(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if count != 1 {
		t.Errorf("atrasadas = %d, esperado 1", count)
	}
}

func TestMonthlyCompletionRateRoundsToInt(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	day := instant(2024, time.March, 10, 0, 0)

	store := &fakeStore{tasks: []models.Task{
		completedOn(day, day.Add(time.Hour)),
		completedOn(day, day.Add(time.Hour)),
		scheduled(day, models.StatusPending),
	}}
	service := NewService(store)

	rate, err := service.MonthlyCompletionRate(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	// 2/3 = 66.67%, arredondado para inteiro
	if rate != 67 {
		t.Errorf("taxa mensal = %d, esperado 67", rate)
	}
}

func TestAverageTasksPerDayCountsOnlyDaysWithTasks(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	day1 := instant(2024, time.March, 10, 0, 0)
	day2 := instant(2024, time.March, 12, 0, 0)

	store := &fakeStore{tasks: []models.Task{
		scheduled(day1, models.StatusPending),
		scheduled(day1, models.StatusPending),
		scheduled(day2, models.StatusPending),
	}}
	service := NewService(store)

	average, err := service.AverageTasksPerDay(context.Background(), "uid", now, 30)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	// 3 tarefas em 2 dias com tarefas; dias vazios ficam fora do denominador
	if average != 1.5 {
		t.Errorf("média diária = %v, esperado 1.5", average)
	}
}

func TestDashboardDataPropagatesStoreFailure(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	service := NewService(&fakeStore{err: errors.New("conexão recusada")})

	data, err := service.DashboardData(context.Background(), "uid", now)
	if err == nil {
		t.Fatal("falha do banco deveria derrubar o painel inteiro")
	}
	if data != nil {
		t.Errorf("esperado data nil quando há erro, obtido %+v", data)
	}
}

func TestDashboardDataAggregatesAllSections(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	day := instant(2024, time.March, 14, 10, 0)

	service := NewService(&fakeStore{tasks: []models.Task{
		completedOn(day, day.Add(time.Hour)),
		scheduled(day, models.StatusPending),
	}})

	data, err := service.DashboardData(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(data.CompletionRateTrend) != DefaultTrendDays {
		t.Errorf("tendência com %d pontos, esperado %d", len(data.CompletionRateTrend), DefaultTrendDays)
	}
	if len(data.WeeklyData) != DefaultTrendWeeks {
		t.Errorf("semanas com %d pontos, esperado %d", len(data.WeeklyData), DefaultTrendWeeks)
	}
	if len(data.CategoryBreakdown) != 1 {
		t.Errorf("esperado 1 categoria presente, obtido %d", len(data.CategoryBreakdown))
	}
	if data.KPIs.MonthlyCompletionRate != 50 {
		t.Errorf("taxa mensal = %d, esperado 50", data.KPIs.MonthlyCompletionRate)
	}
}

func TestTodayStats(t *testing.T) {
	now := instant(2024, time.March, 15, 15, 0)
	today := instant(2024, time.March, 15, 0, 0)

	done := completedOn(today, now.Add(-time.Hour))
	pendingLate := scheduled(today, models.StatusPending)
	pendingLate.DueTime = "10:00"
	pendingOk := scheduled(today, models.StatusPending)
	pendingOk.DueTime = "22:00"

	service := NewService(&fakeStore{tasks: []models.Task{done, pendingLate, pendingOk}})

	stats, err := service.TodayStats(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if stats.Total != 3 || stats.Completed != 1 || stats.Pending != 2 || stats.Overdue != 1 {
		t.Errorf("resumo do dia = %+v, esperado total 3, 1 concluída, 2 pendentes, 1 atrasada", stats)
	}
}

func TestProductivityScoreBonusAndPenalty(t *testing.T) {
	now := instant(2024, time.March, 15, 15, 0)
	today := instant(2024, time.March, 15, 0, 0)

	// Dia zerado: 100% de conclusão + bônus, limitado a 100
	allDone := NewService(&fakeStore{tasks: []models.Task{
		completedOn(today, now.Add(-time.Hour)),
		completedOn(today, now.Add(-2*time.Hour)),
	}})
	score, err := allDone.ProductivityScore(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if score != 100 {
		t.Errorf("pontuação com dia zerado = %d, esperado 100", score)
	}

	// Metade feita com uma pendência atrasada: 50 - 5
	late := scheduled(today, models.StatusPending)
	late.DueTime = "10:00"
	half := NewService(&fakeStore{tasks: []models.Task{
		completedOn(today, now.Add(-time.Hour)),
		late,
	}})
	score, err = half.ProductivityScore(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if score != 45 {
		t.Errorf("pontuação com atraso = %d, esperado 45", score)
	}
}

func TestMonthlyTrendFillsEmptyMonths(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	january := instant(2024, time.January, 10, 0, 0)

	service := NewService(&fakeStore{tasks: []models.Task{
		completedOn(january, january.Add(time.Hour)),
	}})

	trend, err := service.MonthlyTrend(context.Background(), "uid", now, 3)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(trend) != 3 {
		t.Fatalf("esperado 3 meses, obtido %d", len(trend))
	}

	if trend[0].Month != "2024-01" || trend[0].Total != 1 || trend[0].CompletionRate != 100 {
		t.Errorf("janeiro = %+v, esperado 1 tarefa com taxa 100", trend[0])
	}
	if trend[1].Month != "2024-02" || trend[1].Total != 0 {
		t.Errorf("fevereiro = %+v, esperado mês vazio presente", trend[1])
	}
	if trend[2].Month != "2024-03" || trend[2].Total != 0 {
		t.Errorf("março = %+v, esperado mês vazio presente", trend[2])
	}
}

func TestProductivityInsights(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)

	// Duas conclusões na quinta (14/03), uma na quarta (13/03)
	thursday := instant(2024, time.March, 14, 0, 0)
	wednesday := instant(2024, time.March, 13, 0, 0)

	work1 := completedOn(thursday, thursday.Add(time.Hour))
	work2 := completedOn(thursday, thursday.Add(2*time.Hour))
	health := completedOn(wednesday, wednesday.Add(time.Hour))
	health.Category = models.CategoryHealth

	service := NewService(&fakeStore{tasks: []models.Task{work1, work2, health}})

	insights, err := service.ProductivityInsights(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if insights.BestDay != "Thursday" {
		t.Errorf("melhor dia = %q, esperado Thursday", insights.BestDay)
	}
	if insights.TopCategory != "work" {
		t.Errorf("categoria principal = %q, esperado work", insights.TopCategory)
	}
}

func TestProductivityInsightsWithoutData(t *testing.T) {
	now := instant(2024, time.March, 15, 12, 0)
	service := NewService(&fakeStore{})

	insights, err := service.ProductivityInsights(context.Background(), "uid", now)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if insights.BestDay != "N/A" || insights.TopCategory != "N/A" {
		t.Errorf("sem dados esperado N/A, obtido %+v", insights)
	}
}
