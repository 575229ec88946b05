package analytics

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"planeja-backend/models"
)

// Períodos padrão das consultas de tendência
const (
	DefaultTrendDays   = 30
	DefaultTrendWeeks  = 12
	DefaultTrendMonths = 12
)

// TaskFinder é o contrato mínimo que o motor de agregação exige do banco.
// As consultas são somente leitura e sempre restritas a um usuário.
type TaskFinder interface {
	Find(ctx context.Context, userUID string, filter models.TaskFilter) ([]models.Task, error)
	FindTouched(ctx context.Context, userUID string, from, to time.Time) ([]models.Task, error)
}

type Service struct {
	store TaskFinder
}

func NewService(store TaskFinder) *Service {
	return &Service{store: store}
}

// TrendPoint é um dia da tendência de conclusão. A taxa fica em [0, 100],
// arredondada em duas casas decimais, e vale 0 quando o dia não tem tarefas.
type TrendPoint struct {
	Date           string  `json:"date"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

// WeeklyPoint compara criação e conclusão numa mesma semana ISO. Uma tarefa
// pode contar como criada numa semana e concluída em outra.
type WeeklyPoint struct {
	Week      string `json:"week"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type CategoryCount struct {
	Category       models.TaskCategory `json:"category"`
	Count          int                 `json:"count"`
	Completed      int                 `json:"completed"`
	CompletionRate float64             `json:"completionRate"`
}

type PriorityCount struct {
	Priority       models.TaskPriority `json:"priority"`
	Count          int                 `json:"count"`
	Completed      int                 `json:"completed"`
	CompletionRate float64             `json:"completionRate"`
}

type KPIs struct {
	CurrentStreak         int     `json:"currentStreak"`
	AverageCompletionTime int     `json:"averageCompletionTime"`
	OverdueCount          int     `json:"overdueCount"`
	MonthlyCompletionRate int     `json:"monthlyCompletionRate"`
	AverageTasksPerDay    float64 `json:"averageTasksPerDay"`
}

type DashboardData struct {
	CompletionRateTrend []TrendPoint    `json:"completionRateTrend"`
	WeeklyData          []WeeklyPoint   `json:"weeklyData"`
	CategoryBreakdown   []CategoryCount `json:"categoryBreakdown"`
	PriorityBreakdown   []PriorityCount `json:"priorityBreakdown"`
	KPIs                KPIs            `json:"kpis"`
}

type MonthPoint struct {
	Month          string  `json:"month"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

type TodayStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

type ProductivityInsights struct {
	BestDay     string `json:"bestDay"`
	BestTime    string `json:"bestTime"`
	TopCategory string `json:"topCategory"`
}

// completionRate calcula completed/total*100 com duas casas decimais.
// Total zero devolve 0, nunca NaN.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

// roundedRate é a variante inteira usada nos KPIs
func roundedRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// CompletionRateTrend calcula, por dia agendado, o total e as conclusões dos
// últimos `days` dias. Devolve exatamente um ponto por dia, em ordem
// crescente, sem lacunas.
func (s *Service) CompletionRateTrend(ctx context.Context, userUID string, now time.Time, days int) ([]TrendPoint, error) {
	start, end, err := DayWindow(now, days)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	completed := map[string]int{}
	for _, task := range tasks {
		key := DayKey(task.ScheduledDate)
		totals[key]++
		if task.Status == models.StatusCompleted {
			completed[key]++
		}
	}

	trend := make([]TrendPoint, 0, days)
	for _, key := range DayKeys(now, days) {
		trend = append(trend, TrendPoint{
			Date:           key,
			Total:          totals[key],
			Completed:      completed[key],
			CompletionRate: completionRate(completed[key], totals[key]),
		})
	}
	return trend, nil
}

// WeeklyCreatedVsCompleted compara criações e conclusões nas últimas `weeks`
// semanas ISO. Os dois critérios usam buckets independentes: created_at para
// criação e completed_at para conclusão.
func (s *Service) WeeklyCreatedVsCompleted(ctx context.Context, userUID string, now time.Time, weeks int) ([]WeeklyPoint, error) {
	start, end, err := WeekWindow(now, weeks)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.FindTouched(ctx, userUID, start, end)
	if err != nil {
		return nil, err
	}

	created := map[string]int{}
	completed := map[string]int{}
	for _, task := range tasks {
		if !task.CreatedAt.Before(start) && !task.CreatedAt.After(end) {
			created[WeekKey(task.CreatedAt)]++
		}
		if task.CompletedAt != nil && !task.CompletedAt.Before(start) && !task.CompletedAt.After(end) {
			completed[WeekKey(*task.CompletedAt)]++
		}
	}

	weekly := make([]WeeklyPoint, 0, weeks)
	for _, key := range WeekKeys(now, weeks) {
		weekly = append(weekly, WeeklyPoint{Week: key, Created: created[key], Completed: completed[key]})
	}
	return weekly, nil
}

// CategoryBreakdown agrupa por categoria as tarefas agendadas na janela.
// Ordenação por contagem decrescente; empates seguem a ordem declarada do
// enum para manter a saída determinística.
func (s *Service) CategoryBreakdown(ctx context.Context, userUID string, now time.Time, days int) ([]CategoryCount, error) {
	start, end, err := DayWindow(now, days)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return nil, err
	}

	counts := map[models.TaskCategory]*CategoryCount{}
	for _, task := range tasks {
		entry, ok := counts[task.Category]
		if !ok {
			entry = &CategoryCount{Category: task.Category}
			counts[task.Category] = entry
		}
		entry.Count++
		if task.Status == models.StatusCompleted {
			entry.Completed++
		}
	}

	// Monta na ordem declarada do enum; o sort estável preserva o desempate
	breakdown := []CategoryCount{}
	for _, category := range models.AllCategories {
		if entry, ok := counts[category]; ok {
			entry.CompletionRate = completionRate(entry.Completed, entry.Count)
			breakdown = append(breakdown, *entry)
		}
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})
	return breakdown, nil
}

// PriorityBreakdown agrupa por prioridade as tarefas agendadas na janela
func (s *Service) PriorityBreakdown(ctx context.Context, userUID string, now time.Time, days int) ([]PriorityCount, error) {
	start, end, err := DayWindow(now, days)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return nil, err
	}

	counts := map[models.TaskPriority]*PriorityCount{}
	for _, task := range tasks {
		entry, ok := counts[task.Priority]
		if !ok {
			entry = &PriorityCount{Priority: task.Priority}
			counts[task.Priority] = entry
		}
		entry.Count++
		if task.Status == models.StatusCompleted {
			entry.Completed++
		}
	}

	breakdown := []PriorityCount{}
	for _, priority := range models.AllPriorities {
		if entry, ok := counts[priority]; ok {
			entry.CompletionRate = completionRate(entry.Completed, entry.Count)
			breakdown = append(breakdown, *entry)
		}
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})
	return breakdown, nil
}

// CurrentStreak conta os dias consecutivos, voltando a partir de hoje, em que
// houve pelo menos uma conclusão. Para no primeiro dia sem conclusão; hoje só
// conta se já tiver uma tarefa concluída.
func (s *Service) CurrentStreak(ctx context.Context, userUID string, now time.Time) (int, error) {
	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{Status: string(models.StatusCompleted)})
	if err != nil {
		return 0, err
	}

	completedDays := map[string]bool{}
	for _, task := range tasks {
		if task.CompletedAt != nil {
			completedDays[DayKey(*task.CompletedAt)] = true
		}
	}

	streak := 0
	day := now
	for completedDays[DayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// AverageCompletionTime calcula a média, em minutos, do tempo entre criação e
// conclusão das tarefas concluídas na janela. Sem tarefas, devolve 0.
func (s *Service) AverageCompletionTime(ctx context.Context, userUID string, now time.Time, days int) (int, error) {
	start, end, err := DayWindow(now, days)
	if err != nil {
		return 0, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{Status: string(models.StatusCompleted)})
	if err != nil {
		return 0, err
	}

	total := 0
	counted := 0
	for _, task := range tasks {
		if task.CompletedAt == nil || task.CompletedAt.Before(start) || task.CompletedAt.After(end) {
			continue
		}
		if minutes, ok := task.CompletionTimeMinutes(); ok {
			total += minutes
			counted++
		}
	}
	if counted == 0 {
		return 0, nil
	}
	return int(math.Round(float64(total) / float64(counted))), nil
}

// OverdueCount conta as tarefas pendentes cujo vencimento já passou. Não há
// janela: qualquer pendência antiga conta.
func (s *Service) OverdueCount(ctx context.Context, userUID string, now time.Time) (int, error) {
	limit := endOfDay(now)
	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{
		Status: string(models.StatusPending),
		DateTo: &limit,
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, task := range tasks {
		if task.IsOverdue(now) {
			count++
		}
	}
	return count, nil
}

// MonthlyCompletionRate calcula a taxa de conclusão do mês corrente inteiro,
// não de uma janela móvel.
func (s *Service) MonthlyCompletionRate(ctx context.Context, userUID string, now time.Time) (int, error) {
	start, end, err := MonthWindow(now, 1)
	if err != nil {
		return 0, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, task := range tasks {
		if task.Status == models.StatusCompleted {
			completed++
		}
	}
	return roundedRate(completed, len(tasks)), nil
}

// AverageTasksPerDay calcula a média de tarefas por dia com tarefas dentro da
// janela, com uma casa decimal. Dias vazios não entram no denominador.
func (s *Service) AverageTasksPerDay(ctx context.Context, userUID string, now time.Time, days int) (float64, error) {
	start, end, err := DayWindow(now, days)
	if err != nil {
		return 0, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	perDay := map[string]int{}
	for _, task := range tasks {
		perDay[DayKey(task.ScheduledDate)]++
	}
	average := float64(len(tasks)) / float64(len(perDay))
	return math.Round(average*10) / 10, nil
}

// DashboardData executa todas as métricas do painel em paralelo e só monta a
// resposta quando todas terminam. Qualquer falha derruba a chamada inteira;
// zeros nunca substituem uma consulta que falhou.
func (s *Service) DashboardData(ctx context.Context, userUID string, now time.Time) (*DashboardData, error) {
	data := &DashboardData{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	run(func() (err error) {
		data.CompletionRateTrend, err = s.CompletionRateTrend(ctx, userUID, now, DefaultTrendDays)
		return
	})
	run(func() (err error) {
		data.WeeklyData, err = s.WeeklyCreatedVsCompleted(ctx, userUID, now, DefaultTrendWeeks)
		return
	})
	run(func() (err error) {
		data.CategoryBreakdown, err = s.CategoryBreakdown(ctx, userUID, now, DefaultTrendDays)
		return
	})
	run(func() (err error) {
		data.PriorityBreakdown, err = s.PriorityBreakdown(ctx, userUID, now, DefaultTrendDays)
		return
	})
	run(func() (err error) {
		data.KPIs.CurrentStreak, err = s.CurrentStreak(ctx, userUID, now)
		return
	})
	run(func() (err error) {
		data.KPIs.AverageCompletionTime, err = s.AverageCompletionTime(ctx, userUID, now, DefaultTrendDays)
		return
	})
	run(func() (err error) {
		data.KPIs.OverdueCount, err = s.OverdueCount(ctx, userUID, now)
		return
	})
	run(func() (err error) {
		data.KPIs.MonthlyCompletionRate, err = s.MonthlyCompletionRate(ctx, userUID, now)
		return
	})
	run(func() (err error) {
		data.KPIs.AverageTasksPerDay, err = s.AverageTasksPerDay(ctx, userUID, now, DefaultTrendDays)
		return
	})

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return data, nil
}

// TodayStats resume o dia de referência: totais, conclusões, pendências e
// atrasos entre as tarefas agendadas para hoje.
func (s *Service) TodayStats(ctx context.Context, userUID string, now time.Time) (*TodayStats, error) {
	start := startOfDay(now)
	end := endOfDay(now)

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return nil, err
	}

	stats := &TodayStats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusPending:
			stats.Pending++
		}
		if task.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// ProductivityScore pontua o dia: taxa de conclusão de hoje, bônus de 10 por
// zerar a lista e penalidade de 5 por pendência atrasada, limitado a [0, 100].
func (s *Service) ProductivityScore(ctx context.Context, userUID string, now time.Time) (int, error) {
	today, err := s.TodayStats(ctx, userUID, now)
	if err != nil {
		return 0, err
	}

	score := float64(0)
	if today.Total > 0 {
		score = float64(today.Completed) / float64(today.Total) * 100
		if today.Completed == today.Total {
			score += 10
		}
	}

	overdue, err := s.OverdueCount(ctx, userUID, now)
	if err != nil {
		return 0, err
	}
	score = math.Max(0, score-float64(overdue)*5)

	return int(math.Round(math.Min(100, score))), nil
}

// MonthlyTrend devolve totais e taxa de conclusão por mês, um ponto por mês
// da janela, sem lacunas.
func (s *Service) MonthlyTrend(ctx context.Context, userUID string, now time.Time, months int) ([]MonthPoint, error) {
	start, end, err := MonthWindow(now, months)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	completed := map[string]int{}
	for _, task := range tasks {
		key := MonthKey(task.ScheduledDate)
		totals[key]++
		if task.Status == models.StatusCompleted {
			completed[key]++
		}
	}

	trend := make([]MonthPoint, 0, months)
	for _, key := range MonthKeys(now, months) {
		trend = append(trend, MonthPoint{
			Month:          key,
			Total:          totals[key],
			Completed:      completed[key],
			CompletionRate: completionRate(completed[key], totals[key]),
		})
	}
	return trend, nil
}

// ProductivityInsights aponta o dia da semana e a categoria com mais
// conclusões nos últimos 30 dias. Sem dados suficientes, devolve "N/A".
func (s *Service) ProductivityInsights(ctx context.Context, userUID string, now time.Time) (*ProductivityInsights, error) {
	start, end, err := DayWindow(now, DefaultTrendDays)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Find(ctx, userUID, models.TaskFilter{
		DateFrom: &start,
		DateTo:   &end,
		Status:   string(models.StatusCompleted),
	})
	if err != nil {
		return nil, err
	}

	byWeekday := map[time.Weekday]int{}
	byCategory := map[models.TaskCategory]int{}
	for _, task := range tasks {
		byWeekday[task.ScheduledDate.Weekday()]++
		byCategory[task.Category]++
	}

	insights := &ProductivityInsights{
		BestDay: "N/A",
		// Sem registro de horário por tarefa; placeholder herdado do painel
		BestTime:    "Morning (9-12 AM)",
		TopCategory: "N/A",
	}

	bestCount := 0
	for day := time.Sunday; day <= time.Saturday; day++ {
		if byWeekday[day] > bestCount {
			bestCount = byWeekday[day]
			insights.BestDay = day.String()
		}
	}

	topCount := 0
	for _, category := range models.AllCategories {
		if byCategory[category] > topCount {
			topCount = byCategory[category]
			insights.TopCategory = string(category)
		}
	}

	return insights, nil
}
