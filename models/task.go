package models

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
	StatusCancelled TaskStatus = "cancelled"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type TaskCategory string

const (
	CategoryWork      TaskCategory = "work"
	CategoryPersonal  TaskCategory = "personal"
	CategoryHealth    TaskCategory = "health"
	CategoryFinance   TaskCategory = "finance"
	CategoryEducation TaskCategory = "education"
	CategoryShopping  TaskCategory = "shopping"
	CategoryTravel    TaskCategory = "travel"
	CategoryOther     TaskCategory = "other"
)

// Ordem declarada dos enums. Os breakdowns usam essa ordem como critério de
// desempate para manter a saída determinística.
var (
	AllStatuses   = []TaskStatus{StatusPending, StatusCompleted, StatusCancelled}
	AllPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}
	AllCategories = []TaskCategory{
		CategoryWork, CategoryPersonal, CategoryHealth, CategoryFinance,
		CategoryEducation, CategoryShopping, CategoryTravel, CategoryOther,
	}
)

var (
	ValidStatuses   = map[TaskStatus]bool{StatusPending: true, StatusCompleted: true, StatusCancelled: true}
	ValidPriorities = map[TaskPriority]bool{PriorityLow: true, PriorityMedium: true, PriorityHigh: true}
	ValidCategories = map[TaskCategory]bool{
		CategoryWork: true, CategoryPersonal: true, CategoryHealth: true, CategoryFinance: true,
		CategoryEducation: true, CategoryShopping: true, CategoryTravel: true, CategoryOther: true,
	}
)

// HoraLimiteRegex valida o formato HH:MM da hora limite
var HoraLimiteRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

type Task struct {
	ID               int64        `json:"id"`
	UserUID          string       `json:"user_uid"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	ScheduledDate    time.Time    `json:"scheduled_date"`
	DueTime          string       `json:"due_time,omitempty"`
	Status           TaskStatus   `json:"status"`
	Priority         TaskPriority `json:"priority"`
	Category         TaskCategory `json:"category"`
	Tags             []string     `json:"tags"`
	EstimatedMinutes int          `json:"estimated_minutes,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	CompletedAt      *time.Time   `json:"completed_at,omitempty"`
	DeletedAt        *time.Time   `json:"deleted_at,omitempty"`
}

// PriorityRank retorna o peso numérico da prioridade (high > medium > low),
// usado na ordenação dos relatórios.
func PriorityRank(p TaskPriority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// DueInstant combina a data agendada com a hora limite opcional. Sem hora
// limite, o vencimento é o fim do dia (23:59:59.999).
func (t Task) DueInstant() time.Time {
	day := time.Date(t.ScheduledDate.Year(), t.ScheduledDate.Month(), t.ScheduledDate.Day(),
		0, 0, 0, 0, t.ScheduledDate.Location())

	if t.DueTime != "" {
		if m := HoraLimiteRegex.FindStringSubmatch(t.DueTime); m != nil {
			hours, _ := strconv.Atoi(m[1])
			minutes, _ := strconv.Atoi(m[2])
			return day.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
		}
	}

	return day.Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
}

// IsOverdue indica se a tarefa está pendente e com o vencimento ultrapassado.
// O instante de referência é sempre injetado para manter o cálculo testável.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status == StatusPending && now.After(t.DueInstant())
}

// CompletionTimeMinutes calcula a duração entre criação e conclusão em
// minutos. O segundo retorno indica se os dois instantes existem.
func (t Task) CompletionTimeMinutes() (int, bool) {
	if t.CompletedAt == nil || t.CreatedAt.IsZero() {
		return 0, false
	}
	minutes := t.CompletedAt.Sub(t.CreatedAt).Minutes()
	return int(math.Round(minutes)), true
}
