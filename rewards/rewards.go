// Package rewards cuida da parte lúdica do planner: frases motivacionais,
// cálculo de streak sobre uma lista já carregada e detecção de conquistas.
package rewards

import (
	"math/rand"
	"sort"
	"time"

	"planeja-backend/models"
)

type Quote struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// UserStats é a entrada da detecção de conquistas, calculada logo após uma
// conclusão de tarefa.
type UserStats struct {
	TotalCompleted int `json:"totalCompleted"`
	CurrentStreak  int `json:"currentStreak"`
}

// Ações que disparam frases motivacionais
const (
	ActionTaskCreated   = "taskCreated"
	ActionTaskCompleted = "taskCompleted"
	ActionLogin         = "login"
	ActionStreak        = "streak"
	ActionMilestone     = "milestone"
	ActionStatusChange  = "statusChange"
	ActionTaskReset     = "taskReset"
)

// RandomQuote sorteia uma frase para a ação. Ação desconhecida cai no grupo
// de conclusão de tarefa.
func RandomQuote(action string) Quote {
	quotes, ok := motivationalQuotes[action]
	if !ok {
		quotes = motivationalQuotes[ActionTaskCompleted]
	}
	return quotes[rand.Intn(len(quotes))]
}

// MultipleQuotes sorteia até `count` frases distintas da ação
func MultipleQuotes(action string, count int) []Quote {
	quotes, ok := motivationalQuotes[action]
	if !ok {
		quotes = motivationalQuotes[ActionTaskCompleted]
	}

	shuffled := make([]Quote, len(quotes))
	copy(shuffled, quotes)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// StreakMessage escolhe a mensagem do maior patamar menor ou igual ao streak.
// Política de >=, diferente da detecção de conquistas: a mensagem repete a
// cada consulta, a conquista dispara uma única vez.
func StreakMessage(streak int) *Quote {
	quotes := motivationalQuotes[ActionStreak]

	switch {
	case streak >= 100:
		return &quotes[3]
	case streak >= 30:
		return &quotes[2]
	case streak >= 7:
		return &quotes[1]
	case streak >= 3:
		return &quotes[0]
	}
	return nil
}

// MilestoneMessage escolhe a mensagem do maior patamar menor ou igual ao
// total de tarefas concluídas.
func MilestoneMessage(taskCount int) *Quote {
	quotes := motivationalQuotes[ActionMilestone]

	switch {
	case taskCount >= 500:
		return &quotes[3]
	case taskCount >= 100:
		return &quotes[2]
	case taskCount >= 50:
		return &quotes[1]
	case taskCount >= 10:
		return &quotes[0]
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalculateStreak conta dias consecutivos com conclusão, voltando a partir do
// dia de referência, sobre uma lista já carregada de tarefas. Tarefas sem
// completed_at são ignoradas; o primeiro dia sem conclusão encerra a conta.
func CalculateStreak(tasks []models.Task, now time.Time) int {
	completed := []models.Task{}
	for _, task := range tasks {
		if task.CompletedAt != nil {
			completed = append(completed, task)
		}
	}
	if len(completed) == 0 {
		return 0
	}

	// Mais recentes primeiro
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(*completed[j].CompletedAt)
	})

	streak := 0
	current := startOfDay(now)

	for _, task := range completed {
		day := startOfDay(*task.CompletedAt)

		switch {
		case day.Equal(current):
			streak++
			current = current.AddDate(0, 0, -1)
		case day.Before(current):
			// Lacuna encontrada
			return streak
		}
		// Conclusões repetidas no mesmo dia caem aqui e são ignoradas
	}

	return streak
}

// CheckAchievements devolve as conquistas cujo limiar é exatamente igual ao
// contador. A igualdade é proposital: a conquista dispara só no instante do
// cruzamento, não em toda verificação seguinte.
func CheckAchievements(stats UserStats) []Badge {
	badges := achievementBadges
	earned := []Badge{}

	if stats.TotalCompleted == 1 {
		earned = append(earned, badges["firstTask"])
	}
	if stats.TotalCompleted == 10 {
		earned = append(earned, badges["tasks10"])
	}
	if stats.TotalCompleted == 50 {
		earned = append(earned, badges["tasks50"])
	}
	if stats.TotalCompleted == 100 {
		earned = append(earned, badges["tasks100"])
	}
	if stats.TotalCompleted == 500 {
		earned = append(earned, badges["tasks500"])
	}

	if stats.CurrentStreak == 3 {
		earned = append(earned, badges["streak3"])
	}
	if stats.CurrentStreak == 7 {
		earned = append(earned, badges["streak7"])
	}
	if stats.CurrentStreak == 30 {
		earned = append(earned, badges["streak30"])
	}

	return earned
}

// Badges expõe o catálogo completo de conquistas
func Badges() map[string]Badge {
	catalog := make(map[string]Badge, len(achievementBadges))
	for key, badge := range achievementBadges {
		catalog[key] = badge
	}
	return catalog
}

var achievementBadges = map[string]Badge{
	"firstTask": {
		Name:        "First Steps",
		Description: "Completed your first task",
		Icon:        "🎯",
		Color:       "bg-blue-500",
	},
	"streak3": {
		Name:        "On Fire",
		Description: "3-day completion streak",
		Icon:        "🔥",
		Color:       "bg-orange-500",
	},
	"streak7": {
		Name:        "Unstoppable",
		Description: "7-day completion streak",
		Icon:        "🌟",
		Color:       "bg-yellow-500",
	},
	"streak30": {
		Name:        "Diamond",
		Description: "30-day completion streak",
		Icon:        "💎",
		Color:       "bg-purple-500",
	},
	"tasks10": {
		Name:        "Target Master",
		Description: "Completed 10 tasks",
		Icon:        "🎯",
		Color:       "bg-green-500",
	},
	"tasks50": {
		Name:        "Productivity Champion",
		Description: "Completed 50 tasks",
		Icon:        "🏆",
		Color:       "bg-red-500",
	},
	"tasks100": {
		Name:        "Legend",
		Description: "Completed 100 tasks",
		Icon:        "💎",
		Color:       "bg-indigo-500",
	},
	"tasks500": {
		Name:        "Master",
		Description: "Completed 500 tasks",
		Icon:        "👑",
		Color:       "bg-yellow-600",
	},
}
