package rewards

import (
	"testing"
	"time"

	"planeja-backend/models"
)

func completedTask(completedAt time.Time) models.Task {
	return models.Task{
		Title:       "tarefa",
		Status:      models.StatusCompleted,
		CompletedAt: &completedAt,
	}
}

func TestCalculateStreakEmptyList(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)

	if got := CalculateStreak(nil, now); got != 0 {
		t.Errorf("streak de lista vazia = %d, esperado 0", got)
	}
}

func TestCalculateStreakIgnoresTasksWithoutCompletion(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)
	tasks := []models.Task{{Title: "pendente", Status: models.StatusPending}}

	if got := CalculateStreak(tasks, now); got != 0 {
		t.Errorf("streak = %d, esperado 0 sem conclusões", got)
	}
}

func TestCalculateStreakStopsAtGap(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		completedTask(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)),
		completedTask(time.Date(2024, time.March, 14, 21, 0, 0, 0, time.UTC)),
		// Lacuna no dia 13; o dia 12 não conta
		completedTask(time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)),
	}

	if got := CalculateStreak(tasks, now); got != 2 {
		t.Errorf("streak = %d, esperado 2", got)
	}
}

func TestCalculateStreakIgnoresSameDayDuplicates(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		completedTask(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)),
		completedTask(time.Date(2024, time.March, 15, 11, 0, 0, 0, time.UTC)),
		completedTask(time.Date(2024, time.March, 15, 16, 0, 0, 0, time.UTC)),
		completedTask(time.Date(2024, time.March, 14, 8, 0, 0, 0, time.UTC)),
	}

	if got := CalculateStreak(tasks, now); got != 2 {
		t.Errorf("streak = %d, esperado 2 (conclusões repetidas no dia contam uma vez)", got)
	}
}

func TestCheckAchievementsFiresOnlyOnExactThreshold(t *testing.T) {
	earned := CheckAchievements(UserStats{TotalCompleted: 10})
	if len(earned) != 1 || earned[0].Name != "Target Master" {
		t.Errorf("10 conclusões = %+v, esperado apenas Target Master", earned)
	}

	// Um passo depois do limiar, nada dispara de novo
	if earned := CheckAchievements(UserStats{TotalCompleted: 11}); len(earned) != 0 {
		t.Errorf("11 conclusões = %+v, esperado nenhuma conquista", earned)
	}
}

func TestCheckAchievementsCombinesTaskAndStreakThresholds(t *testing.T) {
	earned := CheckAchievements(UserStats{TotalCompleted: 1, CurrentStreak: 3})
	if len(earned) != 2 {
		t.Fatalf("esperado 2 conquistas, obtido %d", len(earned))
	}
	if earned[0].Name != "First Steps" || earned[1].Name != "On Fire" {
		t.Errorf("conquistas = [%s, %s], esperado [First Steps, On Fire]",
			earned[0].Name, earned[1].Name)
	}
}

func TestStreakMessageUsesTierThresholds(t *testing.T) {
	if msg := StreakMessage(2); msg != nil {
		t.Errorf("streak 2 deveria ficar sem mensagem, obtido %+v", msg)
	}

	// Diferente das conquistas, a mensagem usa >= e repete em toda consulta
	for _, streak := range []int{3, 5} {
		msg := StreakMessage(streak)
		if msg == nil {
			t.Fatalf("streak %d deveria ter mensagem", streak)
		}
		if msg.Quote != motivationalQuotes[ActionStreak][0].Quote {
			t.Errorf("streak %d = %q, esperado a mensagem do patamar 3", streak, msg.Quote)
		}
	}

	if msg := StreakMessage(150); msg == nil || msg.Quote != motivationalQuotes[ActionStreak][3].Quote {
		t.Error("streak 150 deveria usar a mensagem do patamar 100")
	}
}

func TestMilestoneMessageUsesTierThresholds(t *testing.T) {
	if msg := MilestoneMessage(9); msg != nil {
		t.Errorf("9 conclusões deveriam ficar sem mensagem, obtido %+v", msg)
	}
	if msg := MilestoneMessage(75); msg == nil || msg.Quote != motivationalQuotes[ActionMilestone][1].Quote {
		t.Error("75 conclusões deveriam usar a mensagem do patamar 50")
	}
}

func TestRandomQuoteFallsBackToTaskCompleted(t *testing.T) {
	quote := RandomQuote("acao-desconhecida")

	found := false
	for _, candidate := range motivationalQuotes[ActionTaskCompleted] {
		if candidate.Quote == quote.Quote {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ação desconhecida deveria sortear do grupo taskCompleted, obtido %+v", quote)
	}
}

func TestMultipleQuotesLimitsToAvailable(t *testing.T) {
	available := len(motivationalQuotes[ActionLogin])

	quotes := MultipleQuotes(ActionLogin, available+10)
	if len(quotes) != available {
		t.Errorf("esperado %d frases, obtido %d", available, len(quotes))
	}

	seen := map[string]bool{}
	for _, quote := range quotes {
		if seen[quote.Quote] {
			t.Errorf("frase repetida no sorteio: %q", quote.Quote)
		}
		seen[quote.Quote] = true
	}
}

func TestBadgesReturnsCopy(t *testing.T) {
	catalog := Badges()
	if len(catalog) != len(achievementBadges) {
		t.Fatalf("catálogo com %d conquistas, esperado %d", len(catalog), len(achievementBadges))
	}

	catalog["firstTask"] = Badge{Name: "alterado"}
	if achievementBadges["firstTask"].Name == "alterado" {
		t.Error("alterar o catálogo devolvido não pode vazar para o original")
	}
}
