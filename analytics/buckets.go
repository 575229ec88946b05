// Package analytics agrega o histórico de tarefas em tendências, breakdowns
// e KPIs. Todas as funções recebem o instante de referência como parâmetro;
// o relógio do sistema nunca é lido aqui dentro.
package analytics

import (
	"fmt"
	"time"

	"planeja-backend/models"
)

// Granularidade dos buckets de tempo.
//
// Convenção de semana: ISO-8601, com a semana começando na segunda-feira e
// numeração ISO (time.Time.ISOWeek). A convenção é fixa porque a correção do
// streak e do gráfico semanal depende dela.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// BucketKey devolve a chave canônica do bucket que contém o instante:
// YYYY-MM-DD para dia, YYYY-Www para semana ISO e YYYY-MM para mês.
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		return WeekKey(t)
	case GranularityMonth:
		return MonthKey(t)
	}
	return DayKey(t)
}

func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// startOfISOWeek volta até a segunda-feira do instante informado
func startOfISOWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t.AddDate(0, 0, -offset))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DayWindow devolve a janela [início, fim] dos últimos `days` dias corridos,
// terminando no fim do dia de referência. Inclusiva nas duas pontas.
func DayWindow(now time.Time, days int) (time.Time, time.Time, error) {
	if days <= 0 {
		verr := models.NewValidationError()
		verr.Add("days", "deve ser maior que zero")
		return time.Time{}, time.Time{}, verr
	}
	end := endOfDay(now)
	start := startOfDay(now.AddDate(0, 0, -(days - 1)))
	return start, end, nil
}

// WeekWindow devolve a janela das últimas `weeks` semanas ISO, terminando no
// domingo da semana de referência.
func WeekWindow(now time.Time, weeks int) (time.Time, time.Time, error) {
	if weeks <= 0 {
		verr := models.NewValidationError()
		verr.Add("weeks", "deve ser maior que zero")
		return time.Time{}, time.Time{}, verr
	}
	currentWeek := startOfISOWeek(now)
	end := endOfDay(currentWeek.AddDate(0, 0, 6))
	start := currentWeek.AddDate(0, 0, -7*(weeks-1))
	return start, end, nil
}

// MonthWindow devolve a janela dos últimos `months` meses de calendário,
// terminando no último instante do mês de referência.
func MonthWindow(now time.Time, months int) (time.Time, time.Time, error) {
	if months <= 0 {
		verr := models.NewValidationError()
		verr.Add("months", "deve ser maior que zero")
		return time.Time{}, time.Time{}, verr
	}
	start := startOfMonth(now).AddDate(0, -(months - 1), 0)
	end := startOfMonth(now).AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}

// DayKeys enumera, em ordem crescente, a chave de cada dia da janela.
// Nenhum dia fica de fora: buckets vazios aparecem com contagem zero.
func DayKeys(now time.Time, days int) []string {
	keys := make([]string, 0, days)
	first := startOfDay(now.AddDate(0, 0, -(days - 1)))
	for i := 0; i < days; i++ {
		keys = append(keys, DayKey(first.AddDate(0, 0, i)))
	}
	return keys
}

// WeekKeys enumera, em ordem crescente, a chave ISO de cada semana da janela
func WeekKeys(now time.Time, weeks int) []string {
	keys := make([]string, 0, weeks)
	first := startOfISOWeek(now).AddDate(0, 0, -7*(weeks-1))
	for i := 0; i < weeks; i++ {
		keys = append(keys, WeekKey(first.AddDate(0, 0, 7*i)))
	}
	return keys
}

// MonthKeys enumera, em ordem crescente, a chave de cada mês da janela
func MonthKeys(now time.Time, months int) []string {
	keys := make([]string, 0, months)
	first := startOfMonth(now).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		keys = append(keys, MonthKey(first.AddDate(0, i, 0)))
	}
	return keys
}
