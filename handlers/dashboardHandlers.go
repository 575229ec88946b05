package handlers

import (
	"fmt"
	"net/http"
	"time"

	"planeja-backend/analytics"
	"planeja-backend/rewards"
	"planeja-backend/utilities"
)

// respondData embrulha os resultados do painel no envelope padrão
func respondData(w http.ResponseWriter, payload interface{}) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    payload,
	})
}

// DashboardDataHandler devolve todas as métricas do painel numa única resposta
func DashboardDataHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	data, err := analyticsService.DashboardData(r.Context(), uid, time.Now())
	if err != nil {
		respondError(w, err, "Erro ao montar dados do painel")
		return
	}

	utilities.LogInfo("Dados do painel calculados para UID: %s", uid)
	respondData(w, data)
}

// CompletionRateHandler devolve a tendência diária de conclusão
func CompletionRateHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	days, err := parsePeriodParam(r, "days", analytics.DefaultTrendDays)
	if err != nil {
		respondError(w, err, "Parâmetro de período inválido")
		return
	}

	trend, err := analyticsService.CompletionRateTrend(r.Context(), uid, time.Now(), days)
	if err != nil {
		respondError(w, err, "Erro ao calcular tendência de conclusão")
		return
	}

	respondData(w, trend)
}

// WeeklyDataHandler compara criações e conclusões por semana
func WeeklyDataHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	weeks, err := parsePeriodParam(r, "weeks", analytics.DefaultTrendWeeks)
	if err != nil {
		respondError(w, err, "Parâmetro de período inválido")
		return
	}

	weekly, err := analyticsService.WeeklyCreatedVsCompleted(r.Context(), uid, time.Now(), weeks)
	if err != nil {
		respondError(w, err, "Erro ao calcular dados semanais")
		return
	}

	respondData(w, weekly)
}

// CategoryBreakdownHandler agrupa as tarefas da janela por categoria
func CategoryBreakdownHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	days, err := parsePeriodParam(r, "days", analytics.DefaultTrendDays)
	if err != nil {
		respondError(w, err, "Parâmetro de período inválido")
		return
	}

	breakdown, err := analyticsService.CategoryBreakdown(r.Context(), uid, time.Now(), days)
	if err != nil {
		respondError(w, err, "Erro ao agrupar por categoria")
		return
	}

	respondData(w, breakdown)
}

// PriorityBreakdownHandler agrupa as tarefas da janela por prioridade
func PriorityBreakdownHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	days, err := parsePeriodParam(r, "days", analytics.DefaultTrendDays)
	if err != nil {
		respondError(w, err, "Parâmetro de período inválido")
		return
	}

	breakdown, err := analyticsService.PriorityBreakdown(r.Context(), uid, time.Now(), days)
	if err != nil {
		respondError(w, err, "Erro ao agrupar por prioridade")
		return
	}

	respondData(w, breakdown)
}

// KPIsHandler devolve os indicadores numéricos do painel
func KPIsHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	now := time.Now()
	var kpis analytics.KPIs

	if kpis.CurrentStreak, err = analyticsService.CurrentStreak(ctx, uid, now); err != nil {
		respondError(w, err, "Erro ao calcular streak")
		return
	}
	if kpis.AverageCompletionTime, err = analyticsService.AverageCompletionTime(ctx, uid, now, analytics.DefaultTrendDays); err != nil {
		respondError(w, err, "Erro ao calcular tempo médio de conclusão")
		return
	}
	if kpis.OverdueCount, err = analyticsService.OverdueCount(ctx, uid, now); err != nil {
		respondError(w, err, "Erro ao contar tarefas atrasadas")
		return
	}
	if kpis.MonthlyCompletionRate, err = analyticsService.MonthlyCompletionRate(ctx, uid, now); err != nil {
		respondError(w, err, "Erro ao calcular taxa mensal")
		return
	}
	if kpis.AverageTasksPerDay, err = analyticsService.AverageTasksPerDay(ctx, uid, now, analytics.DefaultTrendDays); err != nil {
		respondError(w, err, "Erro ao calcular média diária")
		return
	}

	respondData(w, kpis)
}

// TodayStatsHandler resume as tarefas agendadas para hoje
func TodayStatsHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	stats, err := analyticsService.TodayStats(r.Context(), uid, time.Now())
	if err != nil {
		respondError(w, err, "Erro ao resumir o dia")
		return
	}

	respondData(w, stats)
}

// ProductivityScoreHandler devolve a pontuação de produtividade do dia
func ProductivityScoreHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	score, err := analyticsService.ProductivityScore(r.Context(), uid, time.Now())
	if err != nil {
		respondError(w, err, "Erro ao calcular pontuação de produtividade")
		return
	}

	respondData(w, map[string]int{"score": score})
}

// MonthlyTrendHandler devolve a tendência mensal de conclusão
func MonthlyTrendHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	months, err := parsePeriodParam(r, "months", analytics.DefaultTrendMonths)
	if err != nil {
		respondError(w, err, "Parâmetro de período inválido")
		return
	}

	trend, err := analyticsService.MonthlyTrend(r.Context(), uid, time.Now(), months)
	if err != nil {
		respondError(w, err, "Erro ao calcular tendência mensal")
		return
	}

	respondData(w, trend)
}

// ProductivityInsightsHandler aponta os padrões de produtividade do usuário
func ProductivityInsightsHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	insights, err := analyticsService.ProductivityInsights(r.Context(), uid, time.Now())
	if err != nil {
		respondError(w, err, "Erro ao calcular insights de produtividade")
		return
	}

	respondData(w, insights)
}

// BadgesHandler devolve o catálogo de conquistas disponíveis
func BadgesHandler(w http.ResponseWriter, r *http.Request) {
	respondData(w, rewards.Badges())
}

// ReportPreviewHandler devolve as tarefas filtradas e o resumo do relatório
func ReportPreviewHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	filter, err := parseReportFilter(r)
	if err != nil {
		respondError(w, err, "Filtros de relatório inválidos")
		return
	}

	now := time.Now()
	tasks, err := reportsService.GetFilteredTasks(r.Context(), uid, filter)
	if err != nil {
		respondError(w, err, "Erro ao filtrar tarefas do relatório")
		return
	}

	summary, err := reportsService.GetReportSummary(r.Context(), uid, now, filter)
	if err != nil {
		respondError(w, err, "Erro ao resumir relatório")
		return
	}

	respondData(w, map[string]interface{}{
		"tasks":   tasks,
		"summary": summary,
	})
}

// ExportCSVHandler exporta o relatório filtrado como arquivo CSV
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	filter, err := parseReportFilter(r)
	if err != nil {
		respondError(w, err, "Filtros de relatório inválidos")
		return
	}

	now := time.Now()
	content, err := reportsService.GenerateCSV(r.Context(), uid, now, filter)
	if err != nil {
		respondError(w, err, "Erro ao gerar CSV do relatório")
		return
	}

	filename := fmt.Sprintf("relatorio-tarefas-%s.csv", now.Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))

	utilities.LogInfo("Relatório CSV exportado para UID: %s", uid)
}

// ExportPDFHandler exporta o documento HTML do relatório, pronto para a
// conversão em PDF no cliente
func ExportPDFHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	filter, err := parseReportFilter(r)
	if err != nil {
		respondError(w, err, "Filtros de relatório inválidos")
		return
	}

	content, err := reportsService.GeneratePDF(r.Context(), uid, time.Now(), filter)
	if err != nil {
		respondError(w, err, "Erro ao gerar documento do relatório")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))

	utilities.LogInfo("Relatório HTML exportado para UID: %s", uid)
}
