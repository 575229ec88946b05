package main

import (
	"log"
	"net/http"
	"os"
	"planeja-backend/handlers"
	"planeja-backend/utilities"
	"strings"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func LoadRoutes() {
	r := mux.NewRouter()

	// Aplicar o middleware de logging global em todas as rotas
	r.Use(handlers.LoggingMiddleware)

	// --- Rotas de Autenticação e Públicas ---
	r.HandleFunc("/auth/register", handlers.RegisterHandler).Methods("POST")
	r.HandleFunc("/auth/finalize-login", handlers.FinalizeFirebaseLoginHandler).Methods("POST")
	r.HandleFunc("/auth/logout", handlers.AuthMiddleware(handlers.LogoutHandler)).Methods("POST")

	// --- Rotas de Usuário (autenticado, referindo-se ao próprio usuário logado) ---
	r.HandleFunc("/user/info", handlers.AuthMiddleware(handlers.UserHandler)).Methods("GET")
	r.HandleFunc("/user/update", handlers.AuthMiddleware(handlers.UpdateUserHandler)).Methods("PUT")

	// --- Rotas de Tarefas (protegidas) ---
	r.HandleFunc("/task/create", handlers.AuthMiddleware(handlers.CreateTaskHandler)).Methods("POST")
	r.HandleFunc("/task/list", handlers.AuthMiddleware(handlers.ListTasksHandler)).Methods("GET")
	r.HandleFunc("/task/today", handlers.AuthMiddleware(handlers.TodayTasksHandler)).Methods("GET")
	r.HandleFunc("/task/overdue", handlers.AuthMiddleware(handlers.OverdueTasksHandler)).Methods("GET")
	r.HandleFunc("/task/deleted", handlers.AuthMiddleware(handlers.DeletedTasksHandler)).Methods("GET")
	r.HandleFunc("/task/info/{task_id}", handlers.AuthMiddleware(handlers.GetTaskHandler)).Methods("GET")
	r.HandleFunc("/task/update/{task_id}", handlers.AuthMiddleware(handlers.UpdateTaskHandler)).Methods("PUT")
	r.HandleFunc("/task/complete/{task_id}", handlers.AuthMiddleware(handlers.CompleteTaskHandler)).Methods("PATCH")
	r.HandleFunc("/task/cancel/{task_id}", handlers.AuthMiddleware(handlers.CancelTaskHandler)).Methods("PATCH")
	r.HandleFunc("/task/reset/{task_id}", handlers.AuthMiddleware(handlers.ResetTaskHandler)).Methods("PATCH")
	r.HandleFunc("/task/delete/{task_id}", handlers.AuthMiddleware(handlers.DeleteTaskHandler)).Methods("DELETE")
	r.HandleFunc("/task/restore/{task_id}", handlers.AuthMiddleware(handlers.RestoreTaskHandler)).Methods("PATCH")

	// --- Rotas do Painel de Análises (protegidas) ---
	r.HandleFunc("/dashboard/data", handlers.AuthMiddleware(handlers.DashboardDataHandler)).Methods("GET")
	r.HandleFunc("/dashboard/completion-rate", handlers.AuthMiddleware(handlers.CompletionRateHandler)).Methods("GET")
	r.HandleFunc("/dashboard/weekly", handlers.AuthMiddleware(handlers.WeeklyDataHandler)).Methods("GET")
	r.HandleFunc("/dashboard/categories", handlers.AuthMiddleware(handlers.CategoryBreakdownHandler)).Methods("GET")
	r.HandleFunc("/dashboard/priorities", handlers.AuthMiddleware(handlers.PriorityBreakdownHandler)).Methods("GET")
	r.HandleFunc("/dashboard/kpis", handlers.AuthMiddleware(handlers.KPIsHandler)).Methods("GET")
	r.HandleFunc("/dashboard/today", handlers.AuthMiddleware(handlers.TodayStatsHandler)).Methods("GET")
	r.HandleFunc("/dashboard/productivity", handlers.AuthMiddleware(handlers.ProductivityScoreHandler)).Methods("GET")
	r.HandleFunc("/dashboard/monthly-trend", handlers.AuthMiddleware(handlers.MonthlyTrendHandler)).Methods("GET")
	r.HandleFunc("/dashboard/insights", handlers.AuthMiddleware(handlers.ProductivityInsightsHandler)).Methods("GET")

	// --- Rotas de Conquistas e Relatórios (protegidas) ---
	r.HandleFunc("/rewards/badges", handlers.AuthMiddleware(handlers.BadgesHandler)).Methods("GET")
	r.HandleFunc("/reports/preview", handlers.AuthMiddleware(handlers.ReportPreviewHandler)).Methods("GET")
	r.HandleFunc("/reports/export/csv", handlers.AuthMiddleware(handlers.ExportCSVHandler)).Methods("GET")
	r.HandleFunc("/reports/export/pdf", handlers.AuthMiddleware(handlers.ExportPDFHandler)).Methods("GET")

	// Configuração do CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS não definida, permitindo todas as origens ('*'). Defina para maior segurança em produção.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)
	utilities.LogInfo("Configurando CORS com origens permitidas: %v", allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Servidor iniciado na porta %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
