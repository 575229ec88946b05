package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"planeja-backend/analytics"
	"planeja-backend/database"
	"planeja-backend/models"
	"planeja-backend/reports"
	"planeja-backend/utilities"
)

var (
	db               *sql.DB
	taskStore        *database.TaskStore
	analyticsService *analytics.Service
	reportsService   *reports.Service
)

// InitDB inicializa a conexão com o banco de dados e os serviços que
// consultam as tarefas
func InitDB(conn *sql.DB) {
	utilities.LogInfo("Inicializando conexão com o banco de dados")
	db = conn
	taskStore = database.NewTaskStore(conn)
	analyticsService = analytics.NewService(taskStore)
	reportsService = reports.NewService(taskStore)
}

// userUIDFromContext extrai o UID colocado no contexto pelo AuthMiddleware
func userUIDFromContext(r *http.Request) (string, error) {
	uid, ok := r.Context().Value("userUID").(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("uid ausente no contexto da requisição")
	}
	return uid, nil
}

// respondJSON escreve a resposta JSON padrão
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError mapeia os tipos de erro do núcleo para códigos HTTP:
// ValidationError vira 400 com as mensagens por campo, o resto vira 500.
func respondError(w http.ResponseWriter, err error, context string) {
	utilities.LogError(err, context)

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": verr.Error(),
			"fields":  verr.Fields,
		})
		return
	}

	respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": "Erro interno do servidor",
	})
}

// parsePeriodParam lê um parâmetro numérico de período (days/weeks/months).
// Ausente vale o padrão; não numérico ou não positivo é rejeitado antes de
// qualquer consulta.
func parsePeriodParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		verr := models.NewValidationError()
		verr.Add(name, "deve ser um inteiro maior que zero")
		return 0, verr
	}
	return value, nil
}

// parseReportFilter monta o TaskFilter a partir dos parâmetros de query dos
// relatórios (from, to, status, category, priority, tags).
func parseReportFilter(r *http.Request) (models.TaskFilter, error) {
	query := r.URL.Query()
	verr := models.NewValidationError()
	filter := models.TaskFilter{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Priority: query.Get("priority"),
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			verr.Add("from", "data inválida, use o formato YYYY-MM-DD")
		} else {
			filter.DateFrom = &from
		}
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			verr.Add("to", "data inválida, use o formato YYYY-MM-DD")
		} else {
			filter.DateTo = &to
		}
	}

	if raw := query.Get("tags"); raw != "" {
		filter.Tags = splitTags(raw)
	}

	if err := verr.Err(); err != nil {
		return models.TaskFilter{}, err
	}
	if err := filter.Validate(); err != nil {
		return models.TaskFilter{}, err
	}
	return filter, nil
}
