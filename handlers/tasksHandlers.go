package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"planeja-backend/models"
	"planeja-backend/rewards"
	"planeja-backend/utilities"

	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

type taskInput struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ScheduledDate    string   `json:"scheduled_date"`
	DueTime          string   `json:"due_time"`
	Priority         string   `json:"priority"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}

// validateTaskInput valida os campos do corpo antes de tocar no banco
func validateTaskInput(input taskInput) (time.Time, error) {
	verr := models.NewValidationError()

	if strings.TrimSpace(input.Title) == "" {
		verr.Add("title", "título é obrigatório")
	}
	if !models.ValidPriorities[models.TaskPriority(input.Priority)] {
		verr.Add("priority", "prioridade inválida: "+input.Priority)
	}
	if !models.ValidCategories[models.TaskCategory(input.Category)] {
		verr.Add("category", "categoria inválida: "+input.Category)
	}
	if input.DueTime != "" && !models.HoraLimiteRegex.MatchString(input.DueTime) {
		verr.Add("due_time", "hora limite inválida, use o formato HH:MM")
	}
	if input.EstimatedMinutes < 0 || input.EstimatedMinutes > 1440 {
		verr.Add("estimated_minutes", "estimativa não pode ser negativa nem exceder 1440 minutos")
	}

	scheduledDate, err := time.Parse("2006-01-02", input.ScheduledDate)
	if err != nil {
		verr.Add("scheduled_date", "data inválida, use o formato YYYY-MM-DD")
	}

	if err := verr.Err(); err != nil {
		return time.Time{}, err
	}
	return scheduledDate, nil
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// taskIDFromRoute lê e valida o {task_id} da rota
func taskIDFromRoute(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["task_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr := models.NewValidationError()
		verr.Add("task_id", "identificador inválido: "+raw)
		return 0, verr
	}
	return id, nil
}

// CreateTaskHandler cria uma nova tarefa para o usuário autenticado
func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de nova tarefa")

	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	var input taskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON da tarefa")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scheduledDate, err := validateTaskInput(input)
	if err != nil {
		respondError(w, err, "Validação da nova tarefa falhou")
		return
	}

	if input.Tags == nil {
		input.Tags = []string{}
	}

	utilities.LogDebug("Inserindo nova tarefa no banco de dados")
	query := `INSERT INTO tarefas (usuario_uid, title, descricao, data_agendada, hora_limite,
              status, prioridade, categoria, tags, minutos_estimados, created_at)
              VALUES ($1, $2, $3, $4, NULLIF($5, ''), 'pending', $6, $7, $8, NULLIF($9, 0), NOW())
              RETURNING id`
	var id int64
	err = db.QueryRow(query,
		uid,
		input.Title,
		input.Description,
		scheduledDate,
		input.DueTime,
		input.Priority,
		input.Category,
		pq.Array(input.Tags),
		input.EstimatedMinutes,
	).Scan(&id)
	if err != nil {
		utilities.LogError(err, "Erro ao inserir tarefa no banco de dados")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefa criada com sucesso: %s (ID: %d)", input.Title, id)
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    id,
		"quote": rewards.RandomQuote(rewards.ActionTaskCreated),
	})
}

// ListTasksHandler lista as tarefas do usuário com filtros opcionais
func ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	filter, err := parseReportFilter(r)
	if err != nil {
		respondError(w, err, "Filtros inválidos na listagem de tarefas")
		return
	}

	tasks, err := taskStore.Find(r.Context(), uid, filter)
	if err != nil {
		respondError(w, err, "Erro ao buscar tarefas no banco de dados")
		return
	}

	utilities.LogInfo("Tarefas listadas com sucesso - total: %d", len(tasks))
	respondJSON(w, http.StatusOK, tasks)
}

// getTaskByID busca uma tarefa do usuário pelo id, incluindo removidas
func getTaskByID(uid string, id int64) (*models.Task, error) {
	query := `SELECT id, usuario_uid, title, descricao, data_agendada, hora_limite,
              status, prioridade, categoria, tags, minutos_estimados,
              created_at, completed_at, deleted_at
              FROM tarefas WHERE id = $1 AND usuario_uid = $2`

	var task models.Task
	var descricao, horaLimite sql.NullString
	var minutosEstimados sql.NullInt64
	var completedAt, deletedAt sql.NullTime
	var tags pq.StringArray

	err := db.QueryRow(query, id, uid).Scan(
		&task.ID, &task.UserUID, &task.Title, &descricao, &task.ScheduledDate, &horaLimite,
		&task.Status, &task.Priority, &task.Category, &tags, &minutosEstimados,
		&task.CreatedAt, &completedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = descricao.String
	task.DueTime = horaLimite.String
	task.EstimatedMinutes = int(minutosEstimados.Int64)
	task.Tags = []string(tags)
	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		task.DeletedAt = &t
	}
	return &task, nil
}

// GetTaskHandler retorna uma tarefa específica do usuário
func GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	id, err := taskIDFromRoute(r)
	if err != nil {
		respondError(w, err, "ID de tarefa inválido")
		return
	}

	task, err := getTaskByID(uid, id)
	if err == sql.ErrNoRows {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefa")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// UpdateTaskHandler atualiza os campos editáveis de uma tarefa
func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando atualização de tarefa")

	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	id, err := taskIDFromRoute(r)
	if err != nil {
		respondError(w, err, "ID de tarefa inválido")
		return
	}

	var updates struct {
		Title            *string   `json:"title"`
		Description      *string   `json:"description"`
		ScheduledDate    *string   `json:"scheduled_date"`
		DueTime          *string   `json:"due_time"`
		Priority         *string   `json:"priority"`
		Category         *string   `json:"category"`
		Tags             *[]string `json:"tags"`
		EstimatedMinutes *int      `json:"estimated_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utilities.LogDebug("Construindo query de atualização para tarefa %d", id)
	// Construir query dinâmica
	query := "UPDATE tarefas SET "
	params := []interface{}{}
	paramCount := 1

	if updates.Title != nil {
		query += fmt.Sprintf("title = $%d, ", paramCount)
		params = append(params, *updates.Title)
		paramCount++
	}

	if updates.Description != nil {
		query += fmt.Sprintf("descricao = $%d, ", paramCount)
		params = append(params, *updates.Description)
		paramCount++
	}

	if updates.ScheduledDate != nil {
		scheduledDate, parseErr := time.Parse("2006-01-02", *updates.ScheduledDate)
		if parseErr != nil {
			verr := models.NewValidationError()
			verr.Add("scheduled_date", "data inválida, use o formato YYYY-MM-DD")
			respondError(w, verr, "Validação da atualização falhou")
			return
		}
		query += fmt.Sprintf("data_agendada = $%d, ", paramCount)
		params = append(params, scheduledDate)
		paramCount++
	}

	if updates.DueTime != nil {
		if *updates.DueTime != "" && !models.HoraLimiteRegex.MatchString(*updates.DueTime) {
			verr := models.NewValidationError()
			verr.Add("due_time", "hora limite inválida, use o formato HH:MM")
			respondError(w, verr, "Validação da atualização falhou")
			return
		}
		query += fmt.Sprintf("hora_limite = NULLIF($%d, ''), ", paramCount)
		params = append(params, *updates.DueTime)
		paramCount++
	}

	if updates.Priority != nil {
		if !models.ValidPriorities[models.TaskPriority(*updates.Priority)] {
			verr := models.NewValidationError()
			verr.Add("priority", "prioridade inválida: "+*updates.Priority)
			respondError(w, verr, "Validação da atualização falhou")
			return
		}
		query += fmt.Sprintf("prioridade = $%d, ", paramCount)
		params = append(params, *updates.Priority)
		paramCount++
	}

	if updates.Category != nil {
		if !models.ValidCategories[models.TaskCategory(*updates.Category)] {
			verr := models.NewValidationError()
			verr.Add("category", "categoria inválida: "+*updates.Category)
			respondError(w, verr, "Validação da atualização falhou")
			return
		}
		query += fmt.Sprintf("categoria = $%d, ", paramCount)
		params = append(params, *updates.Category)
		paramCount++
	}

	if updates.Tags != nil {
		query += fmt.Sprintf("tags = $%d, ", paramCount)
		params = append(params, pq.Array(*updates.Tags))
		paramCount++
	}

	if updates.EstimatedMinutes != nil {
		query += fmt.Sprintf("minutos_estimados = NULLIF($%d, 0), ", paramCount)
		params = append(params, *updates.EstimatedMinutes)
		paramCount++
	}

	if len(params) == 0 {
		http.Error(w, "Nenhum campo para atualizar", http.StatusBadRequest)
		return
	}

	// Remover a vírgula final e adicionar a cláusula WHERE
	query = strings.TrimSuffix(query, ", ")
	query += fmt.Sprintf(" WHERE id = $%d AND usuario_uid = $%d AND deleted_at IS NULL", paramCount, paramCount+1)
	params = append(params, id, uid)

	result, err := db.Exec(query, params...)
	if err != nil {
		utilities.LogError(err, "Erro ao atualizar tarefa no banco de dados")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}

	utilities.LogInfo("Tarefa atualizada com sucesso: %d", id)
	w.WriteHeader(http.StatusNoContent)
}

// CompleteTaskHandler marca a tarefa como concluída e devolve o retorno
// motivacional: frase, streak atualizado e conquistas recém-cruzadas.
func CompleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	id, err := taskIDFromRoute(r)
	if err != nil {
		respondError(w, err, "ID de tarefa inválido")
		return
	}

	now := time.Now()
	result, err := db.Exec(
		`UPDATE tarefas SET status = 'completed', completed_at = $1
         WHERE id = $2 AND usuario_uid = $3 AND deleted_at IS NULL`,
		now, id, uid,
	)
	if err != nil {
		utilities.LogError(err, "Erro ao concluir tarefa")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}

	// Estatísticas para a detecção de conquistas
	var totalCompleted int
	err = db.QueryRow(
		`SELECT COUNT(*) FROM tarefas
         WHERE usuario_uid = $1 AND status = 'completed' AND deleted_at IS NULL`,
		uid,
	).Scan(&totalCompleted)
	if err != nil {
		utilities.LogError(err, "Erro ao contar tarefas concluídas")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	streak, err := analyticsService.CurrentStreak(r.Context(), uid, now)
	if err != nil {
		respondError(w, err, "Erro ao calcular streak")
		return
	}

	stats := rewards.UserStats{TotalCompleted: totalCompleted, CurrentStreak: streak}

	utilities.LogInfo("Tarefa %d concluída - total: %d, streak: %d", id, totalCompleted, streak)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"quote":            rewards.RandomQuote(rewards.ActionTaskCompleted),
		"currentStreak":    streak,
		"totalCompleted":   totalCompleted,
		"newAchievements":  rewards.CheckAchievements(stats),
		"streakMessage":    rewards.StreakMessage(streak),
		"milestoneMessage": rewards.MilestoneMessage(totalCompleted),
	})
}

// CancelTaskHandler marca a tarefa como cancelada
func CancelTaskHandler(w http.ResponseWriter, r *http.Request) {
	changeTaskStatus(w, r, models.StatusCancelled, rewards.ActionStatusChange)
}

// ResetTaskHandler devolve a tarefa para pendente, limpando a conclusão
func ResetTaskHandler(w http.ResponseWriter, r *http.Request) {
	changeTaskStatus(w, r, models.StatusPending, rewards.ActionTaskReset)
}

// changeTaskStatus aplica a transição de status. completed_at é limpo em
// qualquer transição para fora de completed; o campo só existe junto com o
// status concluído.
func changeTaskStatus(w http.ResponseWriter, r *http.Request, status models.TaskStatus, action string) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	id, err := taskIDFromRoute(r)
	if err != nil {
		respondError(w, err, "ID de tarefa inválido")
		return
	}

	result, err := db.Exec(
		`UPDATE tarefas SET status = $1, completed_at = NULL
         WHERE id = $2 AND usuario_uid = $3 AND deleted_at IS NULL`,
		string(status), id, uid,
	)
	if err != nil {
		utilities.LogError(err, "Erro ao alterar status da tarefa")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}

	utilities.LogInfo("Status da tarefa %d alterado para %s", id, status)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"quote": rewards.RandomQuote(action),
	})
}

// DeleteTaskHandler remove a tarefa por soft delete
func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	id, err := taskIDFromRoute(r)
	if err != nil {
		respondError(w, err, "ID de tarefa inválido")
		return
	}

	result, err := db.Exec(
		`UPDATE tarefas SET deleted_at = NOW()
         WHERE id = $1 AND usuario_uid = $2 AND deleted_at IS NULL`,
		id, uid,
	)
	if err != nil {
		utilities.LogError(err, "Erro ao excluir tarefa do banco de dados")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}

	utilities.LogInfo("Tarefa excluída com sucesso: %d", id)
	w.WriteHeader(http.StatusNoContent)
}

// RestoreTaskHandler restaura uma tarefa removida por soft delete
func RestoreTaskHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	id, err := taskIDFromRoute(r)
	if err != nil {
		respondError(w, err, "ID de tarefa inválido")
		return
	}

	result, err := db.Exec(
		`UPDATE tarefas SET deleted_at = NULL
         WHERE id = $1 AND usuario_uid = $2 AND deleted_at IS NOT NULL`,
		id, uid,
	)
	if err != nil {
		utilities.LogError(err, "Erro ao restaurar tarefa")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		http.Error(w, "Tarefa não encontrada ou não removida", http.StatusNotFound)
		return
	}

	utilities.LogInfo("Tarefa restaurada com sucesso: %d", id)
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Tarefa restaurada com sucesso",
	})
}

// DeletedTasksHandler lista as tarefas removidas por soft delete
func DeletedTasksHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	tasks, err := taskStore.FindDeleted(r.Context(), uid)
	if err != nil {
		respondError(w, err, "Erro ao listar tarefas removidas")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

// TodayTasksHandler lista as tarefas agendadas para hoje
func TodayTasksHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	tasks, err := taskStore.Find(r.Context(), uid, models.TaskFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		respondError(w, err, "Erro ao listar tarefas de hoje")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

// OverdueTasksHandler lista as tarefas pendentes com o vencimento vencido
func OverdueTasksHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Não autorizado", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)

	tasks, err := taskStore.Find(r.Context(), uid, models.TaskFilter{
		Status: string(models.StatusPending),
		DateTo: &end,
	})
	if err != nil {
		respondError(w, err, "Erro ao listar tarefas atrasadas")
		return
	}

	overdue := []models.Task{}
	for _, task := range tasks {
		if task.IsOverdue(now) {
			overdue = append(overdue, task)
		}
	}

	respondJSON(w, http.StatusOK, overdue)
}
