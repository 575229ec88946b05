package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"planeja-backend/models"

	"github.com/lib/pq"
)

const taskColumns = `id, usuario_uid, title, descricao, data_agendada, hora_limite,
       status, prioridade, categoria, tags, minutos_estimados,
       created_at, completed_at, deleted_at`

// orderByDatePriority ordena por data agendada e prioridade decrescentes,
// com created_at como desempate estável.
const orderByDatePriority = ` ORDER BY data_agendada DESC,
       CASE prioridade WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC,
       created_at DESC`

// TaskStore concentra as consultas de leitura sobre a tabela de tarefas.
// Toda consulta é limitada a um único usuário; o UID vem sempre do token.
type TaskStore struct {
	DB *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{DB: db}
}

// Find busca as tarefas do usuário aplicando o filtro informado. Tarefas
// removidas (soft delete) ficam de fora, a menos que o filtro peça o
// contrário. Resultado vazio é uma lista vazia, nunca um erro.
func (s *TaskStore) Find(ctx context.Context, userUID string, filter models.TaskFilter) ([]models.Task, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := `SELECT ` + taskColumns + ` FROM tarefas WHERE usuario_uid = $1`
	params := []interface{}{userUID}
	paramCount := 2

	if !filter.IncludeDeleted {
		query += " AND deleted_at IS NULL"
	}

	// Adicionar filtros
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND data_agendada >= $%d", paramCount)
		params = append(params, *filter.DateFrom)
		paramCount++
	}

	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND data_agendada <= $%d", paramCount)
		params = append(params, *filter.DateTo)
		paramCount++
	}

	if filter.HasStatus() {
		query += fmt.Sprintf(" AND status = $%d", paramCount)
		params = append(params, filter.Status)
		paramCount++
	}

	if filter.HasCategory() {
		query += fmt.Sprintf(" AND categoria = $%d", paramCount)
		params = append(params, filter.Category)
		paramCount++
	}

	if filter.HasPriority() {
		query += fmt.Sprintf(" AND prioridade = $%d", paramCount)
		params = append(params, filter.Priority)
		paramCount++
	}

	// Filtro de tags: basta conter uma das tags informadas (overlap)
	if len(filter.Tags) > 0 {
		query += fmt.Sprintf(" AND tags && $%d", paramCount)
		params = append(params, pq.Array(filter.Tags))
		paramCount++
	}

	query += orderByDatePriority

	return s.queryTasks(ctx, "tarefas.find", query, params...)
}

// FindTouched busca tarefas criadas ou concluídas dentro do intervalo.
// Alimenta o gráfico semanal, onde criação e conclusão caem em semanas
// independentes.
func (s *TaskStore) FindTouched(ctx context.Context, userUID string, from, to time.Time) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tarefas
       WHERE usuario_uid = $1 AND deleted_at IS NULL
         AND ((created_at >= $2 AND created_at <= $3)
           OR (completed_at >= $2 AND completed_at <= $3))`

	return s.queryTasks(ctx, "tarefas.find_touched", query, userUID, from, to)
}

// FindDeleted lista as tarefas removidas por soft delete, mais recentes antes
func (s *TaskStore) FindDeleted(ctx context.Context, userUID string) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tarefas
       WHERE usuario_uid = $1 AND deleted_at IS NOT NULL
       ORDER BY deleted_at DESC`

	return s.queryTasks(ctx, "tarefas.find_deleted", query, userUID)
}

func (s *TaskStore) queryTasks(ctx context.Context, op, query string, params ...interface{}) ([]models.Task, error) {
	rows, err := s.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, &models.StoreError{Op: op, Err: err}
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		var descricao, horaLimite sql.NullString
		var minutosEstimados sql.NullInt64
		var completedAt, deletedAt sql.NullTime
		var tags pq.StringArray

		err := rows.Scan(
			&task.ID, &task.UserUID, &task.Title, &descricao, &task.ScheduledDate, &horaLimite,
			&task.Status, &task.Priority, &task.Category, &tags, &minutosEstimados,
			&task.CreatedAt, &completedAt, &deletedAt,
		)
		if err != nil {
			return nil, &models.StoreError{Op: op, Err: err}
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

		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: op, Err: err}
	}

	return tasks, nil
}
