package models

import "time"

// FilterAll desliga o filtro de status/prioridade quando informado
const FilterAll = "all"

// TaskFilter descreve os filtros aceitos pelas consultas de relatório.
// DateFrom/DateTo filtram pela data agendada, inclusivos nas duas pontas.
type TaskFilter struct {
	DateFrom       *time.Time
	DateTo         *time.Time
	Status         string
	Category       string
	Priority       string
	Tags           []string
	IncludeDeleted bool
}

// Validate rejeita intervalos não cronológicos e valores fora dos enums
// antes de qualquer consulta ser montada.
func (f TaskFilter) Validate() error {
	verr := NewValidationError()

	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		verr.Add("date_to", "data final anterior à data inicial")
	}
	if f.Status != "" && f.Status != FilterAll && !ValidStatuses[TaskStatus(f.Status)] {
		verr.Add("status", "status desconhecido: "+f.Status)
	}
	if f.Priority != "" && f.Priority != FilterAll && !ValidPriorities[TaskPriority(f.Priority)] {
		verr.Add("priority", "prioridade desconhecida: "+f.Priority)
	}
	if f.Category != "" && f.Category != FilterAll && !ValidCategories[TaskCategory(f.Category)] {
		verr.Add("category", "categoria desconhecida: "+f.Category)
	}

	return verr.Err()
}

// HasStatus indica se o filtro de status está ativo
func (f TaskFilter) HasStatus() bool {
	return f.Status != "" && f.Status != FilterAll
}

// HasPriority indica se o filtro de prioridade está ativo
func (f TaskFilter) HasPriority() bool {
	return f.Priority != "" && f.Priority != FilterAll
}

// HasCategory indica se o filtro de categoria está ativo
func (f TaskFilter) HasCategory() bool {
	return f.Category != "" && f.Category != FilterAll
}
