package models

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError acumula mensagens por campo para parâmetros de consulta
// malformados. Nenhuma query é executada quando há erro de validação.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// Err retorna nil quando nenhum campo foi rejeitado.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(parts)
	return "parâmetros inválidos - " + strings.Join(parts, "; ")
}

// StoreError sinaliza falha de consulta no banco. Um resultado vazio nunca é
// um StoreError; zero legítimo e consulta falha não se confundem.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("erro na consulta %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
