package models

import (
	"testing"
	"time"
)

func TestFilterValidateAcceptsEmptyFilter(t *testing.T) {
	if err := (TaskFilter{}).Validate(); err != nil {
		t.Errorf("filtro vazio deveria ser válido, obtido %v", err)
	}
}

func TestFilterValidateRejectsReversedRange(t *testing.T) {
	from := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	err := (TaskFilter{DateFrom: &from, DateTo: &to}).Validate()
	if err == nil {
		t.Fatal("intervalo invertido deveria ser rejeitado")
	}

	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("esperado *ValidationError, obtido %T", err)
	}
	if _, ok := verr.Fields["date_to"]; !ok {
		t.Errorf("esperado erro no campo date_to, obtido %v", verr.Fields)
	}
}

func TestFilterValidateRejectsUnknownEnums(t *testing.T) {
	cases := []struct {
		name   string
		filter TaskFilter
		field  string
	}{
		{"status desconhecido", TaskFilter{Status: "done"}, "status"},
		{"prioridade desconhecida", TaskFilter{Priority: "urgent"}, "priority"},
		{"categoria desconhecida", TaskFilter{Category: "games"}, "category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Validate()
			if err == nil {
				t.Fatal("esperado erro de validação")
			}
			verr := err.(*ValidationError)
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Errorf("esperado erro no campo %s, obtido %v", tc.field, verr.Fields)
			}
		})
	}
}

func TestFilterAllDisablesFilter(t *testing.T) {
	filter := TaskFilter{Status: FilterAll, Priority: FilterAll, Category: FilterAll}

	if err := filter.Validate(); err != nil {
		t.Errorf("valor 'all' deveria ser aceito, obtido %v", err)
	}
	if filter.HasStatus() || filter.HasPriority() || filter.HasCategory() {
		t.Error("valor 'all' deveria desligar o filtro correspondente")
	}
}

func TestValidationErrorErrIsNilWhenEmpty(t *testing.T) {
	if err := NewValidationError().Err(); err != nil {
		t.Errorf("Err() sem campos deveria ser nil, obtido %v", err)
	}
}
