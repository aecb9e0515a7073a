package evaluation

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet = "Resultados"
	summarySheet = "Resumo"
)

var resultHeaders = []string{
	"Texto", "Região", "Cenário esperado", "Cenário obtido", "Método esperado",
	"Método obtido", "Total esperado", "Total obtido", "Confiança", "Resultado", "Erro",
}

// WriteXLSX writes the report as a spreadsheet with a results sheet and a
// summary sheet.
func (r *Report) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := f.SetSheetRow(resultsSheet, "A1", &resultHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	failStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F8D7DA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, res := range r.Results {
		row := i + 2
		outcome := "ok"
		if !res.Passed() {
			outcome = "falhou"
		}
		values := []any{
			res.Case.Text, res.Case.Region, res.Case.Scenario, res.GotScenario, res.Case.Method,
			res.GotMethod, res.Case.Total, res.GotTotal.String(), res.Confidence, outcome, res.Err,
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		if !res.Passed() {
			last, _ := excelize.CoordinatesToCellName(len(values), row)
			if err := f.SetCellStyle(resultsSheet, cell, last, failStyle); err != nil {
				return fmt.Errorf("failed to style row %d: %w", row, err)
			}
		}
	}

	summary := [][]any{
		{"Execução", r.RunID.String()},
		{"Início", r.StartedAt.Format("2006-01-02 15:04:05")},
		{"Casos", len(r.Results)},
		{"Aprovados", r.Passed()},
		{"Acurácia", r.Accuracy()},
	}
	for i, line := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &line); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
