package reports

import (
	"html/template"
	"strings"
	"time"

	"planeja-backend/models"
)

// reportTemplate é o documento autocontido consumido pelo renderizador de
// PDF. Estilos embutidos, sem recursos externos.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Task Report</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
    .header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 20px; margin-bottom: 30px; }
    .summary { display: flex; justify-content: space-between; margin-bottom: 30px; flex-wrap: wrap; }
    .summary-item { text-align: center; padding: 15px; background: #f8f9fa; border-radius: 8px; min-width: 120px; margin: 5px; }
    .summary-number { font-size: 24px; font-weight: bold; color: #007bff; }
    .summary-label { font-size: 12px; color: #666; margin-top: 5px; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; font-size: 12px; }
    th { background-color: #f8f9fa; font-weight: bold; }
    .status-completed { color: #28a745; }
    .status-pending { color: #ffc107; }
    .status-cancelled { color: #dc3545; }
    .priority-high { color: #dc3545; }
    .priority-medium { color: #ffc107; }
    .priority-low { color: #28a745; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Task Report</h1>
    <p>Generated on {{.GeneratedAt}}</p>
    <p>Date Range: {{.DateRange}}</p>
  </div>

  <div class="summary">
    <div class="summary-item">
      <div class="summary-number">{{.Total}}</div>
      <div class="summary-label">Total Tasks</div>
    </div>
    <div class="summary-item">
      <div class="summary-number">{{.Completed}}</div>
      <div class="summary-label">Completed</div>
    </div>
    <div class="summary-item">
      <div class="summary-number">{{.Pending}}</div>
      <div class="summary-label">Pending</div>
    </div>
    <div class="summary-item">
      <div class="summary-number">{{.Cancelled}}</div>
      <div class="summary-label">Cancelled</div>
    </div>
    <div class="summary-item">
      <div class="summary-number">{{.Overdue}}</div>
      <div class="summary-label">Overdue</div>
    </div>
  </div>

  <table>
    <thead>
      <tr>
        <th>Title</th>
        <th>Date</th>
        <th>Status</th>
        <th>Priority</th>
        <th>Category</th>
        <th>Due Time</th>
        <th>Tags</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr>
        <td>{{.Title}}</td>
        <td>{{.Date}}</td>
        <td class="status-{{.StatusClass}}">{{.Status}}</td>
        <td class="priority-{{.PriorityClass}}">{{.Priority}}</td>
        <td>{{.Category}}</td>
        <td>{{.DueTime}}</td>
        <td>{{.Tags}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

type reportRow struct {
	Title         string
	Date          string
	Status        string
	StatusClass   string
	Priority      string
	PriorityClass string
	Category      string
	DueTime       string
	Tags          string
}

type reportData struct {
	GeneratedAt string
	DateRange   string
	Total       int
	Completed   int
	Pending     int
	Cancelled   int
	Overdue     int
	Rows        []reportRow
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func renderReportHTML(tasks []models.Task, filter models.TaskFilter, now time.Time) (string, error) {
	data := reportData{
		GeneratedAt: now.Format("January 02, 2006 at 15:04"),
		DateRange:   "All Time",
		Total:       len(tasks),
	}

	if filter.DateFrom != nil && filter.DateTo != nil {
		data.DateRange = filter.DateFrom.Format("Jan 02, 2006") + " - " + filter.DateTo.Format("Jan 02, 2006")
	}

	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			data.Completed++
		case models.StatusPending:
			data.Pending++
		case models.StatusCancelled:
			data.Cancelled++
		}
		if task.IsOverdue(now) {
			data.Overdue++
		}

		dueTime := task.DueTime
		if dueTime == "" {
			dueTime = "-"
		}
		tags := strings.Join(task.Tags, ", ")
		if tags == "" {
			tags = "-"
		}

		data.Rows = append(data.Rows, reportRow{
			Title:         task.Title,
			Date:          task.ScheduledDate.Format("Jan 02, 2006"),
			Status:        capitalize(string(task.Status)),
			StatusClass:   string(task.Status),
			Priority:      capitalize(string(task.Priority)),
			PriorityClass: string(task.Priority),
			Category:      capitalize(string(task.Category)),
			DueTime:       dueTime,
			Tags:          tags,
		})
	}

	var buf strings.Builder
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
