package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"houseprice/internal/dataset"
	"houseprice/internal/domain"
	"houseprice/internal/features"
	"houseprice/internal/importance"
)

// chromeLines is the height taken by everything around the viewport.
const chromeLines = 12

const barWidth = 40

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTab     = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)
	bodyStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	groupStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder())
	activeButton  = buttonStyle.Copy().BorderForeground(lipgloss.Color("11")).Bold(true)
	priceStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Border(lipgloss.DoubleBorder()).Padding(0, 2)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// ageSlots maps year fields to the vector position holding the derived age.
var ageSlots = map[string]int{"YearBuilt": 8, "YearRemodAdd": 9, "GarageYrBlt": 27}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, pageCount)
	for p := page(0); p < pageCount; p++ {
		style := tabStyle
		if p == m.page {
			style = activeTab
		}
		tabs = append(tabs, style.Render(pageTitles[p]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderForm returns the prediction page and the line the cursor is on.
func (m Model) renderForm() (string, int) {
	var b strings.Builder
	line, cursorLine := 0, 0
	writeln := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
		line += strings.Count(s, "\n") + 1
	}

	if m.service.ModelErr() != nil {
		writeln(errorStyle.Render("Model not available. Cannot make predictions."))
		writeln("")
	}
	group := ""
	for i, f := range m.fields {
		if f.Group != group {
			if group != "" {
				writeln("")
			}
			group = f.Group
			writeln(groupStyle.Render(group))
		}
		marker, label := "  ", fmt.Sprintf("%-34s", f.Label)
		if i == m.cursor {
			marker, label = "> ", selectedStyle.Render(label)
			cursorLine = line
		}
		writeln(marker + label + " " + m.fieldValue(f))
	}
	writeln("")

	button := buttonStyle.Render("Predict House Price")
	if m.cursor == len(m.fields) {
		button = activeButton.Render("Predict House Price")
		cursorLine = line + 1
	}
	writeln(button)

	if m.predErr != nil {
		writeln(errorStyle.Render("An error occurred during prediction: " + m.predErr.Error()))
	}
	if m.result != nil {
		writeln(priceStyle.Render("Predicted House Price: " + m.result.Display()))
		writeln("")
		writeln(groupStyle.Render("Feature Impact on Price"))
		if m.impactErr != nil {
			writeln(warningStyle.Render("Feature impact unavailable: " + m.impactErr.Error()))
		} else {
			writeln(rankingCaption(m.impact))
			writeln(barChart(m.impact, barWidth))
		}
	}
	return b.String(), cursorLine
}

func (m Model) fieldValue(f features.Field) string {
	v := f.Value(&m.inputs)
	switch f.Kind {
	case features.KindChoice:
		return "‹ " + v + " ›"
	case features.KindSlider:
		total := int(f.Max - f.Min)
		n := min(max(int(f.Number(&m.inputs)-f.Min), 0), total)
		return fmt.Sprintf("%-4s %s%s", v, strings.Repeat("▮", n), strings.Repeat("▯", total-n))
	case features.KindYear:
		if slot, ok := ageSlots[f.Key]; ok {
			return fmt.Sprintf("%-6s (%d years)", v, int(m.vector[slot]))
		}
	}
	return v
}

func rankingCaption(r importance.Ranking) string {
	if r.Illustrative {
		return warningStyle.Render("Illustrative only: random values, not derived from the model.")
	}
	return infoStyle.Render("Importances reported by the model.")
}

// barChart draws a horizontal bar per item, scaled to the largest value.
func barChart(r importance.Ranking, width int) string {
	if len(r.Items) == 0 {
		return ""
	}
	top, labelWidth := 0.0, 0
	for _, it := range r.Items {
		top = math.Max(top, it.Value)
		labelWidth = max(labelWidth, len(it.Feature))
	}
	if top <= 0 {
		top = 1
	}
	lines := make([]string, len(r.Items))
	for i, it := range r.Items {
		n := int(math.Round(math.Max(it.Value, 0) / top * float64(width)))
		lines[i] = fmt.Sprintf("%-*s %s %.3f", labelWidth, it.Feature, barStyle.Render(strings.Repeat("█", n)), it.Value)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderOverview() string {
	var b strings.Builder
	b.WriteString(groupStyle.Render("Dataset Overview") + "\n\n")
	if m.overviewErr != nil || m.overview == nil {
		b.WriteString(warningStyle.Render("Dataset not available for overview."))
		if m.overviewErr != nil {
			b.WriteString("\n" + hintStyle.Render(m.overviewErr.Error()))
		}
		return b.String()
	}
	ov := m.overview
	fmt.Fprintf(&b, "%d rows, %d columns\n\n", ov.Rows, len(ov.Columns))

	b.WriteString(groupStyle.Render("First rows") + "\n")
	b.WriteString(headTable(ov.Columns, ov.Head) + "\n\n")

	b.WriteString(groupStyle.Render("Dataset Summary") + "\n")
	b.WriteString(describeTable(ov.Summary) + "\n\n")

	b.WriteString(groupStyle.Render("Column Information") + "\n")
	b.WriteString(dtypesTable(ov.DTypes) + "\n\n")

	b.WriteString(groupStyle.Render("Sale Price Distribution") + "\n")
	if ov.Histogram == nil {
		b.WriteString(warningStyle.Render("No histogram: the target column is missing or not numeric."))
	} else {
		b.WriteString(histogramChart(ov.Histogram, barWidth))
	}
	return b.String()
}

// headTable shows the first rows transposed so wide datasets stay readable.
func headTable(columns []string, head [][]string) string {
	headers := []string{"column"}
	for i := range head {
		headers = append(headers, fmt.Sprint(i))
	}
	rows := make([][]string, len(columns))
	for j, c := range columns {
		row := []string{c}
		for _, r := range head {
			row = append(row, r[j])
		}
		rows[j] = row
	}
	return newTable().Headers(headers...).Rows(rows...).Render()
}

func describeTable(summary []dataset.Summary) string {
	rows := make([][]string, len(summary))
	for i, s := range summary {
		rows[i] = []string{
			s.Column, fmt.Sprint(s.Count), num(s.Mean), num(s.Std), num(s.Min),
			num(s.Q25), num(s.Q50), num(s.Q75), num(s.Max),
		}
	}
	return newTable().
		Headers("column", "count", "mean", "std", "min", "25%", "50%", "75%", "max").
		Rows(rows...).
		Render()
}

func dtypesTable(types []dataset.ColumnType) string {
	rows := make([][]string, len(types))
	for i, t := range types {
		rows[i] = []string{t.Name, string(t.Type)}
	}
	return newTable().Headers("column", "dtype").Rows(rows...).Render()
}

// newTable pads every cell; without a StyleFunc the table sizes columns one rune short.
func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle })
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

func histogramChart(h *dataset.Histogram, width int) string {
	top := 0
	for _, c := range h.Counts {
		top = max(top, c)
	}
	if top == 0 {
		top = 1
	}
	lines := make([]string, 0, len(h.Counts)+1)
	for i, c := range h.Counts {
		n := c * width / top
		label := fmt.Sprintf("%14s - %-14s", domain.FormatCurrency(h.Edges[i]), domain.FormatCurrency(h.Edges[i+1]))
		lines = append(lines, fmt.Sprintf("%s %s %d", label, barStyle.Render(strings.Repeat("█", n)), c))
	}
	lines = append(lines, hintStyle.Render("Frequency of "+h.Column))
	return strings.Join(lines, "\n")
}

func (m Model) renderImportance() string {
	var b strings.Builder
	b.WriteString(groupStyle.Render("Feature Importance Analysis") + "\n\n")
	if m.rankingErr != nil {
		b.WriteString(warningStyle.Render("Feature importance unavailable: " + m.rankingErr.Error()))
		return b.String()
	}
	if m.ranking.Illustrative {
		b.WriteString(infoStyle.Render("This section would typically show the importance of different features in the model's predictions.") + "\n")
	}
	b.WriteString(rankingCaption(m.ranking) + "\n\n")
	b.WriteString(barChart(m.ranking, barWidth))
	return b.String()
}
