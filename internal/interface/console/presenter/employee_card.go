// Package presenter formats domain objects for console display.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/alem-hub/langbasics/internal/domain/employee"
)

// ══════════════════════════════════════════════════════════════════════════════
// EMPLOYEE CARD PRESENTER
// Форматирует карточку сотрудника: инициалы, номер, зарплата.
// Форматирование отделено от вывода: Lines/Format чистые, Write пишет в io.Writer.
// ══════════════════════════════════════════════════════════════════════════════

// EmployeePresenter форматирует карточку сотрудника.
type EmployeePresenter struct{}

// NewEmployeePresenter создаёт новый презентер карточки сотрудника.
func NewEmployeePresenter() *EmployeePresenter {
	return &EmployeePresenter{}
}

// Lines возвращает три строки карточки без завершающих переводов строки.
func (p *EmployeePresenter) Lines(e employee.Employee) []string {
	return []string{
		fmt.Sprintf("Employee: %s", e.Initials()),
		fmt.Sprintf("Number: %d", e.Number),
		fmt.Sprintf("Salary: $%s", e.Salary),
	}
}

// Format возвращает карточку целиком, каждая строка завершается "\n".
func (p *EmployeePresenter) Format(e employee.Employee) string {
	var sb strings.Builder
	for _, line := range p.Lines(e) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Write выводит карточку в w.
func (p *EmployeePresenter) Write(w io.Writer, e employee.Employee) error {
	_, err := io.WriteString(w, p.Format(e))
	return err
}
