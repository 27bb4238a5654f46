// Package employee содержит доменную модель сотрудника.
// Это простой агрегат данных - здесь нет внешних зависимостей.
package employee

import (
	"math"
	"strconv"

	"github.com/alem-hub/langbasics/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Initial представляет один инициал (первая буква имени или фамилии).
type Initial rune

// String возвращает инициал как строку из одного символа.
func (i Initial) String() string {
	return string(rune(i))
}

// Salary представляет зарплату сотрудника. Может быть целой или дробной.
type Salary float64

// IsValid проверяет, что зарплата неотрицательная и конечная.
func (s Salary) IsValid() bool {
	f := float64(s)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// String форматирует зарплату без экспоненты и без лишних нулей: 80000, 80000.5.
func (s Salary) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}

// ══════════════════════════════════════════════════════════════════════════════
// EMPLOYEE ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Employee - запись о сотруднике. Обычный value type: поля заполняются
// вызывающим кодом напрямую, инварианты структурно не проверяются.
type Employee struct {
	FirstInitial Initial
	LastInitial  Initial

	// Number - табельный номер. Уникальность обеспечивает вызывающий код.
	Number int

	Salary Salary
}

// New создаёт сотрудника со всеми полями в нулевом значении.
func New() Employee {
	return Employee{}
}

// NewEmployeeParams содержит параметры для создания сотрудника.
type NewEmployeeParams struct {
	FirstInitial rune
	LastInitial  rune
	Number       int
	Salary       float64
}

// NewEmployee создаёт и сразу валидирует сотрудника.
func NewEmployee(params NewEmployeeParams) (Employee, error) {
	e := Employee{
		FirstInitial: Initial(params.FirstInitial),
		LastInitial:  Initial(params.LastInitial),
		Number:       params.Number,
		Salary:       Salary(params.Salary),
	}
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// Validate проверяет соглашения вызывающего кода: номер и зарплата
// неотрицательные. Рендеринг Validate не вызывает.
func (e Employee) Validate() error {
	if e.Number < 0 {
		return shared.NewValidationError("number", e.Number, shared.ErrNegativeValue)
	}
	if !e.Salary.IsValid() {
		kind := shared.ErrNegativeValue
		if f := float64(e.Salary); math.IsNaN(f) || math.IsInf(f, 0) {
			kind = shared.ErrValueOutOfRange
		}
		return shared.NewValidationError("salary", e.Salary, kind)
	}
	return nil
}

// Initials возвращает оба инициала подряд, например "JD".
func (e Employee) Initials() string {
	return e.FirstInitial.String() + e.LastInitial.String()
}
