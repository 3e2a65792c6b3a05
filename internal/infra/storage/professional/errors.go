package professional

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional.repository: professional not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("professional.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("professional.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("professional.repository: failed to scan row")

	// ErrInvalidWorkingHours возвращается при нечитаемом JSON рабочих часов
	ErrInvalidWorkingHours = errors.New("professional.repository: invalid working hours payload")
)
