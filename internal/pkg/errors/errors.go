package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены
	// (удаление несуществующего вопроса, страница за пределами выборки).
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для синтаксически некорректных запросов:
	// битый JSON, отсутствующие обязательные поля, нечисловой category.
	ErrBadRequest = errors.New("bad request")

	// ErrValidation используется для семантически некорректных данных,
	// которые распарсились, но нарушают доменные ограничения
	// (пустой текст вопроса или ответа).
	ErrValidation = errors.New("validation failed")
)
