// Package docs Country Explorer API.
//
// Сервис-обозреватель стран поверх публичного REST Countries API.
// Предоставляет API для просмотра каталога стран с поиском, фильтрацией
// и сортировкой, детальных страниц с обогащением стран-соседей,
// а также сессионного избранного с заметками, экспортом и импортом.
//
// Основные возможности:
// - Каталог стран с регистронезависимым поиском и стабильной сортировкой
// - Поиск по мере ввода с дебаунсом на стороне сервиса
// - Детальная страница страны со списком соседей
// - Избранное: заметки, недавно добавленные, экспорт/импорт JSON
// - Mock-аутентификация с cookie-сессией и route guard'ом
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
