// Package docs Property Search Service API.
//
// Бэкенд поиска объявлений о продаже недвижимости.
// Предоставляет API для фильтрации, сортировки и пагинации объявлений,
// поиска инфраструктуры рядом с объектом и оценки пеших маршрутов.
//
// Основные возможности:
// - Поиск объявлений по городу, цене, типу и числу спален
// - Агрегированная статистика по объявлениям
// - Инфраструктура рядом с объявлением с ранжированием по расстоянию
// - Оценка маршрута по прямой от объявления до места
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
