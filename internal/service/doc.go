// Package service содержит сценарии API поверх OData клиента.
//
// Каждый сценарий делает ровно один запрос к upstream, формирует
// упрощённые структуры через shaper и (для фильтра) отбирает моции
// через filter. Ошибки возвращаются явно:
//   - ErrUpstreamUnavailable — upstream недоступен
//   - ErrNotFound — motie не найдена
//
// Остальные ошибки считаются необработанными и превращаются в 500 на границе API.
package service
