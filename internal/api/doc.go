// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go         — Handler с DI (сервис, logger)
//   - routes.go          — регистрация маршрутов (в корне и под /api)
//   - middleware.go      — middleware (recovery, logging, CORS)
//   - response.go        — JSON-ответы и преобразование ошибок сервиса
//   - dto.go             — Data Transfer Objects (request/response)
//   - motion_handler.go  — обработчики для /moties
//   - faction_handler.go — обработчики для /fracties
//
// Ошибки всегда отдаются телом {"error": "<сообщение>"}.
package api
