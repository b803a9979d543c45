// Package odata — клиент OData API Tweede Kamer (gegevensmagazijn).
//
// Структура:
//   - client.go — Client: один GET к base URL + сущность, фиксированный таймаут
//   - query.go  — Query: параметры $filter, $orderby, $top, $skip, $expand
//   - record.go — Record: безопасный доступ к необязательным полям ответа
//   - errors.go — ошибки клиента
//
// Клиент не делает retry: любая сетевая ошибка, таймаут или не-2xx статус
// логируется и возвращается как ErrUnavailable.
package odata
