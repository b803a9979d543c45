// Package shaper преобразует записи OData в упрощённые структуры domain.
//
// Обходы вложенных данных собраны здесь:
//   - Zaak → ZaakActor (Submitters)
//   - Zaak → Besluit → Stemming (Votes)
//
// Все функции чистые и не паникуют на отсутствующих полях.
package shaper
