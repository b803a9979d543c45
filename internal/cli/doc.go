// Package cli реализует инструмент командной строки kamermoties.
//
// # Обзор
//
// CLI — клиентская утилита для kamermoties API.
// Работает через HTTP, не импортирует внутренние пакеты сервиса.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для API. Инкапсулирует запросы, разбор ответов
// и ошибок вида {"error": "..."}.
//
//	client := cli.NewClient("http://localhost:8080")
//	factions, err := client.ListFactions(ctx)
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: kamer moties list --json | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - moties: list, stemmingen, filter
//   - fracties: list
//
// Каждая группа создаётся через фабричную функцию (NewMotionsCmd и т.д.),
// принимающую clientFn и outputFn — замыкания для ленивого создания
// Client и Output после парсинга PersistentFlags.
package cli
