package odata

import "errors"

// Ошибки клиента.
var (
	// ErrUnavailable — upstream недоступен: сеть, таймаут, не-2xx или битый JSON.
	ErrUnavailable = errors.New("odata api unavailable")
)
