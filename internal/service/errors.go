package service

import "errors"

// Ошибки сервиса.
var (
	// ErrUpstreamUnavailable — запрос к OData API не удался.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNotFound — запрошенная motie не найдена.
	ErrNotFound = errors.New("not found")
)
