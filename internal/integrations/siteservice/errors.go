package siteservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("siteservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сайта
	ErrInvalidResponse = errors.New("siteservice client: invalid response")
)
