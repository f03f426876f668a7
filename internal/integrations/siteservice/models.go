package siteservice

import "context"

// RevalidateRequest запрос на сброс кэша страницы
type RevalidateRequest struct {
	Path string `json:"path"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopClient заглушка, когда интеграция с сайтом выключена в конфиге
type NopClient struct{}

// RevalidateGuesthouse ничего не делает
func (NopClient) RevalidateGuesthouse(ctx context.Context) {}
