package siteservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с фронтовым сайтом (Next.js).
// Сайт кэширует страницы гостевого дома; после изменения комнат или
// бронирований ему нужно сбросить кэш соответствующего пути.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сайта
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// RevalidatePath просит сайт пересобрать закэшированную страницу
func (c *Client) RevalidatePath(ctx context.Context, path string) error {
	url := fmt.Sprintf("%s/internal/revalidate", c.baseURL)

	body, err := json.Marshal(RevalidateRequest{Path: path})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// RevalidateGuesthouse сбрасывает кэш страницы гостевого дома.
// Ошибки инвалидации не фатальны для бизнес-операции: кэш догонит данные
// по TTL, поэтому ошибка только логируется (graceful degradation).
func (c *Client) RevalidateGuesthouse(ctx context.Context) {
	if err := c.RevalidatePath(ctx, "/guesthouse"); err != nil {
		c.log.Error("SiteService unavailable, cache invalidation skipped: %v", err)
		return
	}
	c.log.Info("Revalidated /guesthouse page cache")
}
