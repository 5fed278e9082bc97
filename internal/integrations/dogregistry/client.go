package dogregistry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент реестра собак
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента реестра собак
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDog получает собаку по ID
func (c *Client) GetDog(ctx context.Context, dogID int64) (*Dog, error) {
	url := fmt.Sprintf("%s/internal/dogs/%d", c.baseURL, dogID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrDogNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dog Dog
	if err := json.NewDecoder(resp.Body).Decode(&dog); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if dog.HeightCm != nil && *dog.HeightCm <= 0 {
		dog.HeightCm = nil
	}

	return &dog, nil
}

// GetDogWithGracefulDegradation получает собаку с graceful degradation.
// При недоступности реестра возвращает ErrServiceDegraded, и вызывающий
// считает цену с неизвестным ростом (средний размер).
func (c *Client) GetDogWithGracefulDegradation(ctx context.Context, dogID int64) (*Dog, error) {
	dog, err := c.GetDog(ctx, dogID)
	if err != nil {
		if errors.Is(err, ErrDogNotFound) {
			c.log.Info("Dog not found in registry, dog_id=%d", dogID)
			return nil, err
		}

		c.log.Error("DogRegistry unavailable, applying graceful degradation for dog_id=%d: %v", dogID, err)
		return nil, fmt.Errorf("%w: dog_id=%d, error=%v", ErrServiceDegraded, dogID, err)
	}

	return dog, nil
}
