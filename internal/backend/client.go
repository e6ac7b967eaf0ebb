// Package backend — клиент HTTP API ресторана.
// Все ответы приходят в конверте {success, data|error}; клиент распаковывает
// его и переводит неуспех в типизированные ошибки ErrNotFound/ErrBackend.
package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу Backend.
var _ ports.Backend = (*Client)(nil)

// Сигнальные ошибки клиента.
var (
	// ErrNotFound — бэкенд ответил 404: ресурса не существует.
	ErrNotFound = errors.New("resource not found")
	// ErrBackend — сбой запроса: не-2xx статус, неуспешный или битый конверт.
	ErrBackend = errors.New("backend request failed")
)

const defaultTimeout = 15 * time.Second

// Client — клиент поверх net/http; транспорт (таймауты, трассировка)
// задаётся снаружи через httpClient.
type Client struct {
	base string
	http *http.Client
}

// New — конструктор; httpClient == nil — клиент с таймаутом по умолчанию.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: httpClient,
	}
}

// CustomerByID — карточка клиента; отсутствие клиента — ErrNotFound.
func (c *Client) CustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var cust domain.Customer
	if err := c.getJSON(ctx, "/customers/"+url.PathEscape(customerID), &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

// CustomerCanOrder — может ли клиент оформлять заказы.
func (c *Client) CustomerCanOrder(ctx context.Context, customerID string) (bool, error) {
	var st struct {
		CanOrder bool `json:"canOrder"`
	}
	path := "/business/customer/" + url.PathEscape(customerID) + "/status"
	if err := c.getJSON(ctx, path, &st); err != nil {
		return false, err
	}
	return st.CanOrder, nil
}

// RestaurantStatus — режим работы и незавершённые заказы ресторана.
func (c *Client) RestaurantStatus(ctx context.Context) (*domain.RestaurantStatus, error) {
	var st domain.RestaurantStatus
	if err := c.getJSON(ctx, "/business/status", &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// ValidateDeliveryZone — проверка точки на принадлежность зоне доставки.
// Признак принадлежности бэкенд кладёт рядом с конвертом, детали — в data.
func (c *Client) ValidateDeliveryZone(ctx context.Context, coords domain.Coordinates) (*domain.ZoneDecision, error) {
	body := map[string]float64{
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
	}
	env, err := c.postZone(ctx, "/geofencing/validate-delivery-zone", body)
	if err != nil {
		return nil, err
	}
	return &domain.ZoneDecision{
		Within:  env.WithinDeliveryZone,
		Reason:  env.Data.Reason,
		Message: env.Data.Message,
		City:    env.Data.City,
		Zone:    env.Data.Zone,
	}, nil
}
