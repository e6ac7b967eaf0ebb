package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Gunvolt24/order-precheck/pkg/metrics"
)

// envelope — универсальный конверт ответа {success, data|error}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// zoneEnvelope — расширенный конверт геозоны: вердикт лежит на верхнем уровне.
type zoneEnvelope struct {
	Success            bool `json:"success"`
	WithinDeliveryZone bool `json:"withinDeliveryZone"`
	Data               struct {
		Reason  string `json:"reason,omitempty"`
		Message string `json:"message,omitempty"`
		City    string `json:"city,omitempty"`
		Zone    string `json:"zone,omitempty"`
	} `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// errText — текст неуспеха из конверта (error либо message).
func errText(errField, msgField string) string {
	if errField != "" {
		return errField
	}
	if msgField != "" {
		return msgField
	}
	return "unsuccessful response"
}

// do — выполнить запрос и вернуть тело ответа; не-2xx переводится в ошибку.
func (c *Client) do(ctx context.Context, method, path string, body any) (raw []byte, err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.BackendRequests.WithLabelValues(method, outcome).Inc()
	}()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrBackend, method, path, resp.StatusCode)
	}
	return raw, nil
}

// getJSON — GET + распаковка data успешного конверта в out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: malformed envelope: %v", ErrBackend, err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrBackend, errText(env.Error, env.Message))
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: malformed data: %v", ErrBackend, err)
	}
	return nil
}

// postZone — POST + распаковка расширенного конверта геозоны.
func (c *Client) postZone(ctx context.Context, path string, body any) (*zoneEnvelope, error) {
	raw, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var env zoneEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed envelope: %v", ErrBackend, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrBackend, errText(env.Error, env.Message))
	}
	return &env, nil
}
