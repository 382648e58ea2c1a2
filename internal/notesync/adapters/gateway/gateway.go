// Package gateway выполняет HTTP-вызовы к удаленному сервису заметок
// и приводит их результат к единому виду: успех с декодированным JSON или ошибка.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
	"go.uber.org/zap"

	"notesync/pkg/logger"
)

// Константы для логирования.
const (
	LogRequestStarted   = "gateway: request started"
	LogRequestCompleted = "gateway: request completed"
	LogTransportFailed  = "gateway: transport failure"
	LogUnexpectedStatus = "gateway: unexpected response status"
	LogMalformedBody    = "gateway: malformed response body"
)

// Ошибки шлюза. Любая из них означает неудачную операцию.
var (
	ErrTransport         = errors.New("request failed")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrEncodeRequest     = errors.New("failed to encode request body")
)

// StatusError описывает ответ с кодом вне диапазона 2xx.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s %d", e.Method, e.Path, ErrUnexpectedStatus, e.StatusCode)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrUnexpectedStatus).
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Gateway выполняет одиночные запросы относительно базового адреса сервиса.
type Gateway struct {
	client  *client.Client
	baseURL string
}

// New создает шлюз. Базовый адрес задается один раз и далее не меняется.
func New(baseURL string, timeout time.Duration) *Gateway {
	cc := client.New()
	if timeout > 0 {
		cc.SetTimeout(timeout)
	}

	return &Gateway{
		client:  cc,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL возвращает адрес сервиса.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// Perform выполняет запрос method к path. body, если не nil, кодируется в JSON.
// out, если не nil, заполняется из тела ответа; при out == nil тело не разбирается,
// поэтому пустой успешный ответ (DELETE) не является ошибкой.
func (g *Gateway) Perform(ctx context.Context, method, path string, body, out any) error {
	log := logger.Log(ctx).With(
		zap.String("http_method", method),
		zap.String("path", path),
	)

	req := g.client.R().
		SetContext(ctx).
		SetMethod(method).
		SetURL(g.baseURL+path).
		SetHeader(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			client.ReleaseRequest(req)
			return fmt.Errorf("%w: %w", ErrEncodeRequest, err)
		}
		req.SetHeader(fiber.HeaderContentType, fiber.MIMEApplicationJSON).SetRawBody(payload)
	}

	log.Debug(ctx, LogRequestStarted)
	start := time.Now()

	resp, err := req.Send()
	if err != nil {
		client.ReleaseRequest(req)
		log.Warn(ctx, LogTransportFailed, zap.Error(err))
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Close()

	status := resp.StatusCode()
	log.Debug(ctx, LogRequestCompleted,
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)))

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		log.Warn(ctx, LogUnexpectedStatus, zap.Int("status", status))
		return &StatusError{Method: method, Path: path, StatusCode: status}
	}

	if out == nil {
		return nil
	}

	payload := bytes.TrimSpace(resp.Body())
	if len(payload) == 0 {
		log.Warn(ctx, LogMalformedBody, zap.String("reason", "empty body"))
		return fmt.Errorf("%w: %s %s: empty body", ErrMalformedResponse, method, path)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		log.Warn(ctx, LogMalformedBody, zap.Error(err))
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}

	return nil
}
