package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент WhatsApp Cloud API (Graph API)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendText отправляет текстовое сообщение через Graph API
func (c *Client) SendText(ctx context.Context, creds Credentials, phone, body string) (*SendResult, error) {
	if creds.PhoneNumberID == "" || creds.AccessToken == "" {
		return nil, ErrNoCredentials
	}

	normalized := NormalizePhone(phone)
	reqBody := sendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               normalized,
		Type:             "text",
		Text:             messageText{Body: body},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", c.baseURL, creds.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		raw, _ := io.ReadAll(resp.Body)
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			c.log.Error("WhatsApp API error: code=%d type=%s message=%s",
				apiErr.Error.Code, apiErr.Error.Type, apiErr.Error.Message)
			return nil, fmt.Errorf("%w: %s", ErrSendFailed, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if len(result.Messages) == 0 {
		return nil, fmt.Errorf("%w: no message id in response", ErrInvalidResponse)
	}

	c.log.Info("WhatsApp message sent to %s, id=%s", normalized, result.Messages[0].ID)
	return &SendResult{MessageID: result.Messages[0].ID}, nil
}

// SendWithFallback отправляет сообщение через API, а при отсутствии учётных
// данных или ошибке отправки формирует запасную wa.me ссылку
func (c *Client) SendWithFallback(ctx context.Context, creds Credentials, phone, body string) (*SendResult, error) {
	result, err := c.SendText(ctx, creds, phone, body)
	if err == nil {
		return result, nil
	}

	c.log.Warn("WhatsApp API send failed, falling back to wa.me link for %s: %v", phone, err)
	return &SendResult{WaLink: BuildWaLink(phone, body)}, err
}

// BuildWaLink формирует wa.me ссылку с предзаполненным текстом
func BuildWaLink(phone, body string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(body))
}

// NormalizePhone приводит номер к международному формату без плюса.
// Израильские номера вида 05X-XXXXXXX получают префикс 972.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if strings.HasPrefix(normalized, "0") {
		normalized = "972" + normalized[1:]
	}
	return normalized
}
