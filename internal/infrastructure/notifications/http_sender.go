package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"quoteflow/internal/usecase/interfaces"
)

var ErrMissingNotificationServiceURL = errors.New("missing NOTIFICATION_SERVICE_URL")

// HTTPSender delivers notification requests to the notification service. All
// callers treat delivery as best effort; failures are logged and never block a
// transition.
type HTTPSender struct {
	client   *http.Client
	baseURL  string
	token    string
	mockMode bool
}

var _ interfaces.INotificationSender = (*HTTPSender)(nil)

func NewHTTPSender(baseURL string) (*HTTPSender, error) {
	if isNotificationMockEnabled() {
		log.Printf("[notify][sender] mock mode enabled")
		return &HTTPSender{mockMode: true}, nil
	}

	if baseURL == "" {
		log.Printf("[notify][sender] missing NOTIFICATION_SERVICE_URL")
		return nil, ErrMissingNotificationServiceURL
	}

	log.Printf("[notify][sender] notification client initialized")
	return &HTTPSender{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   os.Getenv("NOTIFICATION_SERVICE_TOKEN"),
	}, nil
}

func (s *HTTPSender) Notify(ctx context.Context, recipient, templateKey string, data map[string]any) error {
	if s != nil && s.mockMode {
		log.Printf("[notify][sender] mock send recipient=%s template=%s", recipient, templateKey)
		return nil
	}
	if s == nil || s.client == nil {
		return ErrMissingNotificationServiceURL
	}

	body, err := json.Marshal(map[string]any{
		"recipient": recipient,
		"template":  templateKey,
		"data":      data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[notify][sender] send failed template=%s err=%v", templateKey, err)
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		log.Printf("[notify][sender] send rejected template=%s status=%d", templateKey, resp.StatusCode)
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	log.Printf("[notify][sender] send success recipient=%s template=%s", recipient, templateKey)
	return nil
}

func isNotificationMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
