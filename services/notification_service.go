package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Jevohngg/happy-valley-tree-orders/config"
	"github.com/Jevohngg/happy-valley-tree-orders/models"
)

// OrderNotification is the JSON payload sent to the staff notification
// endpoint after an order is persisted.
type OrderNotification struct {
	OrderNumber     string              `json:"orderNumber"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	DeliveryAddress string              `json:"deliveryAddress"`
	DeliveryDate    string              `json:"deliveryDate"`
	DeliveryTime    string              `json:"deliveryTime"`
	Trees           []models.TreeItem   `json:"trees"`
	Stands          []models.StandItem  `json:"stands"`
	Wreaths         []models.WreathItem `json:"wreaths"`
	DeliveryOption  string              `json:"deliveryOption"`
	DeliveryFee     float64             `json:"deliveryFee"`
	TotalAmount     float64             `json:"totalAmount"`
	Notes           string              `json:"notes,omitempty"`
}

// NotificationService delivers order notifications to staff. Delivery is
// best-effort: a failure is logged by the caller and never blocks the order.
type NotificationService interface {
	SendOrderNotification(n OrderNotification) error
}

// HTTPNotificationService implements NotificationService by POSTing the
// payload to a configured HTTP endpoint.
type HTTPNotificationService struct {
	endpoint   string
	httpClient *http.Client
}

var notificationServiceInstance NotificationService

// InitNotificationService initializes the notification service from config
func InitNotificationService(cfg *config.Config) NotificationService {
	notificationServiceInstance = NewHTTPNotificationService(cfg.NotificationURL)
	return notificationServiceInstance
}

// GetNotificationService returns the initialized notification service instance
func GetNotificationService() NotificationService {
	return notificationServiceInstance
}

// SetNotificationService sets the notification service instance (primarily for testing)
func SetNotificationService(service NotificationService) {
	notificationServiceInstance = service
}

// NewHTTPNotificationService creates a notification service for endpoint
func NewHTTPNotificationService(endpoint string) *HTTPNotificationService {
	return &HTTPNotificationService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendOrderNotification POSTs the notification payload as JSON. An empty
// endpoint means notifications are not configured; that is logged and
// treated as success.
func (s *HTTPNotificationService) SendOrderNotification(n OrderNotification) error {
	if s.endpoint == "" {
		log.Printf("Order notification endpoint not configured, skipping notification for order %s", n.OrderNumber)
		return nil
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call notification endpoint: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close notification response body: %v", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
