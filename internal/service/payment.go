package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nikahlink/backend/internal/models"
)

// paymentIntentResponse is the slice of the gateway response we need.
type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentService delegates charge creation to the external payment
// gateway and keeps the append-only audit trail of completed charges.
type PaymentService struct {
	db         *gorm.DB
	gatewayURL string
	secretKey  string
	client     *http.Client
}

var _ IPaymentService = (*PaymentService)(nil)

func NewPaymentService(db *gorm.DB, gatewayURL, secretKey string) *PaymentService {
	return &PaymentService{
		db:         db,
		gatewayURL: gatewayURL,
		secretKey:  secretKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateIntent asks the gateway for a payment intent and returns its
// id and opaque client secret. The gateway is form-encoded,
// Stripe-style; amount is in the smallest currency unit.
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64) (string, string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[PaymentService] gateway returned status %d: %s", resp.StatusCode, string(body))
		return "", "", fmt.Errorf("%w: status %d", ErrPaymentGateway, resp.StatusCode)
	}

	var intent paymentIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	if intent.ClientSecret == "" {
		return "", "", fmt.Errorf("%w: empty client secret", ErrPaymentGateway)
	}
	return intent.ID, intent.ClientSecret, nil
}

// Record appends a completed-charge audit row.
func (s *PaymentService) Record(ctx context.Context, email string, biodataID int, amount int64, intentID string) (*models.PaymentRecord, error) {
	record := models.PaymentRecord{
		Email:     email,
		BiodataID: biodataID,
		Amount:    amount,
		IntentID:  intentID,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *PaymentService) ListByPayer(ctx context.Context, email string) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PaymentRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
