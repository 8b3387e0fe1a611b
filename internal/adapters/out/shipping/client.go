// Package shipping implements the outbound carrier port over the carrier's
// HTTP API. The carrier assigns a tracking code when a shipment is created
// and reports one of six statuses for it afterwards.
package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"greenspace/internal/core/domain/model/carrier"
	"greenspace/internal/pkg/errs"
)

// defaultTimeout bounds every carrier call. The reconciler retries on its
// own schedule, so a slow carrier must not stall a tick.
const defaultTimeout = 10 * time.Second

// Client talks to the carrier's HTTP API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a carrier client for the given API endpoint.
func NewClient(baseURL, apiToken string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if apiToken == "" {
		return nil, errs.NewValueIsRequiredError("apiToken")
	}

	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// createShipmentRequest is the carrier's shipment registration payload.
type createShipmentRequest struct {
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	Address        string `json:"address"`
}

// createShipmentResponse carries the assigned tracking code.
type createShipmentResponse struct {
	DeliveryCode string `json:"delivery_code"`
}

// trackResponse carries the carrier's current status for a tracking code.
type trackResponse struct {
	Status string `json:"status"`
}

// CreateShipment registers a shipment with the carrier and returns the
// assigned tracking code.
func (c *Client) CreateShipment(ctx context.Context, recipientName, recipientPhone, address string) (string, error) {
	payload, err := json.Marshal(createShipmentRequest{
		RecipientName:  recipientName,
		RecipientPhone: recipientPhone,
		Address:        address,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/shipments", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("carrier returned %s: %s", resp.Status, readBody(resp.Body))
	}

	var body createShipmentResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode carrier response: %w", err)
	}
	if body.DeliveryCode == "" {
		return "", fmt.Errorf("carrier accepted the shipment but returned no tracking code")
	}

	return body.DeliveryCode, nil
}

// Track reports the carrier's current status for a tracking code.
func (c *Client) Track(ctx context.Context, deliveryCode string) (carrier.Status, error) {
	if deliveryCode == "" {
		return "", errs.NewValueIsRequiredError("deliveryCode")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/shipments/"+url.PathEscape(deliveryCode), nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("carrier returned %s: %s", resp.Status, readBody(resp.Body))
	}

	var body trackResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode carrier response: %w", err)
	}

	status := carrier.Status(body.Status)
	if err = status.Validate(); err != nil {
		return "", err
	}

	return status, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Token", c.apiToken)
}

// readBody returns a bounded snippet of a response body for error messages.
func readBody(r io.Reader) string {
	snippet, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return string(snippet)
}
