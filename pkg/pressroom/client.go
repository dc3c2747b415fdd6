package pressroom

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a minimal HTTP client for the gang-run print facility API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	facilityID string
	apiSecret  string
	debug      bool
}

// Config holds Pressroom API credentials.
type Config struct {
	BaseURL    string
	FacilityID string
	APISecret  string
}

// NewClient constructs a new Pressroom client with sane defaults.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.BaseURL,
		facilityID: cfg.FacilityID,
		apiSecret:  cfg.APISecret,
		debug:      os.Getenv("ENV") == "development",
	}
}

// sign generates an HMAC-SHA256 hex digest over the reference id, keyed
// with the facility API secret.
func (c *Client) sign(data string) string {
	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(c.facilityID + data))
	return hex.EncodeToString(mac.Sum(nil))
}

// SubmitBatch submits a gang batch for production and returns the
// facility's run reference.
func (c *Client) SubmitBatch(ctx context.Context, batchNumber, sizeName string, paperStock string, quantity int) (*SubmitResponse, error) {
	req := SubmitRequest{
		FacilityID:  c.facilityID,
		BatchNumber: batchNumber,
		SizeName:    sizeName,
		PaperStock:  paperStock,
		Quantity:    quantity,
		Sign:        c.sign(batchNumber),
	}
	var resp SubmitResponse
	if err := c.doRequest(ctx, "/runs", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRunStatus checks the production status of a submitted run.
func (c *Client) GetRunStatus(ctx context.Context, runRef string) (*StatusResponse, error) {
	req := StatusRequest{
		FacilityID: c.facilityID,
		RunRef:     runRef,
		Sign:       c.sign(runRef),
	}
	var resp StatusResponse
	if err := c.doRequest(ctx, "/runs/status", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest performs the HTTP POST to the facility API with JSON payloads
// and decodes the JSON response into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", c.baseURL+endpoint).
			RawJSON("request", payload).
			Msg("[PRESSROOM] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[PRESSROOM] Incoming response")
	}

	// The facility returns 200 with status encapsulated in JSON, but
	// decode regardless of status code to surface any error message.
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
