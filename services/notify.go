package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mwhitford/portfolio-backend/config"
	"github.com/mwhitford/portfolio-backend/models"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// NotifyContactMessage emails the site owner about a new contact-form
// submission through the Resend API. Notification is optional: when
// RESEND_API_KEY or CONTACT_NOTIFY_EMAIL is not configured it is a no-op.
// Callers treat a failure as log-only; the contact submission itself has
// already been persisted.
func NotifyContactMessage(cfg map[string]string, msg models.ContactMessage) error {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	recipient := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	if apiKey == "" || recipient == "" {
		log.Debug().Msg("Contact notification not configured, skipping")
		return nil
	}

	from := config.GetString(cfg, "RESEND_FROM_EMAIL", "Portfolio <[email protected]>")

	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	payload := ResendEmailRequest{
		From:    from,
		To:      []string{recipient},
		Subject: fmt.Sprintf("New contact message: %s", msg.Subject),
		Text:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var resendErr ResendErrorResponse
		if jsonErr := json.Unmarshal(respBody, &resendErr); jsonErr == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	var emailResp ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&emailResp); err == nil && emailResp.ID != "" {
		log.Debug().Str("emailID", emailResp.ID).Msg("Contact notification sent")
	}
	return nil
}
