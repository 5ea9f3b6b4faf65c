package email

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoSender ส่งอีเมลผ่าน Brevo transactional API
type BrevoSender struct {
	APIKey   string
	From     string
	Endpoint string
	Client   *http.Client
}

func NewBrevoSender(apiKey, from string) *BrevoSender {
	return &BrevoSender{
		APIKey:   apiKey,
		From:     from,
		Endpoint: brevoEndpoint,
		Client:   &http.Client{Timeout: 20 * time.Second},
	}
}

type brevoRecipient struct {
	Email string `json:"email"`
}

type brevoPayload struct {
	Sender      brevoRecipient   `json:"sender"`
	To          []brevoRecipient `json:"to"`
	Subject     string           `json:"subject"`
	HTMLContent string           `json:"htmlContent"`
}

func (s *BrevoSender) Send(to, subject, html string) error {
	payload := brevoPayload{
		Sender:      brevoRecipient{Email: s.From},
		To:          []brevoRecipient{{Email: to}},
		Subject:     subject,
		HTMLContent: html,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", s.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.APIKey)

	res, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New("brevo returned status " + res.Status)
	}
	return nil
}
