package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
)

// ExpoConfig is the configuration of a registered mobile device.
type ExpoConfig struct {
	PushToken string `json:"push_token" validate:"required,expotoken"`
}

type expoMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Sound string            `json:"sound"`
	Data  map[string]string `json:"data,omitempty"`
}

type expoTicket struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details struct {
		Error string `json:"error"`
	} `json:"details"`
}

type expoResponse struct {
	Data   expoTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// ticket errors that will not go away by retrying
var terminalExpoErrors = map[string]bool{
	"DeviceNotRegistered": true,
	"InvalidCredentials":  true,
	"MessageTooBig":       true,
}

// Expo sends mobile push notifications through the Expo push service.
type Expo struct {
	client      *http.Client
	url         string
	accessToken string
}

func NewExpo(client *http.Client, url, accessToken string) *Expo {
	return &Expo{client: client, url: url, accessToken: accessToken}
}

func (e *Expo) Name() string {
	return domain.ChannelExpoPush
}

func (e *Expo) Validate(config map[string]any) error {
	return decodeConfig(config, &ExpoConfig{})
}

func (e *Expo) Send(ctx context.Context, config map[string]any, msg contract.Message) error {
	var cfg ExpoConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return err
	}

	payload, err := json.Marshal(expoMessage{
		To:    cfg.PushToken,
		Title: msg.Title,
		Body:  msg.Body,
		Sound: "default",
		Data: map[string]string{
			"occasion":    msg.Occasion,
			"target_date": msg.TargetDate,
		},
	})
	if err != nil {
		return domain.Terminal(e.Name(), fmt.Errorf("failed to encode message: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return domain.Terminal(e.Name(), fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if e.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+e.accessToken)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return domain.Transient(e.Name(), err)
	}
	defer resp.Body.Close()

	if err := classifyResponse(e.Name(), resp); err != nil {
		return err
	}

	var out expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Transient(e.Name(), fmt.Errorf("failed to decode response: %w", err))
	}

	if len(out.Errors) > 0 {
		return domain.Transient(e.Name(), fmt.Errorf("%s: %s", out.Errors[0].Code, out.Errors[0].Message))
	}

	if out.Data.Status == "error" {
		err := errors.New(out.Data.Message)
		if out.Data.Details.Error != "" {
			err = fmt.Errorf("%s: %s", out.Data.Details.Error, out.Data.Message)
		}
		if terminalExpoErrors[out.Data.Details.Error] {
			return domain.Terminal(e.Name(), err)
		}
		return domain.Transient(e.Name(), err)
	}

	return nil
}
