package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/models"
)

// RemotePageSize is the fixed page size of get_user_nutritions: a full page
// means older records may remain upstream.
const RemotePageSize = 50

const defaultRemoteBaseURL = "https://pubfitnessstudio.pythonanywhere.com"

// RemoteClient talks to the remote record store. Every call is terminal for
// its user action: no retries, the user re-triggers manually.
type RemoteClient struct {
	baseURL string
	client  *http.Client
}

func NewRemoteClient() *RemoteClient {
	base := os.Getenv("REMOTE_BASE_URL")
	if base == "" {
		base = defaultRemoteBaseURL
	}
	return &RemoteClient{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type loginResponse struct {
	Status   string `json:"status"`
	DeviceID string `json:"deviceid"`
	Message  string `json:"message"`
}

// Login authenticates against /web_login and returns the device id on
// success.
func (c *RemoteClient) Login(username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal login payload: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/web_login", "application/json", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to call web_login: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("web_login error %d: %s", resp.StatusCode, string(body))
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", fmt.Errorf("failed to parse login JSON: %w", err)
	}
	if lr.Status != "Login Successful" {
		if lr.Message != "" {
			return "", fmt.Errorf("login failed: %s", lr.Message)
		}
		return "", fmt.Errorf("login failed: %s", lr.Status)
	}
	return lr.DeviceID, nil
}

type remoteDayRecord struct {
	Date      string  `json:"date"`
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	Snacks    string  `json:"snacks"`
	Dinner    string  `json:"dinner"`
	Calories  float64 `json:"calories"`
	Proteins  float64 `json:"proteins"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Water     float64 `json:"water"`
}

// FetchNutritions pulls one page (up to RemotePageSize records, working
// backwards from date) of the user's ledger from /get_user_nutritions.
func (c *RemoteClient) FetchNutritions(username, date string) ([]models.DayRecord, error) {
	u := fmt.Sprintf("%s/get_user_nutritions?username=%s&date=%s",
		c.baseURL, url.QueryEscape(username), url.QueryEscape(date))

	resp, err := c.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call get_user_nutritions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutritions response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get_user_nutritions error %d: %s", resp.StatusCode, string(body))
	}

	var rows []remoteDayRecord
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse nutritions JSON: %w", err)
	}

	records := make([]models.DayRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.DayRecord{
			Date:      r.Date,
			Breakfast: r.Breakfast,
			Lunch:     r.Lunch,
			Snacks:    r.Snacks,
			Dinner:    r.Dinner,
			Calories:  r.Calories,
			Proteins:  r.Proteins,
			Carbs:     r.Carbs,
			Fats:      r.Fats,
			Water:     r.Water,
		})
	}
	return records, nil
}

type uploadResponse struct {
	Status string `json:"status"`
}

// UploadNutritions pushes one day record to /update_user_nutritions.
func (c *RemoteClient) UploadNutritions(rec models.DayRecord, deviceID, username string) error {
	payload := map[string]any{
		"upload_data": remoteDayRecord{
			Date:      rec.Date,
			Breakfast: rec.Breakfast,
			Lunch:     rec.Lunch,
			Snacks:    rec.Snacks,
			Dinner:    rec.Dinner,
			Calories:  rec.Calories,
			Proteins:  rec.Proteins,
			Carbs:     rec.Carbs,
			Fats:      rec.Fats,
			Water:     rec.Water,
		},
		"deviceid": deviceID,
		"username": username,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal upload payload: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/update_user_nutritions", "application/json", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to call update_user_nutritions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update_user_nutritions error %d: %s", resp.StatusCode, string(body))
	}

	var ur uploadResponse
	if err := json.Unmarshal(body, &ur); err != nil {
		return fmt.Errorf("failed to parse upload JSON: %w", err)
	}
	if ur.Status != "Meal data uploaded successfully!" {
		return fmt.Errorf("upload rejected: %s", ur.Status)
	}
	return nil
}
