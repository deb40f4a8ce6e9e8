package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Satya2834/PubFitnessStudio-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRemote(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// fullPageHandler serves n ledger rows from get_user_nutritions and accepts
// everything else.
func fullPageHandler(n int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/get_user_nutritions", func(w http.ResponseWriter, r *http.Request) {
		rows := make([]map[string]any, 0, n)
		for i := 0; i < n; i++ {
			rows = append(rows, map[string]any{
				"date":     fmt.Sprintf("2024-04-%02d", i%28+1),
				"calories": float64(i),
			})
		}
		_ = json.NewEncoder(w).Encode(rows)
	})
	return mux
}

func newTestRemote(t *testing.T, srv *httptest.Server) *RemoteClient {
	t.Helper()
	t.Setenv("REMOTE_BASE_URL", srv.URL)
	return NewRemoteClient()
}

func TestRemoteLogin(t *testing.T) {
	t.Run("successful login returns the device id", func(t *testing.T) {
		srv := fakeRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/web_login", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "pubfit", body["username"])
			assert.Equal(t, "secret", body["password"])
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status":   "Login Successful",
				"deviceid": "device-42",
			})
		}))

		deviceID, err := newTestRemote(t, srv).Login("pubfit", "secret")
		require.NoError(t, err)
		assert.Equal(t, "device-42", deviceID)
	})

	t.Run("rejected login surfaces the remote message", func(t *testing.T) {
		srv := fakeRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status":  "Login Failed",
				"message": "Invalid credentials",
			})
		}))

		_, err := newTestRemote(t, srv).Login("pubfit", "wrong")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := fakeRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))

		_, err := newTestRemote(t, srv).Login("pubfit", "secret")
		require.Error(t, err)
	})
}

func TestRemoteFetchNutritions(t *testing.T) {
	srv := fakeRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get_user_nutritions", r.URL.Path)
		assert.Equal(t, "pubfit", r.URL.Query().Get("username"))
		assert.Equal(t, "2024-06-15", r.URL.Query().Get("date"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"date": "2024-06-15", "breakfast": "Idli, Dosa", "lunch": "Rice",
				"snacks": "", "dinner": "Chapati",
				"calories": 800.0, "proteins": 40.0, "carbs": 100.0, "fats": 23.0,
				"water": 1000.0,
			},
		})
	}))

	records, err := newTestRemote(t, srv).FetchNutritions("pubfit", "2024-06-15")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-06-15", records[0].Date)
	assert.Equal(t, "Idli, Dosa", records[0].Breakfast)
	assert.Equal(t, 800.0, records[0].Calories)
	assert.Equal(t, 1000.0, records[0].Water)
}

func TestRemoteUploadNutritions(t *testing.T) {
	rec := models.DayRecord{
		Date: "2024-06-15", Breakfast: "Idli", Lunch: "Rice",
		Calories: 800, Proteins: 40, Carbs: 100, Fats: 23, Water: 1000,
	}

	t.Run("accepted upload", func(t *testing.T) {
		srv := fakeRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/update_user_nutritions", r.URL.Path)
			var body struct {
				UploadData map[string]any `json:"upload_data"`
				DeviceID   string         `json:"deviceid"`
				Username   string         `json:"username"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "device-42", body.DeviceID)
			assert.Equal(t, "pubfit", body.Username)
			assert.Equal(t, "2024-06-15", body.UploadData["date"])
			assert.Equal(t, 800.0, body.UploadData["calories"])
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "Meal data uploaded successfully!"})
		}))

		require.NoError(t, newTestRemote(t, srv).UploadNutritions(rec, "device-42", "pubfit"))
	})

	t.Run("rejected upload is an error", func(t *testing.T) {
		srv := fakeRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "quota exceeded"})
		}))

		err := newTestRemote(t, srv).UploadNutritions(rec, "device-42", "pubfit")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}
