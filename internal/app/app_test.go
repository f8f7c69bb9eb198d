package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakita/arenakita-backend/internal/app"
	"github.com/arenakita/arenakita-backend/internal/auth"
	bookingHttp "github.com/arenakita/arenakita-backend/internal/booking/http"
	"github.com/arenakita/arenakita-backend/internal/db"
	"github.com/arenakita/arenakita-backend/internal/db/migrations"
	fieldHttp "github.com/arenakita/arenakita-backend/internal/field/http"
	"github.com/arenakita/arenakita-backend/internal/user"
	userHttp "github.com/arenakita/arenakita-backend/internal/user/http"
	venueHttp "github.com/arenakita/arenakita-backend/internal/venue/http"
)

const webhookSecret = "test-webhook-secret"

var (
	testRouter *gin.Engine
	testPool   *pgxpool.Pool
	jakarta    *time.Location
)

func TestMain(m *testing.M) {
	// Attempt to load .env from the repository root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("No .env file found or failed to load: %v", err)
	}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		log.Printf("TEST_DB_DSN not set, skipping end-to-end tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	testPool, err = db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	if err := db.Migrate(ctx, testPool, migrations.FS); err != nil {
		log.Fatalf("Unable to migrate database: %v\n", err)
	}

	jakarta, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		log.Fatalf("Unable to load time zone: %v\n", err)
	}

	storageDir, err := os.MkdirTemp("", "arenakita-files-*")
	if err != nil {
		log.Fatalf("Unable to create storage dir: %v\n", err)
	}

	container, err := app.NewContainer(app.Config{
		DBPool:               testPool,
		Logger:               slog.New(slog.NewTextHandler(io.Discard, nil)),
		JWTSecret:            "test-jwt-secret",
		JWTTTL:               30 * time.Minute,
		PasswordCost:         4, // Lower cost for testing purposes
		Location:             jakarta,
		DefaultOpenHour:      8,
		DefaultCloseHour:     22,
		FieldCacheTTL:        time.Minute,
		StoragePath:          storageDir,
		PaymentWebhookSecret: webhookSecret,
	})
	if err != nil {
		log.Fatalf("Unable to build container: %v\n", err)
	}
	testRouter = container.Router

	gin.SetMode(gin.TestMode)

	exitCode := m.Run()

	container.Close()
	testPool.Close()
	os.RemoveAll(storageDir)
	os.Exit(exitCode)
}

func clearTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), "TRUNCATE TABLE public.users CASCADE")
	require.NoError(t, err, "Failed to clean tables")
}

func executeRequest(method, path string, body any, token string, headers ...string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// registerAndLogin signs up through the API and returns the access token.
func registerAndLogin(t *testing.T, email, role string) string {
	t.Helper()
	w := executeRequest("POST", "/v1/auth/register", userHttp.RegisterRequest{
		Email: email, Password: "password123", FullName: email, Role: role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return login(t, email)
}

func login(t *testing.T, email string) string {
	t.Helper()
	w := executeRequest("POST", "/v1/auth/login", userHttp.LoginRequest{Email: email, Password: "password123"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[userHttp.LoginResponse](t, w).AccessToken
}

// createSuperadmin inserts a superadmin directly; the API never grants that role.
func createSuperadmin(t *testing.T, email string) string {
	t.Helper()
	hash, err := auth.NewBcryptPasswordHasherWithCost(4).Hash("password123")
	require.NoError(t, err)

	err = user.NewPgxRepository(testPool).Create(context.Background(), &user.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Admin",
		Role:         auth.RoleSuperadmin,
		IsActive:     true,
	})
	require.NoError(t, err)
	return login(t, email)
}

func TestVenueToBookingFlow(t *testing.T) {
	clearTables(t)

	adminToken := createSuperadmin(t, "admin@arenakita.id")
	managerToken := registerAndLogin(t, "manager@arenakita.id", "manager")
	playerToken := registerAndLogin(t, "budi@arenakita.id", "")
	rivalToken := registerAndLogin(t, "sari@arenakita.id", "player")

	tomorrow := time.Now().In(jakarta).AddDate(0, 0, 1).Format("2006-01-02")

	var venueID, fieldID, bookingID string

	t.Run("Setup Venue And Field", func(t *testing.T) {
		w := executeRequest("POST", "/v1/venues", venueHttp.CreateVenueRequest{Name: "Arena Senayan", City: "Jakarta"}, playerToken)
		assert.Equal(t, http.StatusForbidden, w.Code, "players cannot register venues")

		w = executeRequest("POST", "/v1/venues", venueHttp.CreateVenueRequest{Name: "Arena Senayan", City: "Jakarta"}, managerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		v := decode[venueHttp.VenueResponse](t, w)
		assert.Equal(t, "pending", v.Status)
		venueID = v.ID

		price := int64(100000)
		w = executeRequest("POST", fmt.Sprintf("/v1/venues/%s/fields", venueID),
			fieldHttp.CreateFieldRequest{Name: "Lapangan A", PricePerHour: &price}, managerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		f := decode[fieldHttp.FieldResponse](t, w)
		assert.Equal(t, 8, f.OpenHour)
		assert.Equal(t, 22, f.CloseHour)
		fieldID = f.ID
	})

	t.Run("Pending Venue Is Hidden", func(t *testing.T) {
		w := executeRequest("GET", "/v1/venues/"+venueID, nil, playerToken)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = executeRequest("POST", "/v1/bookings", map[string]any{"field_id": fieldID, "date": tomorrow, "hour": 10}, playerToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Superadmin Approves", func(t *testing.T) {
		w := executeRequest("POST", fmt.Sprintf("/v1/admin/venues/%s/approve", venueID), nil, managerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = executeRequest("POST", fmt.Sprintf("/v1/admin/venues/%s/approve", venueID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "approved", decode[venueHttp.VenueResponse](t, w).Status)
	})

	t.Run("Create Booking", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", map[string]any{"field_id": fieldID, "date": tomorrow, "hour": 7}, playerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code, "7 is before opening")

		w = executeRequest("POST", "/v1/bookings", map[string]any{"field_id": fieldID, "date": tomorrow, "hour": 10}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = executeRequest("POST", "/v1/bookings", map[string]any{"field_id": fieldID, "date": tomorrow, "hour": 10}, playerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		b := decode[bookingHttp.BookingResponse](t, w)
		assert.Equal(t, int64(100000), b.TotalPrice)
		assert.Equal(t, "pending", b.PaymentStatus)
		assert.Equal(t, "confirmed", b.BookingStatus)
		assert.Equal(t, time.Hour, b.EndTime.Sub(b.StartTime))
		bookingID = b.ID

		w = executeRequest("POST", "/v1/bookings", map[string]any{"field_id": fieldID, "date": tomorrow, "hour": 10}, rivalToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Concurrent Requests For One Slot", func(t *testing.T) {
		const n = 8
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := executeRequest("POST", "/v1/bookings", map[string]any{"field_id": fieldID, "date": tomorrow, "hour": 15}, rivalToken)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			default:
				assert.Equal(t, http.StatusConflict, code)
			}
		}
		assert.Equal(t, 1, created)
	})

	t.Run("Availability", func(t *testing.T) {
		w := executeRequest("GET", fmt.Sprintf("/v1/fields/%s/availability?date=%s", fieldID, tomorrow), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		a := decode[bookingHttp.AvailabilityResponse](t, w)
		require.Len(t, a.Slots, 15)
		for _, s := range a.Slots {
			want := "available"
			if s.Hour == 10 || s.Hour == 15 {
				want = "booked"
			}
			assert.Equal(t, want, s.Status, "hour %d", s.Hour)
		}
	})

	t.Run("Booking Visibility", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/"+bookingID, nil, rivalToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = executeRequest("GET", "/v1/bookings/"+bookingID, nil, managerToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = executeRequest("GET", fmt.Sprintf("/v1/venues/%s/bookings", venueID), nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), bookingID)

		w = executeRequest("GET", fmt.Sprintf("/v1/venues/%s/bookings", venueID), nil, playerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Payment Webhook", func(t *testing.T) {
		body := map[string]any{"booking_id": bookingID, "status": "paid"}

		w := executeRequest("POST", "/v1/payments/webhook", body, "", bookingHttp.WebhookSecretHeader, "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = executeRequest("POST", "/v1/payments/webhook", body, "", bookingHttp.WebhookSecretHeader, webhookSecret)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "paid", decode[bookingHttp.BookingResponse](t, w).PaymentStatus)

		w = executeRequest("POST", "/v1/payments/webhook", body, "", bookingHttp.WebhookSecretHeader, webhookSecret)
		assert.Equal(t, http.StatusConflict, w.Code, "paying twice is not a valid transition")
	})

	t.Run("Cancel Frees The Slot", func(t *testing.T) {
		w := executeRequest("POST", fmt.Sprintf("/v1/bookings/%s/cancel", bookingID), nil, rivalToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = executeRequest("POST", fmt.Sprintf("/v1/bookings/%s/cancel", bookingID), nil, playerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "cancelled", decode[bookingHttp.BookingResponse](t, w).BookingStatus)

		w = executeRequest("POST", "/v1/bookings", map[string]any{"field_id": fieldID, "date": tomorrow, "hour": 10}, rivalToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}
