//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bellebook/internal/domain/schedule"
	"bellebook/internal/infra"
	"bellebook/internal/infra/upstream"
	"bellebook/internal/pkg/config"
	"bellebook/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "bearer-token"

// stubUpstream fakes the marketplace core API: every payload is wrapped in
// the {success, data} envelope.
type stubUpstream struct {
	t        *testing.T
	handlers map[string]http.HandlerFunc
	requests []*http.Request
	bodies   []map[string]any
}

func newStubUpstream(t *testing.T) *stubUpstream {
	return &stubUpstream{t: t, handlers: map[string]http.HandlerFunc{}}
}

func (s *stubUpstream) on(method, path string, h http.HandlerFunc) {
	s.handlers[method+" "+path] = h
}

func (s *stubUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.requests = append(s.requests, r)
	var body map[string]any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	s.bodies = append(s.bodies, body)

	h, ok := s.handlers[r.Method+" "+r.URL.Path]
	if !ok {
		s.t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h(w, r)
}

func envelopeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func envelopeFail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}

func newTestClient(t *testing.T, stub *stubUpstream) (*upstream.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(stub)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger)
	return client, srv.Close
}

func TestCatalogGateway(t *testing.T) {
	t.Run("fetches the professional and forwards the bearer token", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodGet, "/users/pros/42", func(w http.ResponseWriter, _ *http.Request) {
			envelopeOK(w, map[string]any{
				"id":            42,
				"display_name":  "Amélie Laurent",
				"activity_name": "Nail artist",
				"city":          "Lyon",
				"avatar_url":    "https://cdn.example.com/avatars/42.jpg",
			})
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		pro, err := upstream.NewCatalogGateway(client).Professional(context.Background(), testToken, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), pro.ID)
		assert.Equal(t, "Amélie Laurent", pro.DisplayName)
		require.Len(t, stub.requests, 1)
		assert.Equal(t, "Bearer "+testToken, stub.requests[0].Header.Get("Authorization"))
	})

	t.Run("maps 404 to the not-found kind", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodGet, "/users/pros/999", func(w http.ResponseWriter, _ *http.Request) {
			envelopeFail(w, http.StatusNotFound, "pro not found")
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		_, err := upstream.NewCatalogGateway(client).Professional(context.Background(), testToken, 999)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("maps a bare 401 to the unauthenticated kind", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodGet, "/users/pros/42", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		_, err := upstream.NewCatalogGateway(client).Professional(context.Background(), testToken, 42)

		assert.True(t, infra.IsKind(err, infra.KindUnauthenticated))
	})

	t.Run("decodes the prestation list with the duration field", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodGet, "/prestations/pro/42", func(w http.ResponseWriter, _ *http.Request) {
			envelopeOK(w, []map[string]any{
				{"id": 7, "name": "Gel manicure", "price": 45.00, "duration": 60, "active": true},
				{"id": 8, "name": "Old polish", "price": 30.00, "duration": 30, "active": false},
			})
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		prestations, err := upstream.NewCatalogGateway(client).Prestations(context.Background(), testToken, 42)

		require.NoError(t, err)
		require.Len(t, prestations, 2)
		assert.Equal(t, 60, prestations[0].DurationMinutes)
		assert.False(t, prestations[1].Active)
	})
}

func TestAvailabilityGateway(t *testing.T) {
	t.Run("fetches the month index", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodGet, "/slots/available-dates/42/2025-06", func(w http.ResponseWriter, _ *http.Request) {
			envelopeOK(w, []string{"2025-06-10", "2025-06-12"})
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		month, err := schedule.ParseMonth("2025-06")
		require.NoError(t, err)
		dates, err := upstream.NewAvailabilityGateway(client).AvailableDates(context.Background(), testToken, 42, month)

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-06-10", "2025-06-12"}, dates)
	})

	t.Run("sorts the day index by start time", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodGet, "/slots/available/42/2025-06-12", func(w http.ResponseWriter, _ *http.Request) {
			envelopeOK(w, []map[string]any{
				{"id": 2, "time": "16:30", "duration": 60},
				{"id": 1, "time": "09:00", "duration": 60},
				{"id": 3, "time": "14:00", "duration": 60},
			})
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		slots, err := upstream.NewAvailabilityGateway(client).AvailableSlots(context.Background(), testToken, 42, "2025-06-12")

		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, []string{"09:00", "14:00", "16:30"}, []string{slots[0].Time, slots[1].Time, slots[2].Time})
	})

	t.Run("an empty day index is a valid result", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodGet, "/slots/available/42/2025-06-12", func(w http.ResponseWriter, _ *http.Request) {
			envelopeOK(w, []any{})
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		slots, err := upstream.NewAvailabilityGateway(client).AvailableSlots(context.Background(), testToken, 42, "2025-06-12")

		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestReservationGateway(t *testing.T) {
	slotID := int64(301)
	input := commands.CreateReservationInput{
		ProID:        42,
		PrestationID: 7,
		Start:        time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
		Price:        45.00,
		SlotID:       &slotID,
	}

	t.Run("sends the wire datetime format and decodes the snapshot", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodPost, "/reservations", func(w http.ResponseWriter, _ *http.Request) {
			envelopeOK(w, map[string]any{
				"id":                 501,
				"startDatetime":      "2025-06-10 14:00:00",
				"endDatetime":        "2025-06-10 15:00:00",
				"price":              45.00,
				"slot_id":            301,
				"deposit_percentage": 30,
				"deposit_amount":     13.50,
			})
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		snap, err := upstream.NewReservationGateway(client).CreateReservation(context.Background(), testToken, input)

		require.NoError(t, err)
		assert.Equal(t, int64(501), snap.ID)
		assert.Equal(t, 30, snap.DepositPercentage)
		assert.InDelta(t, 13.50, snap.DepositAmount, 0.001)
		assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), snap.StartAt)

		require.Len(t, stub.bodies, 1)
		body := stub.bodies[0]
		assert.Equal(t, "2025-06-10 14:00:00", body["startDatetime"])
		assert.Equal(t, "2025-06-10 15:00:00", body["endDatetime"])
		assert.EqualValues(t, 42, body["proId"])
		assert.EqualValues(t, 301, body["slotId"])
	})

	t.Run("surfaces the business-rule message on rejection", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodPost, "/reservations", func(w http.ResponseWriter, _ *http.Request) {
			envelopeFail(w, http.StatusUnprocessableEntity, "slot no longer available")
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		_, err := upstream.NewReservationGateway(client).CreateReservation(context.Background(), testToken, input)

		assert.True(t, infra.IsKind(err, infra.KindBusinessRule))
		assert.Equal(t, "slot no longer available", infra.KindMessage(err))
	})

	t.Run("creates the payment authorization with the derived type", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodPost, "/payments/intent", func(w http.ResponseWriter, _ *http.Request) {
			envelopeOK(w, map[string]any{"client_secret": "pi_3Abc_secret_xyz", "amount": 13.50})
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		snap, err := upstream.NewReservationGateway(client).CreatePaymentAuthorization(context.Background(), testToken, 501, "deposit")

		require.NoError(t, err)
		assert.Equal(t, "pi_3Abc_secret_xyz", snap.ClientSecret)
		assert.InDelta(t, 13.50, snap.Amount, 0.001)

		require.Len(t, stub.bodies, 1)
		assert.EqualValues(t, 501, stub.bodies[0]["reservationId"])
		assert.Equal(t, "deposit", stub.bodies[0]["type"])
	})

	t.Run("a 5xx is a plain unavailable failure", func(t *testing.T) {
		stub := newStubUpstream(t)
		stub.on(http.MethodPost, "/reservations", func(w http.ResponseWriter, _ *http.Request) {
			envelopeFail(w, http.StatusInternalServerError, "")
		})
		client, closeFn := newTestClient(t, stub)
		defer closeFn()

		_, err := upstream.NewReservationGateway(client).CreateReservation(context.Background(), testToken, input)

		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}
