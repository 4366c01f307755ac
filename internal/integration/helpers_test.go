package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":   {},
	"requestId":   {},
	"createdAt":   {},
	"paidAt":      {},
	"cancelledAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for i := range cookies {
		req.AddCookie(&cookies[i])
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	t.Helper()

	query, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(query))
	require.NoError(t, err, "failed to execute %s", path)
}

// userSessionCookies selects the given user through the session endpoint and
// returns the cookies identifying that session.
func userSessionCookies(t testing.TB, testApp *TestApp, userId int) []http.Cookie {
	t.Helper()

	body := strings.NewReader(fmt.Sprintf(`{"userId": %d}`, userId))
	req, err := prepareRequest(http.MethodPost, "/session", body, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := rec.Result()
	defer res.Body.Close()

	cookies := make([]http.Cookie, 0, len(res.Cookies()))
	for _, c := range res.Cookies() {
		cookies = append(cookies, *c)
	}
	require.NotEmpty(t, cookies)

	return cookies
}

func userLoyaltyPoints(t testing.TB, db *pgxpool.Pool, userId int) int {
	t.Helper()

	var points int
	err := db.QueryRow(context.Background(),
		`SELECT loyalty_points FROM users WHERE id = $1`, userId).Scan(&points)
	require.NoError(t, err)

	return points
}

// activeBookingsForSeat counts CREATED or PAID bookings holding the seat.
func activeBookingsForSeat(t testing.TB, db *pgxpool.Pool, screeningId, seatId int) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), `
		SELECT COUNT(*)
		FROM booking_items bi
		JOIN bookings b ON b.id = bi.booking_id
		WHERE b.screening_id = $1 AND bi.seat_id = $2 AND b.status IN ('CREATED', 'PAID')`,
		screeningId, seatId).Scan(&count)
	require.NoError(t, err)

	return count
}
