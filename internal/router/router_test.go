package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vecear/Catlog-sub000/internal/router"
)

func TestHTTP_EndToEnd_CareFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	carerID := "carer-1"
	strangerID := "stranger-1"

	// 1) Owner registers the pet
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":     "Michi",
		"species":  "cat",
		"sex":      "female",
		"timezone": "UTC",
	})

	// 2) A stranger cannot see it
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, strangerID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for stranger, got %d", st)
		}
	}

	// 3) Owner registers two caregivers; one is linked to a user account
	addCaregiver(t, ts.URL, ownerID, petID, map[string]any{
		"name":    "Ana",
		"user_id": carerID,
		"color":   "#e91e63",
	})
	addCaregiver(t, ts.URL, ownerID, petID, map[string]any{
		"name": "Luis",
	})

	// 4) Duplicate caregiver names are rejected
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/caregivers", ownerID, map[string]any{
			"name": "Ana",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for duplicate caregiver name, got %d", st)
		}
	}

	// 5) The linked caregiver can now see the pet
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, carerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet by caregiver, got %d body=%s", st, string(body))
		}
	}

	now := time.Now().UTC()

	// 6) Ana logs a dirty litter visit (4 pts), Luis a feeding (2 pts)
	eventID := createCareEvent(t, ts.URL, carerID, petID, map[string]any{
		"occurred_at":  now.UnixMilli(),
		"author":       "Ana",
		"actions":      map[string]any{"litter": true},
		"stool_type":   "FORMED",
		"urine_status": "HAS_URINE",
	})
	createCareEvent(t, ts.URL, ownerID, petID, map[string]any{
		"occurred_at": now.UnixMilli(),
		"author":      "Luis",
		"actions":     map[string]any{"food": true},
	})

	// 7) An event without any action or weight is rejected
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care/events", ownerID, map[string]any{
			"occurred_at": now.UnixMilli(),
			"author":      "Ana",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty event, got %d", st)
		}
	}

	// 8) Litter without stool/urine details (and not marked clean) is rejected
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care/events", ownerID, map[string]any{
			"occurred_at": now.UnixMilli(),
			"author":      "Ana",
			"actions":     map[string]any{"litter": true},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for litter without details, got %d", st)
		}
	}

	// 9) A stranger cannot log events
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care/events", strangerID, map[string]any{
			"occurred_at": now.UnixMilli(),
			"author":      "Ana",
			"actions":     map[string]any{"food": true},
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create event by stranger, got %d", st)
		}
	}

	// 10) Scoreboard: Ana 4, Luis 2, Ana wins the running week
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/care/scoreboard", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 scoreboard, got %d body=%s", st, string(body))
		}

		var resp struct {
			Week    map[string]int `json:"week"`
			AllTime map[string]int `json:"all_time"`
			Winner  struct {
				Type  string `json:"type"`
				Name  string `json:"name"`
				Score int    `json:"score"`
			} `json:"winner"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal scoreboard: %v body=%s", err, string(body))
		}
		if resp.Week["Ana"] != 4 || resp.Week["Luis"] != 2 {
			t.Fatalf("unexpected week totals: %+v", resp.Week)
		}
		if resp.AllTime["Ana"] != 4 || resp.AllTime["Luis"] != 2 {
			t.Fatalf("unexpected all-time totals: %+v", resp.AllTime)
		}
		if resp.Winner.Type != "winner" || resp.Winner.Name != "Ana" || resp.Winner.Score != 4 {
			t.Fatalf("unexpected winner: %+v", resp.Winner)
		}
	}

	// 11) Day status covers today: food was marked once, litter once
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/care/day-status", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 day-status, got %d body=%s", st, string(body))
		}

		var resp map[string]struct {
			Morning    bool `json:"morning"`
			Noon       bool `json:"noon"`
			Evening    bool `json:"evening"`
			Bedtime    bool `json:"bedtime"`
			IsComplete bool `json:"is_complete"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal day-status: %v body=%s", err, string(body))
		}

		food, ok := resp["food"]
		if !ok {
			t.Fatalf("day-status missing food category: %s", string(body))
		}
		if !(food.Morning || food.Noon || food.Evening || food.Bedtime) {
			t.Fatalf("expected one food period marked: %+v", food)
		}
		if food.IsComplete {
			t.Fatalf("food must not be complete after one visit")
		}
		if water := resp["water"]; water.Morning || water.Noon || water.Evening || water.Bedtime {
			t.Fatalf("water must be untouched: %+v", water)
		}
	}

	// 12) Monthly log groups both events under today
	{
		path := fmt.Sprintf("/pets/%s/care/log?year=%d&month=%d", petID, now.Year(), int(now.Month()))
		st, body := doReq(t, ts.URL, "GET", path, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 month log, got %d body=%s", st, string(body))
		}

		var resp struct {
			Days []struct {
				Date   string           `json:"date"`
				Events []map[string]any `json:"events"`
			} `json:"days"`
			TotalDays int `json:"total_days"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal month log: %v body=%s", err, string(body))
		}
		if resp.TotalDays != 1 || len(resp.Days) != 1 {
			t.Fatalf("expected one day group, got %+v", resp)
		}
		if len(resp.Days[0].Events) != 2 {
			t.Fatalf("expected 2 events in the day group, got %d", len(resp.Days[0].Events))
		}
	}

	// 13) The caregiver deletes their own entry
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID+"/care/events/"+eventID, carerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete event, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/care/events", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list events, got %d", st)
		}
		var events []map[string]any
		_ = json.Unmarshal(body, &events)
		if len(events) != 1 {
			t.Fatalf("expected 1 remaining event, got %d", len(events))
		}
	}
}

func TestHTTP_CreatePet_RejectsBadTimezone(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/pets", "owner-1", map[string]any{
		"name":     "Michi",
		"timezone": "Mars/Olympus",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown timezone, got %d", st)
	}
}

func TestHTTP_Unauthenticated(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func addCaregiver(t *testing.T, baseURL, ownerID, petID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID+"/caregivers", ownerID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add caregiver, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("add caregiver: missing id body=%s", string(body))
	}
	return resp.ID
}

func createCareEvent(t *testing.T, baseURL, userID, petID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID+"/care/events", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create care event, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create care event: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
