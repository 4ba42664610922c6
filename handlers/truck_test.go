package handlers

import (
	"net/http"
	"testing"
)

func TestTruckDetailAggregate(t *testing.T) {
	router, _ := newTestApp(t)
	cookie := loginAs(t, router, "john_doe")

	rec := doRequest(router, http.MethodGet, "/truck/1", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeJSON(t, rec)

	truck, ok := body["truck"].(map[string]interface{})
	if !ok {
		t.Fatalf("truck payload missing: %v", body)
	}
	if truck["truck_number"] != "TRK-001" {
		t.Errorf("truck = %v, want TRK-001", truck["truck_number"])
	}

	drivers := body["drivers"].([]interface{})
	if len(drivers) != 2 {
		t.Errorf("got %d drivers, want 2", len(drivers))
	}

	location, ok := body["current_location"].(map[string]interface{})
	if !ok {
		t.Fatalf("current_location missing: %v", body["current_location"])
	}
	if location["latitude"] != 40.7128 {
		t.Errorf("latitude = %v, want 40.7128", location["latitude"])
	}

	history := body["travel_history"].([]interface{})
	if len(history) != 1 {
		t.Errorf("got %d history points, want 1", len(history))
	}

	detections := body["face_detections"].([]interface{})
	if len(detections) != 1 {
		t.Fatalf("got %d face detections, want 1", len(detections))
	}
	detection := detections[0].(map[string]interface{})
	if detection["driver_name"] != "Robert Johnson" {
		t.Errorf("driver_name = %v, want Robert Johnson", detection["driver_name"])
	}

	recordings := body["recordings"].([]interface{})
	if len(recordings) != 2 {
		t.Errorf("got %d recordings, want 2", len(recordings))
	}

	alerts := body["alerts"].([]interface{})
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2 (one unread, one read)", len(alerts))
	}
	var readCount int
	for _, raw := range alerts {
		if raw.(map[string]interface{})["is_read"] == true {
			readCount++
		}
	}
	if readCount != 1 {
		t.Errorf("got %d read alerts, want 1", readCount)
	}
}

func TestTruckDetailRequiresSession(t *testing.T) {
	router, _ := newTestApp(t)

	rec := doRequest(router, http.MethodGet, "/truck/1", nil, nil)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("anonymous truck view -> %d %q, want 303 /login", rec.Code, rec.Header().Get("Location"))
	}
}

func TestTruckDetailForeignTruck(t *testing.T) {
	router, _ := newTestApp(t)
	cookie := loginAs(t, router, "john_doe")

	// truck 3 belongs to jane_smith
	rec := doRequest(router, http.MethodGet, "/truck/3", nil, cookie)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("foreign truck -> %d %q, want 303 /dashboard", rec.Code, rec.Header().Get("Location"))
	}
}

func TestTruckDetailMissingTruck(t *testing.T) {
	router, _ := newTestApp(t)
	cookie := loginAs(t, router, "john_doe")

	// a missing truck is handled exactly like a foreign one
	rec := doRequest(router, http.MethodGet, "/truck/999", nil, cookie)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("missing truck -> %d %q, want 303 /dashboard", rec.Code, rec.Header().Get("Location"))
	}
}

func TestTruckDetailBadID(t *testing.T) {
	router, _ := newTestApp(t)
	cookie := loginAs(t, router, "john_doe")

	rec := doRequest(router, http.MethodGet, "/truck/not-a-number", nil, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
