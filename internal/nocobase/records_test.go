package nocobase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newFakeRecordServer serves an in-memory test1 collection with the
// create/list/get/update/destroy actions.
func newFakeRecordServer() *httptest.Server {
	store := map[string]map[string]any{}
	nextID := 0

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}
	notFound := func(w http.ResponseWriter) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"errors": []map[string]any{{"message": "record not found"}},
		})
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pk := r.URL.Query().Get("filterByTk")
		switch r.URL.Path {
		case "/test1:create":
			var values map[string]any
			json.NewDecoder(r.Body).Decode(&values)
			nextID++
			record := map[string]any{"id": nextID}
			for k, v := range values {
				record[k] = v
			}
			store[fmt.Sprint(nextID)] = record
			writeJSON(w, http.StatusOK, map[string]any{"data": record})
		case "/test1:list":
			rows := make([]map[string]any, 0, len(store))
			for _, rec := range store {
				rows = append(rows, rec)
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"data": rows,
				"meta": map[string]any{"count": len(rows)},
			})
		case "/test1:get":
			record, ok := store[pk]
			if !ok {
				notFound(w)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"data": record})
		case "/test1:update":
			record, ok := store[pk]
			if !ok {
				notFound(w)
				return
			}
			var values map[string]any
			json.NewDecoder(r.Body).Decode(&values)
			if wrapped, ok := values["values"].(map[string]any); ok {
				values = wrapped
			}
			for k, v := range values {
				record[k] = v
			}
			// Some server versions answer update with a list.
			writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{record}})
		case "/test1:destroy":
			if _, ok := store[pk]; !ok {
				notFound(w)
				return
			}
			delete(store, pk)
			writeJSON(w, http.StatusOK, map[string]any{"data": 1})
		default:
			notFound(w)
		}
	}))
}

func TestClient_RecordRoundTrip(t *testing.T) {
	server := newFakeRecordServer()
	defer server.Close()

	client := testClient(t, server.URL)
	ctx := context.Background()

	created, err := client.Create(ctx, "test1", Values{"name": "a"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	rows := created.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected one created row, got %v", created)
	}
	id, ok := rows[0]["id"].(float64)
	if !ok {
		t.Fatalf("expected numeric id, got %v", rows[0]["id"])
	}

	got, err := client.Get(ctx, "test1", id, nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Rows()[0]["name"] != "a" {
		t.Errorf("expected name=a, got %v", got.Rows()[0]["name"])
	}

	updated, err := client.Update(ctx, "test1", id, Values{"name": "b"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if rows := updated.Rows(); len(rows) != 1 || rows[0]["name"] != "b" {
		t.Errorf("expected updated row with name=b, got %v", updated)
	}

	listed, err := client.List(ctx, "test1", Params{"pageSize": 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed.Rows()) != 1 {
		t.Errorf("expected one listed row, got %v", listed)
	}
	if meta := listed.Meta(); meta == nil || meta["count"] != 1.0 {
		t.Errorf("expected count=1 in meta, got %v", listed.Meta())
	}

	if _, err := client.Destroy(ctx, "test1", id); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}

	_, err = client.Get(ctx, "test1", id, nil)
	if !IsNotFound(err) {
		t.Errorf("expected not-found after destroy, got %v", err)
	}
}

func TestClient_InputValidation(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"data": null}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"create empty collection", func() error { _, err := client.Create(ctx, "", Values{"a": 1}); return err }, ErrEmptyCollection},
		{"create empty values", func() error { _, err := client.Create(ctx, "test1", nil); return err }, ErrEmptyValues},
		{"list empty collection", func() error { _, err := client.List(ctx, "", nil); return err }, ErrEmptyCollection},
		{"get empty pk", func() error { _, err := client.Get(ctx, "test1", "", nil); return err }, ErrEmptyPK},
		{"get nil pk", func() error { _, err := client.Get(ctx, "test1", nil, nil); return err }, ErrEmptyPK},
		{"update empty values", func() error { _, err := client.Update(ctx, "test1", 1, Values{}); return err }, ErrEmptyValues},
		{"destroy blank pk", func() error { _, err := client.Destroy(ctx, "test1", " "); return err }, ErrEmptyPK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if requests != 0 {
		t.Errorf("expected no requests for rejected input, got %d", requests)
	}
}

func TestClient_Create_SingleShape(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": [{"message": "bad values"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Create(context.Background(), "test1", Values{"name": "a"})
	if err == nil {
		t.Fatal("expected error")
	}
	if requests != 1 {
		t.Errorf("expected single attempt, got %d", requests)
	}
}

func TestClient_Destroy_SingleShape(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": [{"message": "bad request"}]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Destroy(context.Background(), "test1", 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if requests != 1 {
		t.Errorf("expected single attempt, got %d", requests)
	}
}

func TestClient_Get_MergesParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("filterByTk") != "5" {
			t.Errorf("expected filterByTk=5, got %q", q.Get("filterByTk"))
		}
		if q.Get("appends") != "tags" {
			t.Errorf("expected appends=tags, got %q", q.Get("appends"))
		}
		w.Write([]byte(`{"data": {"id": 5}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	if _, err := client.Get(context.Background(), "test1", 5, Params{"appends": "tags"}); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}
