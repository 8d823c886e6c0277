package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmailJSSend(t *testing.T) {
	var got emailJSRequest
	var method, ctype string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		ctype = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	relay := NewEmailJS("svc", "tpl", "pub", srv.URL)
	err := relay.Send(context.Background(), Form{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if method != http.MethodPost || ctype != "application/json" {
		t.Errorf("method = %s, content-type = %s", method, ctype)
	}
	if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "pub" {
		t.Errorf("credentials = %+v", got)
	}
	if got.TemplateParams != (templateParams{Name: "Ada", Email: "ada@example.com", Message: "Hi"}) {
		t.Errorf("template params = %+v", got.TemplateParams)
	}
}

func TestEmailJSSendRejected(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewEmailJS("s", "t", "bad", srv.URL).Send(context.Background(), Form{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "Public Key") {
		t.Errorf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want exactly one attempt", calls)
	}
}

func TestEmailJSCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewEmailJS("s", "t", "p", srv.URL).Send(ctx, Form{}); err == nil {
		t.Error("expected error for a cancelled context")
	}
}

func TestNewEmailJSDefaultEndpoint(t *testing.T) {
	if e := NewEmailJS("s", "t", "p", ""); e.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %q", e.Endpoint)
	}
}
