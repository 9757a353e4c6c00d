package renderer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SeakMengs/CardProof/internal/config"
)

func newTestRenderer(t *testing.T, handler http.HandlerFunc, testMode bool) (*DocRaptorRenderer, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	r := NewDocRaptor(config.DocRaptorConfig{
		API_KEY:   "test-key",
		BASE_URL:  srv.URL,
		TEST_MODE: testMode,
	}, nil)

	return r, srv
}

func TestCreateDocSubmitsDocument(t *testing.T) {
	var got Document
	r, _ := newTestRenderer(t, func(w http.ResponseWriter, req *http.Request) {
		user, _, ok := req.BasicAuth()
		if !ok || user != "test-key" {
			t.Errorf("expected API key as basic auth username, got %q", user)
		}
		if req.URL.Path != "/docs" {
			t.Errorf("expected POST /docs, got %s", req.URL.Path)
		}
		if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.Write([]byte("%PDF-1.7 fake"))
	}, false)

	pdf, err := r.CreateDoc(context.Background(), "", Document{
		Name:            "card_test.pdf",
		DocumentType:    "pdf",
		DocumentContent: "<html></html>",
		PrinceOptions:   &PrinceOptions{CSSDPI: 300, Profile: "PDF/X-4"},
	})
	if err != nil {
		t.Fatalf("CreateDoc returned error: %v", err)
	}

	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Errorf("expected PDF bytes back, got %q", pdf)
	}
	if got.DocumentType != "pdf" || got.Name != "card_test.pdf" {
		t.Errorf("unexpected document submitted: %+v", got)
	}
	if got.PrinceOptions == nil || got.PrinceOptions.Profile != "PDF/X-4" || got.PrinceOptions.CSSDPI != 300 {
		t.Errorf("prince options not forwarded: %+v", got.PrinceOptions)
	}
	if got.Test {
		t.Error("test mode should be off when neither request nor config asks for it")
	}
}

func TestCreateDocForcesTestMode(t *testing.T) {
	var got Document
	r, _ := newTestRenderer(t, func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&got)
		w.Write([]byte("%PDF-1.7 fake"))
	}, true)

	_, err := r.CreateDoc(context.Background(), "", Document{DocumentType: "pdf", Test: false})
	if err != nil {
		t.Fatalf("CreateDoc returned error: %v", err)
	}
	if !got.Test {
		t.Error("config TEST_MODE must force the submitted document into test mode")
	}
}

func TestCreateDocSurfacesAPIError(t *testing.T) {
	r, _ := newTestRenderer(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"invalid profile"}`))
	}, false)

	_, err := r.CreateDoc(context.Background(), "", Document{DocumentType: "pdf"})
	if err == nil {
		t.Fatal("expected an error for non-200 response")
	}
	if !strings.Contains(err.Error(), "422") || !strings.Contains(err.Error(), "invalid profile") {
		t.Errorf("error should carry status and body, got: %v", err)
	}
}

func TestCreateDocRequiresAPIKey(t *testing.T) {
	r := NewDocRaptor(config.DocRaptorConfig{BASE_URL: "http://127.0.0.1:0"}, nil)

	if _, err := r.CreateDoc(context.Background(), "", Document{}); err == nil {
		t.Fatal("expected an error when no API key is configured")
	}

	// A per-request key satisfies the requirement.
	srvHit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		srvHit = true
		w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	withKey := NewDocRaptor(config.DocRaptorConfig{BASE_URL: srv.URL}, nil)
	if _, err := withKey.CreateDoc(context.Background(), "user-key", Document{}); err != nil {
		t.Fatalf("CreateDoc with per-request key returned error: %v", err)
	}
	if !srvHit {
		t.Error("expected the request to reach the server")
	}
}
