package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func renderPage(t *testing.T, serve func(http.ResponseWriter, *http.Request), target string) string {
	t.Helper()
	rr := httptest.NewRecorder()
	serve(rr, httptest.NewRequest("GET", target, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("page returned %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
	return rr.Body.String()
}

func TestIndexRedirectsToDashboard(t *testing.T) {
	h := NewHandler()
	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("redirect target %q", loc)
	}
}

func TestLoginPage(t *testing.T) {
	body := renderPage(t, NewHandler().Login, "/login")
	for _, want := range []string{"/api/login", "rememberMe", "password"} {
		if !strings.Contains(body, want) {
			t.Errorf("login page missing %q", want)
		}
	}
}

func TestDashboardPage(t *testing.T) {
	body := renderPage(t, NewHandler().Dashboard, "/dashboard")
	for _, want := range []string{
		"/api/entries",
		"Search by email or mobile",
		// search filters by gmail OR mobile
		"entry.mobileNumber.includes(term)",
		// masked passwords and the copy template
		"repeat(entry.password.length)",
		"ZOOM PRO",
		"Thank you for choosing *LSBD*.",
		// delete confirmation and the 2s copied indicator
		"Are you sure you want to delete this entry?",
		"2000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard page missing %q", want)
		}
	}
}

func TestAddPage(t *testing.T) {
	body := renderPage(t, NewHandler().Add, "/add")
	for _, want := range []string{
		"/api/entries",
		// end date derives from start date + 14 days
		"endDate.getDate() + 14",
		"startDate",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("add page missing %q", want)
		}
	}
}
