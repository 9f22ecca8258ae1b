package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantToken string
		wantLink  string
		wantOk    bool
	}{
		{"token and link", "abc123#https://example.com/page", "abc123", "https://example.com/page", true},
		{"no separator", "off", "", "", false},
		{"empty response", "", "", "", false},
		{"empty token", "#https://example.com", "", "", false},
		{"empty link", "abc123#", "", "", false},
		{"separator only", "#", "", "", false},
		{"link keeps later separators", "tok#https://example.com/#anchor", "tok", "https://example.com/#anchor", true},
		{"whitespace token is kept verbatim", " #link", " ", "link", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, link, ok := Parse(tt.response)
			if ok != tt.wantOk {
				t.Fatalf("Parse() ok = %v, want %v", ok, tt.wantOk)
			}
			if token != tt.wantToken {
				t.Errorf("Parse() token = %q, want %q", token, tt.wantToken)
			}
			if link != tt.wantLink {
				t.Errorf("Parse() link = %q, want %q", link, tt.wantLink)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("os") == "" {
			t.Error("missing os query param")
		}
		if r.URL.Query().Get("lng") == "" {
			t.Error("missing lng query param")
		}
		w.Write([]byte("tok#https://example.com"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	body, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if body != "tok#https://example.com" {
		t.Errorf("Fetch() = %q", body)
	}
}

func TestFetchNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch() expected error on 500")
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch() expected error on closed server")
	}
}

func TestLanguage(t *testing.T) {
	orig := lookupEnv
	defer func() { lookupEnv = orig }()

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"none set", map[string]string{}, "en"},
		{"plain LANG", map[string]string{"LANG": "de"}, "de"},
		{"LANG with region", map[string]string{"LANG": "pt_BR.UTF-8"}, "pt"},
		{"LC_ALL wins", map[string]string{"LC_ALL": "fr_FR", "LANG": "de_DE"}, "fr"},
		{"empty value skipped", map[string]string{"LC_ALL": "", "LANG": "es_ES"}, "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookupEnv = func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}
			if got := language(); got != tt.want {
				t.Errorf("language() = %q, want %q", got, tt.want)
			}
		})
	}
}
