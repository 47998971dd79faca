package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/prepdeck/prepdeck/releases/latest" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"tag_name": tag,
			"html_url": "https://github.com/prepdeck/prepdeck/releases/tag/" + tag,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckUpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	c := NewChecker("prepdeck", "prepdeck").WithAPIBaseURL(srv.URL)

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.UpdateAvailable {
		t.Error("expected update available")
	}
	if res.LatestVersion != "v1.2.0" {
		t.Errorf("latest = %q", res.LatestVersion)
	}
}

func TestCheckAlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.1.0")
	c := NewChecker("prepdeck", "prepdeck").WithAPIBaseURL(srv.URL)

	res, err := c.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.UpdateAvailable {
		t.Error("expected no update for equal versions")
	}
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker("prepdeck", "prepdeck")
	if _, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"}); !errors.Is(err, ErrDevBuild) {
		t.Errorf("err = %v, want ErrDevBuild", err)
	}
}

func TestCheckBadTag(t *testing.T) {
	srv := releaseServer(t, "nightly")
	c := NewChecker("prepdeck", "prepdeck").WithAPIBaseURL(srv.URL)
	if _, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"}); err == nil {
		t.Fatal("expected invalid tag error")
	}
}
