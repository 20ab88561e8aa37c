package server

import (
	"github.com/fernandosanchezjr/gomseq/config"
	"net/http/httptest"
	"testing"
)

func testService() *Service {
	return NewService(&config.Config{
		Sequences: []config.SequenceConfig{
			{Name: "preamble", Length: 3},
		},
	})
}

func get(t *testing.T, s *Service, path string) (int, string) {
	router := s.Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", path, nil))
	return recorder.Code, recorder.Body.String()
}

func TestGetSequence(t *testing.T) {
	s := testService()
	code, body := get(t, s, "/sequence/2")
	if code != 200 {
		t.Fatal("unexpected status:", code)
	}
	if body != "110\n" {
		t.Fatal("unexpected body:", body)
	}
	// second hit comes from the cache
	code, cachedBody := get(t, s, "/sequence/2")
	if code != 200 || cachedBody != body {
		t.Fatal("cached response mismatch")
	}
}

func TestGetSequenceErrors(t *testing.T) {
	s := testService()
	if code, _ := get(t, s, "/sequence/99"); code != 404 {
		t.Fatal("unexpected status:", code)
	}
	if code, _ := get(t, s, "/sequence/bogus"); code != 400 {
		t.Fatal("unexpected status:", code)
	}
}

func TestGetSymbols(t *testing.T) {
	s := testService()
	code, body := get(t, s, "/sequence/3/symbols/3")
	if code != 200 {
		t.Fatal("unexpected status:", code)
	}
	// m=3 default sequence bits 1110100 packed 3 at a time with wrap
	if body != "7\n2\n3\n" {
		t.Fatal("unexpected body:", body)
	}
	if code, _ := get(t, s, "/sequence/3/symbols/0"); code != 400 {
		t.Fatal("unexpected status:", code)
	}
}

func TestGetCustom(t *testing.T) {
	s := testService()
	code, body := get(t, s, "/custom/preamble")
	if code != 200 {
		t.Fatal("unexpected status:", code)
	}
	if body != "1110100\n" {
		t.Fatal("unexpected body:", body)
	}
	if code, _ := get(t, s, "/custom/nope"); code != 404 {
		t.Fatal("unexpected status:", code)
	}
}
