package pwa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_SoloDosXXConOKTrueEsEntregado(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"201 ok:true", http.StatusCreated, `{"ok":true,"id":1}`, nil},
		{"200 ok:true", http.StatusOK, `{"ok":true,"id":2}`, nil},
		{"400 ok:false", http.StatusBadRequest, `{"ok":false,"code":"VALIDATION"}`, ErrSendFailed},
		{"500 ok:false", http.StatusInternalServerError, `{"ok":false,"code":"INTERNAL"}`, ErrSendFailed},
		{"200 pero ok:false", http.StatusOK, `{"ok":false}`, ErrNotAccepted},
		{"200 sin flag ok", http.StatusOK, `{"id":3}`, ErrNotAccepted},
		{"200 con cuerpo no JSON", http.StatusOK, `<html>portal cautivo</html>`, ErrNotAccepted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := NewSubmitter(srv.URL).Submit(context.Background(), RecordFromForm(formValues("1", "7", "1")))
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestSubmit_RedCaidaEsErrSendFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := NewSubmitter(srv.URL).Submit(context.Background(), RecordFromForm(formValues("1", "7", "1")))
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSubmit_MandaCabecerasDeTrazabilidad(t *testing.T) {
	var gotPWA, gotLocalID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPWA = r.Header.Get("X-Keg-PWA")
		gotLocalID = r.Header.Get("X-Local-Id")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "id": 1})
	}))
	defer srv.Close()

	rec := RecordFromForm(formValues("1", "7", "1"))
	require.NoError(t, NewSubmitter(srv.URL).Submit(context.Background(), rec))
	assert.Equal(t, "1", gotPWA)
	assert.Equal(t, rec.LocalID, gotLocalID)
}

func TestProbe_SinCacheYOffline(t *testing.T) {
	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))

	probe := NewProbe(srv.URL)
	assert.True(t, probe.Online(context.Background()))
	assert.Equal(t, "no-cache", gotCacheControl, "la sonda no debe servirse de caché")

	srv.Close()
	assert.False(t, probe.Online(context.Background()), "servidor caído cuenta como offline")
}
