package main

import (
	"context"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPubchemResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves formula and weight", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/compound/name/50-00-0/property/MolecularFormula,MolecularWeight/JSON", r.URL.Path)

			_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[{"CID":712,"MolecularFormula":"CH2O","MolecularWeight":"30.03"}]}}`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, "50-00-0")

		assert.NoError(t, err)
		assert.Equal(t, "50-00-0", result.CasNumber)
		assert.Equal(t, "CH2O", *result.MolecularFormula)
		assert.Equal(t, 30.03, *result.MolecularWeight)
	})

	t.Run("weight sent as json number", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[{"CID":5462310,"MolecularFormula":"C","MolecularWeight":12.011}]}}`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, "7782-42-5")

		assert.NoError(t, err)
		assert.Equal(t, "C", *result.MolecularFormula)
		assert.Equal(t, 12.011, *result.MolecularWeight)
	})

	t.Run("several compounds, first one wins", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[
				{"CID":712,"MolecularFormula":"CH2O","MolecularWeight":"30.03"},
				{"CID":713,"MolecularFormula":"C2H4O2","MolecularWeight":"60.05"}
			]}}`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, "50-00-0")

		assert.NoError(t, err)
		assert.Equal(t, "CH2O", *result.MolecularFormula)
		assert.Equal(t, 30.03, *result.MolecularWeight)
	})

	t.Run("unknown name is blank, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"Fault":{"Code":"PUGREST.NotFound","Message":"No CID found"}}`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, "UNKNOWN-999")

		assert.NoError(t, err)
		assert.Equal(t, "UNKNOWN-999", result.CasNumber)
		assert.Nil(t, result.MolecularFormula)
		assert.Nil(t, result.MolecularWeight)
		assert.False(t, result.Found())
	})

	t.Run("unparsable name is blank, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"Fault":{"Code":"PUGREST.BadRequest"}}`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, ";;;")

		assert.NoError(t, err)
		assert.False(t, result.Found())
	})

	t.Run("empty property list is blank", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[]}}`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, "50-00-0")

		assert.NoError(t, err)
		assert.False(t, result.Found())
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"Fault":{"Code":"PUGREST.ServerBusy"}}`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, "50-00-0")

		assert.ErrorIs(t, err, PubchemResponseError)
		assert.False(t, result.Found())
	})

	t.Run("malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>definitely not json</html>`))
		}))
		defer server.Close()

		resolver := NewPubchemResolver(server.URL)

		result, err := resolver.Resolve(ctx, "50-00-0")

		assert.ErrorIs(t, err, PubchemResponseError)
		assert.False(t, result.Found())
	})

	t.Run("unreachable server", func(t *testing.T) {
		resolver := NewPubchemResolver("http://127.0.0.1:1")

		result, err := resolver.Resolve(ctx, "50-00-0")

		assert.Error(t, err)
		assert.False(t, result.Found())
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelledCtx, cancel := context.WithCancel(context.Background())
		cancel()

		resolver := NewPubchemResolver(PubchemBaseUrl)

		result, err := resolver.Resolve(cancelledCtx, "50-00-0")

		assert.Error(t, err)
		assert.False(t, result.Found())
	})
}
