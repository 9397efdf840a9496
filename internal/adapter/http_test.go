// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) RemoteDataSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPRemoteDataSource(HTTPClientConfig{BaseURL: srv.URL})
}

func TestGetShares_DecodesEnvelopeAndSendsAuth(t *testing.T) {
	var gotAuth, gotAccount string
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccount = r.Header.Get("X-Account-ID")
		require.Equal(t, "/pass/v1/share", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Code":1000,"Shares":[{"ShareID":"s1","VaultID":"v1","Permission":7}]}`))
	})
	src.SetSessionToken("acc1", "tok-123")

	shares, err := src.GetShares(context.Background(), "acc1")
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "s1", shares[0].ShareID)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "acc1", gotAccount)
}

func TestGetShareEvents_Page(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pass/v1/share/s1/event/c1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Code":1000,"Events":{"LatestEventID":"c2","EventsPending":true,
			"UpdatedItems":[{"ItemID":"i1","Revision":2}],"DeletedItemIDs":["i9"]}}`))
	})

	events, err := src.GetShareEvents(context.Background(), "acc1", "s1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c2", events.LatestEventID)
	assert.True(t, events.EventsPending)
	require.Len(t, events.UpdatedItems, 1)
	assert.Equal(t, int64(2), events.UpdatedItems[0].Revision)
	assert.Equal(t, []string{"i9"}, events.DeletedItemIDs)
}

func TestGetShareKeys_StampsShareID(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Code":1000,"ShareKeys":{"Keys":[
			{"KeyRotation":1,"Key":"a"},{"KeyRotation":2,"Key":"b"}]}}`))
	})

	keys, err := src.GetShareKeys(context.Background(), "acc1", "s1")
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "s1", keys[0].ShareID)
	assert.Equal(t, "s1", keys[1].ShareID)
}

func TestMapAPIError_DisabledShareCode(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"Code":300004,"Error":"share is disabled"}`))
	})

	_, err := src.GetShareEvents(context.Background(), "acc1", "s1", "c1")
	require.Error(t, err)
	assert.True(t, IsDisabledShare(err))
	assert.False(t, Is5xx(err))
}

func TestMapAPIError_ServerError5xx(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := src.GetShares(context.Background(), "acc1")
	require.Error(t, err)
	assert.True(t, Is5xx(err))

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadGateway, serverErr.HTTPStatus)
}

func TestMapAPIError_Unauthorized(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := src.GetAccess(context.Background(), "acc1")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestTransportFailure_MapsToNetworkUnavailable(t *testing.T) {
	src := NewHTTPRemoteDataSource(HTTPClientConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := src.GetShares(context.Background(), "acc1")
	assert.True(t, errors.Is(err, ErrNetworkUnavailable))
}
