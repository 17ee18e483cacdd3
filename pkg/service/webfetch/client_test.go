package webfetch_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dt-bots/kotori/pkg/service/webfetch"
	"github.com/m-mizutani/gt"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"kotori","count":3}`)
	}))
	defer srv.Close()

	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	c := webfetch.New()
	gt.NoError(t, c.GetJSON(context.Background(), srv.URL, nil, &out))
	gt.Equal(t, out.Name, "kotori")
	gt.Equal(t, out.Count, 3)
}

func TestGetRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := webfetch.New()
	_, err := c.Get(context.Background(), srv.URL, nil)
	gt.Error(t, err)
}

func TestUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "{}")
	}))
	defer srv.Close()

	t.Run("pinned agent is sent", func(t *testing.T) {
		c := webfetch.New(webfetch.WithUserAgent("kotori-test/1.0"))
		var out map[string]any
		gt.NoError(t, c.GetJSON(context.Background(), srv.URL, nil, &out))
		gt.Equal(t, gotUA, "kotori-test/1.0")
	})

	t.Run("caller headers win", func(t *testing.T) {
		c := webfetch.New(webfetch.WithUserAgent("kotori-test/1.0"))
		header := http.Header{"User-Agent": []string{"explicit/2.0"}}
		var out map[string]any
		gt.NoError(t, c.GetJSON(context.Background(), srv.URL, header, &out))
		gt.Equal(t, gotUA, "explicit/2.0")
	})

	t.Run("default agent is never empty", func(t *testing.T) {
		c := webfetch.New()
		var out map[string]any
		gt.NoError(t, c.GetJSON(context.Background(), srv.URL, nil, &out))
		gt.True(t, gotUA != "")
	})
}

func TestGetHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Hello</title></head><body></body></html>`)
	}))
	defer srv.Close()

	c := webfetch.New()
	doc, err := c.GetHTML(context.Background(), srv.URL)
	gt.NoError(t, err)
	gt.Equal(t, doc.Find("title").Text(), "Hello")
}

func TestGetJSONMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{broken`)
	}))
	defer srv.Close()

	c := webfetch.New()
	var out map[string]any
	gt.Error(t, c.GetJSON(context.Background(), srv.URL, nil, &out))
}
