package usecase_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestHandleIPLookup(t *testing.T) {
	t.Run("primary provider succeeds", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"city":"Tokyo","region":"Tokyo","country":"JP","loc":"35.6,139.7","org":"AS1 Example","timezone":"Asia/Tokyo"}`)
		}))
		defer primary.Close()

		fake := &fakeSlack{}
		endpoints := usecase.DefaultEndpoints()
		endpoints.IPInfo = primary.URL
		c := newCommands(fake, usecase.WithEndpoints(endpoints))

		gt.NoError(t, c.HandleIPLookup(context.Background(), usecase.Request{Args: "1.1.1.1", ChannelID: "C1"}))

		text := fake.lastText()
		gt.True(t, strings.Contains(text, "Tokyo"))
		gt.True(t, strings.Contains(text, "Organization: AS1 Example"))
	})

	t.Run("secondary provider attempted when primary fails", func(t *testing.T) {
		var secondaryHits atomic.Int32

		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer primary.Close()
		secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secondaryHits.Add(1)
			fmt.Fprint(w, `{"city":"Berlin","region":"Berlin","country_name":"Germany","org":"Example ISP"}`)
		}))
		defer secondary.Close()

		fake := &fakeSlack{}
		endpoints := usecase.DefaultEndpoints()
		endpoints.IPInfo = primary.URL
		endpoints.IPAPI = secondary.URL
		c := newCommands(fake, usecase.WithEndpoints(endpoints))

		gt.NoError(t, c.HandleIPLookup(context.Background(), usecase.Request{Args: "1.1.1.1", ChannelID: "C1"}))

		gt.Equal(t, secondaryHits.Load(), int32(1))
		text := fake.lastText()
		gt.True(t, strings.Contains(text, "Berlin"))
		gt.True(t, strings.Contains(text, "ISP: Example ISP"))
	})

	t.Run("both providers failing yields the generic message", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer broken.Close()

		fake := &fakeSlack{}
		endpoints := usecase.DefaultEndpoints()
		endpoints.IPInfo = broken.URL
		endpoints.IPAPI = broken.URL
		c := newCommands(fake, usecase.WithEndpoints(endpoints))

		gt.NoError(t, c.HandleIPLookup(context.Background(), usecase.Request{Args: "1.1.1.1", ChannelID: "C1"}))
		gt.Equal(t, fake.lastText(), "IP lookup failed :( Please try again later.")
	})

	t.Run("provider-level error objects trigger the fallback", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error":{"title":"Wrong ip","message":"Please provide a valid IP address"}}`)
		}))
		defer primary.Close()
		secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error":true,"reason":"Invalid IP Address"}`)
		}))
		defer secondary.Close()

		fake := &fakeSlack{}
		endpoints := usecase.DefaultEndpoints()
		endpoints.IPInfo = primary.URL
		endpoints.IPAPI = secondary.URL
		c := newCommands(fake, usecase.WithEndpoints(endpoints))

		gt.NoError(t, c.HandleIPLookup(context.Background(), usecase.Request{Args: "nonsense", ChannelID: "C1"}))
		gt.Equal(t, fake.lastText(), "IP lookup failed :( Please try again later.")
	})

	t.Run("missing argument returns usage without any fetch", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		fake := &fakeSlack{}
		endpoints := usecase.DefaultEndpoints()
		endpoints.IPInfo = srv.URL
		endpoints.IPAPI = srv.URL
		c := newCommands(fake, usecase.WithEndpoints(endpoints))

		gt.NoError(t, c.HandleIPLookup(context.Background(), usecase.Request{ChannelID: "C1"}))
		gt.Equal(t, hits.Load(), int32(0))
		gt.True(t, strings.Contains(fake.lastText(), "Usage: `/ip 1.1.1.1`"))
	})
}
