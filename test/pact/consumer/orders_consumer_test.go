//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/mohamedsham20017/ecommerce-website/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type orderPayload struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Product  string `json:"product"`
	Quantity int32  `json:"quantity"`
	Message  string `json:"message"`
}

func TestStorefrontOrdersContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	request := orderPayload{
		Date:     pacttest.OrderDate,
		Time:     "10 AM",
		Location: "Colombo",
		Product:  "Phone",
		Quantity: 2,
		Message:  "leave at the gate",
	}
	orderBodyMatcher := matchers.Map{
		"id":        matchers.Like(1),
		"reference": matchers.Term("ORD-000001", `ORD-\d{6}`),
		"owner":     matchers.S(pacttest.OwnerUsername),
		"date":      matchers.Term(pacttest.OrderDate, `\d{4}-\d{2}-\d{2}`),
		"time":      matchers.Term("10 AM", `10 AM|11 AM|12 PM`),
		"location":  matchers.Term("Colombo", `Colombo|Galle|Kandy`),
		"product":   matchers.Term("Phone", `Phone|Laptop|Tablet`),
		"quantity":  matchers.Like(2),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	sessionCookie := matchers.S("session_token=" + pacttest.SessionToken)

	pact.AddInteraction().
		Given(pacttest.StateSessionActive).
		UponReceiving("a request to submit an order").
		WithRequest("POST", "/api/v1/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.Header("Cookie", sessionCookie)
			b.JSONBody(matchers.Map{
				"date":     matchers.Term(request.Date, `\d{4}-\d{2}-\d{2}`),
				"time":     matchers.S(request.Time),
				"location": matchers.S(request.Location),
				"product":  matchers.S(request.Product),
				"quantity": matchers.Like(request.Quantity),
				"message":  matchers.Like(request.Message),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(orderBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderExists).
		UponReceiving("a request to list the caller's orders").
		WithRequest("GET", "/api/v1/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Cookie", sessionCookie)
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"orders": matchers.EachLike(orderBodyMatcher, 1),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateAnonymous).
		UponReceiving("an order listing without a session").
		WithRequest("GET", "/api/v1/orders").
		WillRespondWith(http.StatusUnauthorized, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/unauthorized"),
				"title":  matchers.S("Unauthorized"),
				"status": matchers.Like(http.StatusUnauthorized),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := &http.Client{Timeout: 5 * time.Second}
		base := fmt.Sprintf("http://%s:%d", config.Host, config.Port)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		body, err := json.Marshal(request)
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/v1/orders", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Cookie", "session_token="+pacttest.SessionToken)
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("submit order: unexpected status %d", resp.StatusCode)
		}

		req, err = http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/v1/orders", nil)
		if err != nil {
			return err
		}
		req.Header.Set("Cookie", "session_token="+pacttest.SessionToken)
		resp, err = client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("list orders: unexpected status %d", resp.StatusCode)
		}

		req, err = http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/v1/orders", nil)
		if err != nil {
			return err
		}
		resp, err = client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			return fmt.Errorf("anonymous listing: unexpected status %d", resp.StatusCode)
		}
		return nil
	})
	require.NoError(t, err)
}
