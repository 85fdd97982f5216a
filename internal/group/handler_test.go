package group

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hctsai/lunchgo/internal/localtime"
	"github.com/hctsai/lunchgo/internal/order"
	"github.com/hctsai/lunchgo/internal/sheet"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := sheet.NewMemoryStore()
	orderSvc := order.NewService(order.NewRepository(store))
	groupSvc := NewService(NewRepository(store), orderSvc)
	srv := httptest.NewServer(NewHandler(groupSvc, orderSvc).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, env
}

func TestGroupOrderFlow(t *testing.T) {
	srv := newTestServer(t)
	deadline := localtime.Now().Add(time.Hour).Format(time.RFC3339)

	// Open a group.
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/", &CreateGroupRequest{
		Name:     "Friday bento",
		Deadline: deadline,
		Menu:     []MenuItem{{Name: "Rice Box", Price: 80}},
	})
	if resp.StatusCode != http.StatusCreated || !env.Success {
		t.Fatalf("create group: status %d, success %v", resp.StatusCode, env.Success)
	}
	var g Group
	if err := json.Unmarshal(env.Data, &g); err != nil {
		t.Fatalf("decode group: %v", err)
	}

	// Add an order.
	resp, env = doJSON(t, http.MethodPost, fmt.Sprintf("%s/%s/orders", srv.URL, g.ID), &order.CreateOrderRequest{
		UserName: "Amy", ItemName: "Rice Box", BasePrice: 80, Quantity: 2,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add order: status %d, error %+v", resp.StatusCode, env.Error)
	}
	var o order.Order
	if err := json.Unmarshal(env.Data, &o); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if o.TotalPrice != 160 {
		t.Errorf("totalPrice = %d, want 160", o.TotalPrice)
	}

	// Group detail carries the order.
	resp, env = doJSON(t, http.MethodGet, fmt.Sprintf("%s/%s", srv.URL, g.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get group: status %d", resp.StatusCode)
	}
	var detail DetailResponse
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if len(detail.Orders) != 1 || detail.Orders[0].ID != o.ID {
		t.Errorf("detail orders = %+v, want the created order", detail.Orders)
	}
	if len(detail.Group.Menu) != 1 {
		t.Errorf("detail menu = %+v, want 1 item", detail.Group.Menu)
	}

	// Mark paid, then delete.
	resp, _ = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/%s/orders/%s/paid", srv.URL, g.ID, o.ID), &order.UpdatePaidRequest{Paid: true})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set paid: status %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/%s/orders/%s", srv.URL, g.ID, o.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete order: status %d", resp.StatusCode)
	}
}

func TestCreateGroupConflictStatus(t *testing.T) {
	srv := newTestServer(t)
	deadline := localtime.Now().Add(time.Hour).Format(time.RFC3339)

	if resp, _ := doJSON(t, http.MethodPost, srv.URL+"/", &CreateGroupRequest{Name: "first", Deadline: deadline}); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/", &CreateGroupRequest{Name: "second", Deadline: deadline})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("got status %d, want 409", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "CONFLICT" {
		t.Errorf("error = %+v, want CONFLICT", env.Error)
	}
}

func TestGroupNotFoundStatus(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}

	// Orders cannot be added to a missing group either.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/nope/orders", &order.CreateOrderRequest{
		UserName: "Amy", ItemName: "Rice Box", BasePrice: 80,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("add order to missing group: status %d, want 404", resp.StatusCode)
	}
}

func TestCreateGroupValidationStatus(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/", &CreateGroupRequest{Name: "no deadline"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "BAD_REQUEST" {
		t.Errorf("error = %+v, want BAD_REQUEST", env.Error)
	}
}
