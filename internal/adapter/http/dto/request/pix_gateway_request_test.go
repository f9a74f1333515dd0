package request

import "testing"

func TestPixGatewayRequest_ToCustomer(t *testing.T) {
	r := PixGatewayRequest{
		OrderID: "ord_1",
		Amount:  25.50,
		Customer: PixGatewayCustomerRequest{
			Name:     "Maria Silva",
			Email:    "maria@example.com",
			Phone:    "(11) 99999-8888",
			Document: "12345678909",
		},
	}

	c := r.ToCustomer()
	if c.Name != "Maria Silva" || c.Email != "maria@example.com" {
		t.Fatalf("unexpected customer: %+v", c)
	}
	if c.Phone != "(11) 99999-8888" {
		t.Fatalf("phone must pass through untouched, got %q", c.Phone)
	}
	if c.Document != "12345678909" {
		t.Fatalf("unexpected document: %q", c.Document)
	}
}

func TestPlaceOrderRequest_ToCustomer(t *testing.T) {
	var r PlaceOrderRequest
	r.Amount = 59.90
	r.Customer.Name = "João"
	r.Customer.Phone = "11988887777"

	c := r.ToCustomer()
	if c.Name != "João" || c.Phone != "11988887777" {
		t.Fatalf("unexpected customer: %+v", c)
	}
	if c.Email != "" || c.Document != "" {
		t.Fatalf("optional fields must stay empty: %+v", c)
	}
}
