package customer

import "testing"

func TestDecodeInfoCaseInsensitiveKeys(t *testing.T) {
	cases := []string{
		`{"ClientID":"X","Status":"Active"}`,
		`{"clientid":"X","status":"Active"}`,
		`{"CLIENTID":"X","STATUS":"Active"}`,
		`{"clientId":"X","status":"Active"}`,
	}
	for _, body := range cases {
		info, err := decodeInfo([]byte(body))
		if err != nil {
			t.Fatalf("body %s: %v", body, err)
		}
		if info.ClientID != "X" {
			t.Fatalf("body %s: expected ClientID X, got %q", body, info.ClientID)
		}
		if info.Status != "Active" {
			t.Fatalf("body %s: expected Status Active, got %q", body, info.Status)
		}
	}
}

func TestDecodeInfoMissingFieldsStayEmpty(t *testing.T) {
	info, err := decodeInfo([]byte(`{"clientId":"42"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.ClientID != "42" {
		t.Fatalf("expected ClientID 42, got %q", info.ClientID)
	}
	if info.Dba != "" || info.Status != "" || info.ClientLegalName != "" {
		t.Fatalf("expected absent fields to stay empty, got %+v", info)
	}
}

func TestDecodeInfoIgnoresUnknownAndNonStringValues(t *testing.T) {
	info, err := decodeInfo([]byte(`{"clientId":"42","unknownField":"x","level":7,"status":null}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.ClientID != "42" {
		t.Fatalf("expected ClientID 42, got %q", info.ClientID)
	}
	if info.Level != "" || info.Status != "" {
		t.Fatalf("expected non-string values to be skipped, got %+v", info)
	}
}

func TestDecodeInfoFullRecord(t *testing.T) {
	body := `{
		"clientId":"12345",
		"editApproval":"Approved",
		"dba":"Acme Co",
		"clientLegalName":"Acme Corporation LLC",
		"complianceHold":"No",
		"level":"Gold",
		"paymentTermID":"NET30",
		"paymentMethod":"ACH",
		"status":"Active"
	}`
	info, err := decodeInfo([]byte(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Info{
		ClientID:        "12345",
		EditApproval:    "Approved",
		Dba:             "Acme Co",
		ClientLegalName: "Acme Corporation LLC",
		ComplianceHold:  "No",
		Level:           "Gold",
		PaymentTermID:   "NET30",
		PaymentMethod:   "ACH",
		Status:          "Active",
	}
	if info != want {
		t.Fatalf("expected %+v, got %+v", want, info)
	}
}

func TestDecodeInfoRejectsNonObjectBody(t *testing.T) {
	for _, body := range []string{`not json`, `[1,2,3]`, `"record"`, ``} {
		if _, err := decodeInfo([]byte(body)); err == nil {
			t.Fatalf("body %q: expected decode error", body)
		}
	}
}
