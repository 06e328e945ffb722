// Package carriers - Registry and normalization tests
package carriers_test

import (
	"testing"

	"shipops/carriers"
	"shipops/carriers/aramex"
	"shipops/carriers/omniclama"
	"shipops/carriers/redbox"
	"shipops/carriers/smsa"
	"shipops/core/label"
	"shipops/core/types"
)

func newTestRegistry(t *testing.T) *carriers.Registry {
	t.Helper()
	r := carriers.NewRegistry()
	for _, register := range []func(*carriers.Registry) error{
		smsa.Register, aramex.Register, redbox.Register, omniclama.Register,
	} {
		if err := register(r); err != nil {
			t.Fatalf("failed to register carrier: %v", err)
		}
	}
	return r
}

func TestUnknownCarrierDegradesToShipmentTracking(t *testing.T) {
	r := newTestRegistry(t)
	shipment := types.Shipment{ID: "SHP-1", TrackingNumber: "TRK1"}

	normalized, err := r.Normalize("zzz", carriers.RawResponse{"whatever": "x"}, shipment)
	if err != nil {
		t.Fatalf("unknown carriers must not error: %v", err)
	}
	if normalized.Available() {
		t.Error("unknown carrier must yield no label payload")
	}
	if normalized.TrackingNumber != "TRK1" {
		t.Errorf("expected shipment tracking TRK1, got %q", normalized.TrackingNumber)
	}
}

func TestUnknownCarrierFallsBackToShipmentID(t *testing.T) {
	r := newTestRegistry(t)

	normalized, err := r.Normalize("zzz", carriers.RawResponse{}, types.Shipment{ID: "SHP-9"})
	if err != nil {
		t.Fatal(err)
	}
	if normalized.TrackingNumber != "SHP-9" {
		t.Errorf("expected shipment ID fallback, got %q", normalized.TrackingNumber)
	}
}

func TestNilResponseIsAProgrammerError(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Normalize("smsa", nil, types.Shipment{ID: "SHP-1"}); err == nil {
		t.Error("a nil response must be rejected")
	}
}

func TestDispatchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	r := newTestRegistry(t)
	resp := carriers.RawResponse{"label_url": "https://aramex.example/l/1.pdf"}

	normalized, err := r.Normalize("  ARAMEX ", resp, types.Shipment{ID: "SHP-1"})
	if err != nil {
		t.Fatal(err)
	}
	if normalized.Kind != label.KindRemoteURL {
		t.Errorf("expected a remote-url label, got %s", normalized.Kind)
	}
}

func TestDuplicateRegistrationFails(t *testing.T) {
	r := newTestRegistry(t)
	if err := smsa.Register(r); err == nil {
		t.Error("duplicate registration must fail")
	}
}

func TestSMSAInlineLabel(t *testing.T) {
	resp := carriers.RawResponse{"sawb": "SAWB123", "label": "JVBERi0xLjQ="}

	normalized := smsa.New().Normalize(resp, types.Shipment{ID: "SHP-1"})
	if normalized.Kind != label.KindInlineBinary {
		t.Fatalf("expected inline-binary, got %s", normalized.Kind)
	}
	if normalized.Payload != "JVBERi0xLjQ=" {
		t.Errorf("unexpected payload %q", normalized.Payload)
	}
	if normalized.TrackingNumber != "SAWB123" {
		t.Errorf("expected carrier tracking SAWB123, got %q", normalized.TrackingNumber)
	}
}

func TestSMSAMissingLabelMeansNoLabelYet(t *testing.T) {
	resp := carriers.RawResponse{"sawb": "SAWB123"}

	normalized := smsa.New().Normalize(resp, types.Shipment{ID: "SHP-1"})
	if normalized.Available() {
		t.Error("a response without a label document must yield an empty payload")
	}
	if normalized.TrackingNumber != "SAWB123" {
		t.Errorf("tracking must still resolve, got %q", normalized.TrackingNumber)
	}
}

func TestRedBoxNestedFields(t *testing.T) {
	resp := carriers.RawResponse{
		"data": map[string]interface{}{
			"tracking_number": "RB-42",
			"label_url":       "https://redbox.example/l/42.pdf",
		},
	}

	normalized := redbox.New().Normalize(resp, types.Shipment{ID: "SHP-1"})
	if normalized.Kind != label.KindRemoteURL {
		t.Fatalf("expected remote-url, got %s", normalized.Kind)
	}
	if normalized.Payload != "https://redbox.example/l/42.pdf" {
		t.Errorf("unexpected payload %q", normalized.Payload)
	}
	if normalized.TrackingNumber != "RB-42" {
		t.Errorf("expected RB-42, got %q", normalized.TrackingNumber)
	}
}

func TestCarrierFieldWinsOverShipmentTracking(t *testing.T) {
	resp := carriers.RawResponse{"tracking_code": "OC-7", "label": map[string]interface{}{"url": "https://oc.example/7"}}
	shipment := types.Shipment{ID: "SHP-1", TrackingNumber: "TRK-SHIP"}

	normalized := omniclama.New().Normalize(resp, shipment)
	if normalized.TrackingNumber != "OC-7" {
		t.Errorf("carrier-specific field must win, got %q", normalized.TrackingNumber)
	}
}

func TestLookupToleratesWrongShapes(t *testing.T) {
	resp := carriers.RawResponse{"data": "not-a-map", "n": 3}

	if got := carriers.Lookup(resp, "data.label_url"); got != "" {
		t.Errorf("expected empty string for a non-map step, got %q", got)
	}
	if got := carriers.Lookup(resp, "n"); got != "" {
		t.Errorf("expected empty string for a non-string leaf, got %q", got)
	}
	if got := carriers.Lookup(nil, "x"); got != "" {
		t.Errorf("expected empty string for a nil response, got %q", got)
	}
}
