package routing_test

import (
	"testing"

	"github.com/Gunvolt24/order-precheck/internal/domain"
	"github.com/Gunvolt24/order-precheck/internal/routing"
)

func TestResolve_SuccessLikeStates_NoRedirect(t *testing.T) {
	for _, st := range []domain.ValidationState{
		domain.StateAllowed,
		domain.StateRestaurantClosedActiveOrders,
		domain.StateIdle,
		domain.StateLoading,
	} {
		route := routing.Resolve(st, "cust-1")
		if route.Redirect {
			t.Fatalf("state %s: want no redirect, got path %q", st, route.Path)
		}
		if route.Path != "" {
			t.Fatalf("state %s: path must be empty without redirect, got %q", st, route.Path)
		}
	}
}

func TestResolve_CustomerNotFound_NoCustomerIDInPath(t *testing.T) {
	route := routing.Resolve(domain.StateCustomerNotFound, "cust-1")
	if !route.Redirect {
		t.Fatalf("want redirect")
	}
	if route.Path != routing.PathCustomerNotFound {
		t.Fatalf("unexpected path: %q", route.Path)
	}
}

func TestResolve_BlockingStates_Paths(t *testing.T) {
	cases := []struct {
		state domain.ValidationState
		path  string
	}{
		{domain.StateCustomerDisabled, "/validation/cust-1/customer-disabled"},
		{domain.StateRestaurantClosed, "/validation/cust-1/restaurant-closed"},
		{domain.StateNoGeolocationSupport, "/validation/cust-1/no-geolocation"},
		{domain.StateNoLocationPermission, "/validation/cust-1/location-permission"},
		{domain.StateOutsideCity, "/validation/cust-1/outside-city"},
		{domain.StateOutsideZone, "/validation/cust-1/outside-zone"},
		{domain.StateError, "/validation/cust-1/validation-error"},
	}
	for _, tc := range cases {
		route := routing.Resolve(tc.state, "cust-1")
		if !route.Redirect {
			t.Fatalf("state %s: want redirect", tc.state)
		}
		if route.Path != tc.path {
			t.Fatalf("state %s: want %q, got %q", tc.state, tc.path, route.Path)
		}
	}
}

func TestNavigationPayload_CollectsOutcomeAndData(t *testing.T) {
	report := &domain.RunReport{
		RunID:      "run-1",
		CustomerID: "cust-1",
		State: domain.PipelineState{
			Phase:           domain.PhaseFailed,
			FailedStep:      domain.StepGeofencingValidate,
			CompletedSteps:  []domain.Step{domain.StepCustomerExists, domain.StepGeoGather},
			ValidationState: domain.StateOutsideZone,
			Err:             "address is outside the delivery zone",
			Data: domain.RunData{
				domain.StepGeoGather: {Coordinates: &domain.Coordinates{Latitude: 55.75, Longitude: 37.62}},
			},
		},
	}

	payload := routing.NavigationPayload(report, map[string]any{"source": "checkout"})

	if payload["validationState"] != domain.StateOutsideZone {
		t.Fatalf("unexpected validationState: %v", payload["validationState"])
	}
	if payload["error"] != "address is outside the delivery zone" {
		t.Fatalf("unexpected error: %v", payload["error"])
	}
	if payload["failedStep"] != domain.StepGeofencingValidate {
		t.Fatalf("unexpected failedStep: %v", payload["failedStep"])
	}
	steps, ok := payload["completedSteps"].([]domain.Step)
	if !ok || len(steps) != 2 {
		t.Fatalf("unexpected completedSteps: %v", payload["completedSteps"])
	}
	geo, ok := payload["geoLocationGather"].(domain.StepPayload)
	if !ok || geo.Coordinates == nil || geo.Coordinates.Latitude != 55.75 {
		t.Fatalf("unexpected geoLocationGather payload: %v", payload["geoLocationGather"])
	}
	if payload["source"] != "checkout" {
		t.Fatalf("extras must pass through, got %v", payload["source"])
	}
}

func TestNavigationPayload_ExtrasDoNotOverrideOutcome(t *testing.T) {
	report := &domain.RunReport{
		CustomerID: "cust-1",
		State: domain.PipelineState{
			Phase:           domain.PhaseSuccess,
			ValidationState: domain.StateAllowed,
		},
	}

	payload := routing.NavigationPayload(report, map[string]any{"validationState": "spoofed"})
	if payload["validationState"] != domain.StateAllowed {
		t.Fatalf("extras must not override outcome fields, got %v", payload["validationState"])
	}
}

func TestNavigationPayload_NilReport(t *testing.T) {
	if payload := routing.NavigationPayload(nil, nil); payload != nil {
		t.Fatalf("want nil payload for nil report, got %v", payload)
	}
}

func TestNavigate_Success(t *testing.T) {
	report := &domain.RunReport{
		CustomerID: "cust-1",
		State: domain.PipelineState{
			Phase:           domain.PhaseSuccess,
			ValidationState: domain.StateAllowed,
		},
	}

	nav := routing.Navigate(report, nil)
	if nav.Route.Redirect {
		t.Fatalf("allowed outcome must not redirect, got %q", nav.Route.Path)
	}
	if nav.Payload == nil {
		t.Fatalf("payload must be present even on success")
	}
}

func TestNavigate_PayloadDataIsCopied(t *testing.T) {
	coords := &domain.Coordinates{Latitude: 1, Longitude: 2}
	report := &domain.RunReport{
		CustomerID: "cust-1",
		State: domain.PipelineState{
			Phase:           domain.PhaseSuccess,
			ValidationState: domain.StateAllowed,
			CompletedSteps:  []domain.Step{domain.StepGeoGather},
			Data:            domain.RunData{domain.StepGeoGather: {Coordinates: coords}},
		},
	}

	nav := routing.Navigate(report, nil)
	got := nav.Payload["geoLocationGather"].(domain.StepPayload)
	got.Coordinates.Latitude = 99

	if coords.Latitude != 1 {
		t.Fatalf("payload must hold a copy, original mutated to %v", coords.Latitude)
	}
}
