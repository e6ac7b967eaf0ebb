package domain_test

import (
	"testing"

	"github.com/Gunvolt24/order-precheck/internal/domain"
)

func TestValidationState_Classification(t *testing.T) {
	type testCase struct {
		state       domain.ValidationState
		successLike bool
		blocking    bool
	}

	cases := []testCase{
		{domain.StateIdle, false, false},
		{domain.StateLoading, false, false},
		{domain.StateAllowed, true, false},
		{domain.StateRestaurantClosedActiveOrders, true, false},
		{domain.StateCustomerNotFound, false, true},
		{domain.StateCustomerDisabled, false, true},
		{domain.StateRestaurantClosed, false, true},
		{domain.StateNoGeolocationSupport, false, true},
		{domain.StateNoLocationPermission, false, true},
		{domain.StateOutsideCity, false, true},
		{domain.StateOutsideZone, false, true},
		{domain.StateError, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.state.String(), func(t *testing.T) {
			if got := tc.state.IsSuccessLike(); got != tc.successLike {
				t.Errorf("IsSuccessLike() = %v, want %v", got, tc.successLike)
			}
			if got := tc.state.IsBlocking(); got != tc.blocking {
				t.Errorf("IsBlocking() = %v, want %v", got, tc.blocking)
			}
		})
	}
}

func TestDefaultMessage_CoversEveryState(t *testing.T) {
	states := []domain.ValidationState{
		domain.StateIdle,
		domain.StateLoading,
		domain.StateAllowed,
		domain.StateCustomerNotFound,
		domain.StateCustomerDisabled,
		domain.StateRestaurantClosed,
		domain.StateRestaurantClosedActiveOrders,
		domain.StateNoGeolocationSupport,
		domain.StateNoLocationPermission,
		domain.StateOutsideCity,
		domain.StateOutsideZone,
		domain.StateError,
	}

	for _, s := range states {
		if msg := domain.DefaultMessage(s); msg == "" {
			t.Errorf("DefaultMessage(%q) is empty", s)
		}
	}
}

func TestParseStep(t *testing.T) {
	for _, s := range domain.KnownSteps() {
		got, err := domain.ParseStep(string(s))
		if err != nil {
			t.Fatalf("ParseStep(%q): %v", s, err)
		}
		if got != s {
			t.Fatalf("ParseStep(%q) = %q", s, got)
		}
	}

	if _, err := domain.ParseStep("checkWeather"); err == nil {
		t.Fatalf("expected error for unknown step")
	}
	if _, err := domain.ParseStep(""); err == nil {
		t.Fatalf("expected error for empty step name")
	}
}

func TestKnownSteps_Order(t *testing.T) {
	want := []domain.Step{
		domain.StepCustomerExists,
		domain.StepCustomerStatus,
		domain.StepRestaurantStatus,
		domain.StepGeoSupport,
		domain.StepGeoGather,
		domain.StepGeofencingValidate,
	}

	got := domain.KnownSteps()
	if len(got) != len(want) {
		t.Fatalf("KnownSteps() returned %d steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("KnownSteps()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPipelineState_CloneIsDeep(t *testing.T) {
	orig := domain.PipelineState{
		Phase:           domain.PhaseSuccess,
		CompletedSteps:  []domain.Step{domain.StepCustomerExists, domain.StepCustomerStatus},
		ValidationState: domain.StateAllowed,
		Data: domain.RunData{
			domain.StepCustomerExists: {
				Customer: &domain.Customer{ID: "c-1", Name: "Jane"},
			},
		},
	}

	cp := orig.Clone()
	cp.CompletedSteps[0] = domain.StepRestaurantStatus
	cp.Data[domain.StepCustomerExists].Customer.Name = "changed"

	if orig.CompletedSteps[0] != domain.StepCustomerExists {
		t.Errorf("Clone shares CompletedSteps backing array")
	}
	if orig.Data[domain.StepCustomerExists].Customer.Name != "Jane" {
		t.Errorf("Clone shares customer payload")
	}
}

func TestStepPayload_CloneIsDeep(t *testing.T) {
	p := domain.StepPayload{
		Restaurant: &domain.RestaurantStatus{
			IsOpen:       false,
			ActiveOrders: []domain.ActiveOrder{{ID: "o-1", Status: "preparing"}},
		},
		Coordinates: &domain.Coordinates{Latitude: 55.7558, Longitude: 37.6173},
	}

	cp := p.Clone()
	cp.Restaurant.ActiveOrders[0].Status = "delivered"
	cp.Coordinates.Latitude = 0

	if p.Restaurant.ActiveOrders[0].Status != "preparing" {
		t.Errorf("Clone shares active orders slice")
	}
	if p.Coordinates.Latitude != 55.7558 {
		t.Errorf("Clone shares coordinates")
	}
}

func TestStepPayload_Empty(t *testing.T) {
	var p domain.StepPayload
	if !p.Empty() {
		t.Fatalf("zero payload must be empty")
	}
	p.Customer = &domain.Customer{ID: "c-1"}
	if p.Empty() {
		t.Fatalf("payload with customer must not be empty")
	}
}
