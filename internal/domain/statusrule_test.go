package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name           string
		billingState   LocationState
		workflowStatus string
		expectedOK     bool
		expectedReason string
	}{
		{
			name:           "ACTIVE with completed fulfillment",
			billingState:   "ACTIVE",
			workflowStatus: "Firmendaten Manager Fulfillment abgeschlossen.",
			expectedOK:     true,
			expectedReason: ReasonOK,
		},
		{
			name:           "ACTIVE completed but cancelled later",
			billingState:   "ACTIVE",
			workflowStatus: "Firmendaten Manager Fulfillment abgeschlossen. gekündigt am 1.1.",
			expectedOK:     false,
			expectedReason: ReasonActiveCancelled,
		},
		{
			name:           "ACTIVE without completion phrase",
			billingState:   "ACTIVE",
			workflowStatus: "Fulfillment in Arbeit",
			expectedOK:     false,
			expectedReason: ReasonActiveNotDone,
		},
		{
			name:           "completion phrase requires trailing period",
			billingState:   "ACTIVE",
			workflowStatus: "Firmendaten Manager Fulfillment abgeschlossen",
			expectedOK:     false,
			expectedReason: ReasonActiveNotDone,
		},
		{
			name:           "CANCELLED with cancellation marker",
			billingState:   "CANCELLED",
			workflowStatus: "Vertrag gekündigt",
			expectedOK:     true,
			expectedReason: ReasonOK,
		},
		{
			name:           "CANCELLED without cancellation marker",
			billingState:   "CANCELLED",
			workflowStatus: "Fulfillment abgeschlossen",
			expectedOK:     false,
			expectedReason: "CANCELLED aber nicht gekündigt im Workflow-Status",
		},
		{
			name:           "INACTIVE with cancellation marker uppercase",
			billingState:   "INACTIVE",
			workflowStatus: "GEKÜNDIGT zum Jahresende",
			expectedOK:     true,
			expectedReason: ReasonOK,
		},
		{
			name:           "INACTIVE without cancellation marker",
			billingState:   "INACTIVE",
			workflowStatus: "laufend",
			expectedOK:     false,
			expectedReason: "INACTIVE aber nicht gekündigt im Workflow-Status",
		},
		{
			name:           "empty workflow status",
			billingState:   "INACTIVE",
			workflowStatus: "",
			expectedOK:     false,
			expectedReason: ReasonEmptyWorkflow,
		},
		{
			name:           "whitespace-only workflow status",
			billingState:   "ACTIVE",
			workflowStatus: "  \t ",
			expectedOK:     false,
			expectedReason: ReasonEmptyWorkflow,
		},
		{
			name:           "lowercase billing state is normalized",
			billingState:   " active ",
			workflowStatus: "Firmendaten Manager Fulfillment abgeschlossen.",
			expectedOK:     true,
			expectedReason: ReasonOK,
		},
		{
			name:           "unknown billing state",
			billingState:   "SUSPENDED",
			workflowStatus: "Vertrag gekündigt",
			expectedOK:     false,
			expectedReason: "Unbekannter Billing-Status: SUSPENDED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := EvaluateStatus(tt.billingState, tt.workflowStatus)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}

func TestEvaluateStatus_StornoOverridesEverything(t *testing.T) {
	// STORNO suppresses all other verdicts regardless of billing state, even
	// when the rest of the workflow status would pass.
	workflows := []string{
		"STORNO",
		"storno beantragt",
		"Firmendaten Manager Fulfillment abgeschlossen. STORNO",
		"gekündigt, Storno gebucht",
	}
	states := []LocationState{"ACTIVE", "CANCELLED", "INACTIVE", "SUSPENDED"}

	for _, workflow := range workflows {
		for _, state := range states {
			ok, reason := EvaluateStatus(state, workflow)
			assert.False(t, ok, "state %s workflow %q", state, workflow)
			assert.Equal(t, ReasonStorno, reason)
		}
	}
}

func TestEvaluateStatus_Idempotent(t *testing.T) {
	ok1, reason1 := EvaluateStatus("ACTIVE", "Firmendaten Manager Fulfillment abgeschlossen.")
	ok2, reason2 := EvaluateStatus("ACTIVE", "Firmendaten Manager Fulfillment abgeschlossen.")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, reason1, reason2)
}
