package domain

import (
	"fmt"
	"strings"
)

// Reason texts are fixed German strings because the report consumers are the
// German-speaking billing team.
const (
	ReasonOK              = "OK"
	ReasonEmptyWorkflow   = "Workflow-Status ist leer"
	ReasonStorno          = "STORNO-Status sollte nicht verrechnet werden"
	ReasonActiveNotDone   = "ACTIVE aber nicht abgeschlossen"
	ReasonActiveCancelled = "ACTIVE aber gekündigt im Workflow-Status"
)

// fulfillmentDone must appear verbatim (including the trailing period) in the
// workflow status of an ACTIVE location.
const fulfillmentDone = "Firmendaten Manager Fulfillment abgeschlossen."

// EvaluateStatus decides whether a billing state is consistent with a CRM
// workflow status. It is total: every input pair yields a verdict and a
// reason, never an error. Rule order is load-bearing: an empty workflow is
// reported before anything else, and a STORNO marker overrides every state
// check.
func EvaluateStatus(billingState LocationState, workflowStatus string) (bool, string) {
	workflow := strings.TrimSpace(workflowStatus)
	if workflow == "" {
		return false, ReasonEmptyWorkflow
	}
	if strings.Contains(strings.ToUpper(workflow), "STORNO") {
		return false, ReasonStorno
	}

	state := LocationState(strings.ToUpper(strings.TrimSpace(string(billingState))))
	switch state {
	case StateActive:
		if !strings.Contains(workflow, fulfillmentDone) {
			return false, ReasonActiveNotDone
		}
		if strings.Contains(strings.ToLower(workflow), "gekündigt") {
			return false, ReasonActiveCancelled
		}
		return true, ReasonOK
	case StateCancelled, StateInactive:
		if strings.Contains(strings.ToLower(workflow), "gekündigt") {
			return true, ReasonOK
		}
		return false, fmt.Sprintf("%s aber nicht gekündigt im Workflow-Status", state)
	default:
		return false, fmt.Sprintf("Unbekannter Billing-Status: %s", state)
	}
}
