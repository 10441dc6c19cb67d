// Package board holds the job registry, the application ledger and the
// authorization gate that guards every mutating operation on them.
package board

import "jobportal/board-service/internal/identity"

// Operation names an intent checked by the gate.
type Operation string

const (
	OpPostJob          Operation = "post_job"
	OpEditJob          Operation = "edit_job"
	OpDeleteJob        Operation = "delete_job"
	OpViewApplications Operation = "view_applications"
	OpListOwnJobs      Operation = "list_own_jobs"
	OpApply            Operation = "apply"
	OpListOwnApps      Operation = "list_own_applications"
)

// DenyReason encodes why the gate refused an operation.
type DenyReason string

const (
	ReasonAuthRequired DenyReason = "auth_required"
	ReasonWrongRole    DenyReason = "wrong_role"
	ReasonNotOwner     DenyReason = "not_owner"
)

// Decision is the gate's verdict. Reason is set only on denial.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// requiredRole maps each operation to the one role allowed to perform it.
var requiredRole = map[Operation]identity.Role{
	OpPostJob:          identity.RoleEmployer,
	OpEditJob:          identity.RoleEmployer,
	OpDeleteJob:        identity.RoleEmployer,
	OpViewApplications: identity.RoleEmployer,
	OpListOwnJobs:      identity.RoleEmployer,
	OpApply:            identity.RoleJobSeeker,
	OpListOwnApps:      identity.RoleJobSeeker,
}

// ownerScoped marks operations that additionally require ownership of the
// target job.
var ownerScoped = map[Operation]bool{
	OpEditJob:          true,
	OpDeleteJob:        true,
	OpViewApplications: true,
}

// Check evaluates the policy rules in order: authentication, role,
// ownership. It is a pure predicate; the caller surfaces the denial.
//
// ownerID is the id of the employer owning the target job. Pass an empty
// string when the target has no owner dimension (job creation, apply) or
// before the target has been resolved; the ownership rule is then skipped.
func Check(actor *identity.Identity, op Operation, ownerID string) Decision {
	if actor == nil {
		return Decision{Reason: ReasonAuthRequired}
	}

	role, ok := requiredRole[op]
	if !ok || actor.Role != role {
		return Decision{Reason: ReasonWrongRole}
	}

	if ownerScoped[op] && ownerID != "" && actor.ID != ownerID {
		return Decision{Reason: ReasonNotOwner}
	}

	return Decision{Allowed: true}
}
