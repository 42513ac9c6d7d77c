package landing

// RoleOwner is the only household role allowed to edit the landing page.
const RoleOwner = "owner"

// CanEdit reports whether the supplied household role may edit the landing
// document. Only an exact "owner" role is granted; absent or unknown roles
// are denied.
func CanEdit(role string) bool {
	return role == RoleOwner
}

// ShouldResetDraft reports whether a local draft must be discarded: exactly
// when the editing surface is closed and no save is in flight. A close event
// racing with a pending save keeps the draft so the optimistic state of the
// save is not lost.
func ShouldResetDraft(editorOpen bool, saveInFlight bool) bool {
	return !editorOpen && !saveInFlight
}
