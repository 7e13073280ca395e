package usecase

import (
	"sync"

	"qa-board-sync/pkg/tracker"
)

// projectState is the ordered issue sequence of one project's board,
// most recently updated first. It is the surface the optimistic engine
// edits and reverts; label truth stays with the tracker.
type projectState struct {
	mu     sync.Mutex
	issues []tracker.Issue
}

// snapshot deep-copies the sequence, labels included, so a revert
// restores the exact pre-drop state. Callers must hold mu.
func (st *projectState) snapshot() []tracker.Issue {
	snap := make([]tracker.Issue, len(st.issues))
	copy(snap, st.issues)
	for i := range snap {
		labels := make([]string, len(snap[i].Labels))
		copy(labels, snap[i].Labels)
		snap[i].Labels = labels
	}
	return snap
}

// indexOf returns the position of an issue by iid, -1 when absent.
// Callers must hold mu.
func (st *projectState) indexOf(issueIID int) int {
	for i, issue := range st.issues {
		if issue.IID == issueIID {
			return i
		}
	}
	return -1
}

// moveTo relocates the issue at from to position to, shifting the rest.
// Callers must hold mu.
func (st *projectState) moveTo(from, to int) {
	if from == to {
		return
	}
	issue := st.issues[from]
	rest := append(st.issues[:from:from], st.issues[from+1:]...)
	st.issues = insertIssue(rest, issue, to)
}

// removeAt takes the issue at idx out of the sequence and returns it.
// Callers must hold mu.
func (st *projectState) removeAt(idx int) tracker.Issue {
	issue := st.issues[idx]
	st.issues = append(st.issues[:idx:idx], st.issues[idx+1:]...)
	return issue
}

// insertAt places issue at idx. Callers must hold mu.
func (st *projectState) insertAt(issue tracker.Issue, idx int) {
	st.issues = insertIssue(st.issues, issue, idx)
}

func insertIssue(issues []tracker.Issue, issue tracker.Issue, idx int) []tracker.Issue {
	if idx < 0 {
		idx = 0
	}
	if idx > len(issues) {
		idx = len(issues)
	}
	out := make([]tracker.Issue, 0, len(issues)+1)
	out = append(out, issues[:idx]...)
	out = append(out, issue)
	out = append(out, issues[idx:]...)
	return out
}

// swapLabel returns a copy of labels with from replaced by to. When from
// is absent, to is still appended so the destination label always lands.
func swapLabel(labels []string, from, to string) []string {
	out := make([]string, 0, len(labels))
	replaced := false
	for _, l := range labels {
		switch l {
		case from:
			if !replaced {
				out = append(out, to)
				replaced = true
			}
		case to:
			// avoid a duplicate when the issue already carries the target
		default:
			out = append(out, l)
		}
	}
	if !replaced {
		out = append(out, to)
	}
	return out
}
