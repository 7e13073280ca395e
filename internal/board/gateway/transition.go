package gateway

import "context"

// Transition sends one removeLabels+addLabels pair to the tracker.
// On failure the upstream error is returned unmodified so the caller can
// surface it. No local cache write happens here: the cache is only ever
// updated by the webhook pipeline, closing the loop asynchronously.
func (g *implGateway) Transition(ctx context.Context, projectID, issueIID int, fromLabel, toLabel string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := g.tracker.UpdateIssueLabels(ctx, projectID, issueIID, []string{toLabel}, []string{fromLabel})
	if err != nil {
		g.l.Errorf(ctx, "gateway.Transition project=%d issue=%d %s->%s: %v",
			projectID, issueIID, fromLabel, toLabel, err)
		return err
	}
	return nil
}
