package webhook

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgResponse "qa-board-sync/pkg/response"
)

// HandleTrackerWebhook processes tracker webhook deliveries.
//
// Authentication comes before everything else: a delivery with a bad or
// missing token is rejected without touching any state. Recognized
// events are processed synchronously so the tracker's retry logic can
// see real failures; the tracker tolerates slow acks, and processing is
// two cheap local writes at most.
func (h *Handler) HandleTrackerWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify token
	token := c.GetHeader(TokenHeader)
	if err := h.security.ValidateToken(token); err != nil {
		h.l.Errorf(ctx, "Webhook token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	// Check IP whitelist
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Errorf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "source not allowed"})
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	// Classify by event kind header
	eventKind := c.GetHeader(EventHeader)
	switch eventKind {
	case eventIssueHook:
		event, err := h.parser.ParseIssueEvent(body)
		if err != nil {
			h.l.Errorf(ctx, "Failed to parse issue event: %v", err)
			pkgResponse.Error(c, err, nil)
			return
		}
		if err := h.projectionUC.ProcessIssueChanged(ctx, *event); err != nil {
			h.l.Errorf(ctx, "Issue event processing failed: %v", err)
			pkgResponse.InternalError(c, err)
			return
		}
	case eventNoteHook:
		event, err := h.parser.ParseNoteEvent(body)
		if err != nil {
			h.l.Errorf(ctx, "Failed to parse note event: %v", err)
			pkgResponse.Error(c, err, nil)
			return
		}
		if err := h.projectionUC.ProcessCommentAdded(ctx, *event); err != nil {
			h.l.Errorf(ctx, "Note event processing failed: %v", err)
			pkgResponse.InternalError(c, err)
			return
		}
	default:
		h.l.Infof(ctx, "Unsupported tracker event kind: %s", eventKind)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event kind"})
		return
	}

	pkgResponse.OK(c, gin.H{"status": "processed"})
}
