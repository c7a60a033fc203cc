package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ppiankov/eggcorn/internal/cache"
	"github.com/ppiankov/eggcorn/internal/metrics"
	"github.com/ppiankov/eggcorn/internal/mistake"
	"github.com/ppiankov/eggcorn/internal/model"
	"github.com/ppiankov/eggcorn/internal/reply"
	"github.com/ppiankov/eggcorn/internal/stats"
	"github.com/ppiankov/eggcorn/internal/text"
	"github.com/ppiankov/eggcorn/internal/worker"
)

// Options wires a Pipeline. Checker and Publisher are required; the rest
// may be nil and the matching step is then skipped.
type Options struct {
	Checker   *mistake.Checker
	Publisher Publisher
	Ledger    *cache.Ledger    // Seen-comment ledger
	Stats     *stats.Store     // Mistake and feedback counters
	Blocklist *stats.Blocklist // Users who replied STOP
	Limiter   *worker.Limiter  // Reply rate per subreddit
	Logger    *slog.Logger
	Footer    bool // Append reply.Footer to corrections
}

// Pipeline orchestrates checking and correcting comments
type Pipeline struct {
	checker   *mistake.Checker
	publisher Publisher
	ledger    *cache.Ledger
	stats     *stats.Store
	blocklist *stats.Blocklist
	limiter   *worker.Limiter
	logger    *slog.Logger
	footer    bool
}

// NewPipeline creates a new pipeline from opts
func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.Checker == nil {
		return nil, fmt.Errorf("pipeline: nil checker")
	}
	if opts.Publisher == nil {
		return nil, ErrNoPublisher
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		checker:   opts.Checker,
		publisher: opts.Publisher,
		ledger:    opts.Ledger,
		stats:     opts.Stats,
		blocklist: opts.Blocklist,
		limiter:   opts.Limiter,
		logger:    logger,
		footer:    opts.Footer,
	}, nil
}

// Process checks one comment and publishes a correction for the first
// mistake found. Publish failures are reported in the outcome; the returned
// error is reserved for failures that should stop the caller.
func (p *Pipeline) Process(ctx context.Context, c model.Comment) (*model.Outcome, error) {
	out := &model.Outcome{CommentID: c.ID}
	logger := p.logger.With("comment", c.ID, "subreddit", c.Subreddit)

	// 1. Eligibility
	if reason, skip := p.skipReason(c); skip {
		return skipped(out, reason), nil
	}

	// 2. Prepare and check
	start := time.Now()
	body, err := prepare(c)
	if err != nil {
		logger.Warn("prepare comment body", "error", err)
		return skipped(out, model.SkipInvalid), nil
	}
	if strings.TrimSpace(body) == "" {
		return skipped(out, model.SkipNoText), nil
	}

	match, found := p.checker.Check(body)
	metrics.CommentsChecked.Inc()
	metrics.CheckDuration.Observe(time.Since(start).Seconds())

	if !found {
		out.Status = model.StatusClean
		return out, nil
	}

	// 3. Claim so concurrent or later runs leave the comment alone
	if p.ledger != nil {
		first, err := p.ledger.Claim(c.ID)
		if err != nil {
			return nil, fmt.Errorf("claim comment %s: %w", c.ID, err)
		}
		if !first {
			return skipped(out, model.SkipSeen), nil
		}
	}

	correction := &model.Correction{
		CommentID:   c.ID,
		Subreddit:   c.Subreddit,
		Rule:        match.Key,
		Context:     match.Context,
		Correction:  match.Correction,
		Explanation: match.Explanation,
	}
	out.Correction = correction
	out.Reply = reply.Render(*correction, p.footer)

	// 4. Publish
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, c.Subreddit); err != nil {
			p.release(logger, c.ID)
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	if err := p.publisher.Reply(ctx, c.ID, out.Reply); err != nil {
		metrics.PublishErrors.Inc()
		logger.Warn("publish correction", "rule", match.Key, "error", err)
		out.Status = model.StatusFailed
		out.Error = err.Error()
		return out, nil
	}

	// 5. Count only delivered corrections
	out.Status = model.StatusCorrected
	metrics.Corrections.WithLabelValues(match.Key).Inc()
	if p.stats != nil {
		if _, err := p.stats.AddMistakes(1); err != nil {
			logger.Warn("update mistake counter", "error", err)
		}
	}
	logger.Info("corrected mistake", "rule", match.Key, "correction", match.Correction)

	return out, nil
}

// HandleMessage answers one inbox message: STOP opts the author out,
// good/bad bot feedback is counted and acknowledged, and other bots get a
// canned reply.
func (p *Pipeline) HandleMessage(ctx context.Context, msg model.Message) (*model.MessageOutcome, error) {
	out := &model.MessageOutcome{MessageID: msg.ID}
	if msg.Author == "" {
		return out, nil
	}

	kind := reply.ClassifyMessage(msg.Body)
	out.Kind = string(kind)

	switch kind {
	case reply.KindStop:
		if p.blocklist != nil {
			if err := p.blocklist.Add(msg.Author); err != nil {
				return nil, fmt.Errorf("add %s to blocklist: %w", msg.Author, err)
			}
		}
		if err := p.publisher.SendMessage(ctx, msg.Author, reply.StopSubject, reply.StopBody); err != nil {
			return nil, fmt.Errorf("send stop confirmation: %w", err)
		}
		out.OptedOut = true
		p.logger.Info("user opted out", "user", msg.Author)

	case reply.KindGoodBot, reply.KindBadBot:
		var st stats.Stats
		if p.stats != nil {
			var err error
			if st, err = p.stats.RecordFeedback(kind == reply.KindGoodBot); err != nil {
				return nil, fmt.Errorf("record feedback: %w", err)
			}
		}
		out.Reply = reply.FeedbackReply(kind, st.Good, st.Bad)
		if err := p.publisher.Reply(ctx, msg.ID, out.Reply); err != nil {
			return nil, fmt.Errorf("reply to feedback: %w", err)
		}
	}

	if isBot(msg.Author) {
		if err := p.publisher.Reply(ctx, msg.ID, reply.BotReply); err != nil {
			return nil, fmt.Errorf("reply to bot: %w", err)
		}
		out.BotReply = true
	}

	return out, nil
}

func (p *Pipeline) skipReason(c model.Comment) (model.SkipReason, bool) {
	switch {
	case isBot(c.Author):
		return model.SkipBot, true
	case c.Saved:
		return model.SkipSaved, true
	case p.blocklist != nil && p.blocklist.Contains(c.Author):
		return model.SkipOptOut, true
	case p.ledger != nil && p.ledger.Seen(c.ID):
		return model.SkipSeen, true
	}
	return "", false
}

// release forgets a claimed comment that was never answered
func (p *Pipeline) release(logger *slog.Logger, commentID string) {
	if p.ledger == nil {
		return
	}
	if err := p.ledger.Forget(commentID); err != nil {
		logger.Warn("release claim", "error", err)
	}
}

func skipped(out *model.Outcome, reason model.SkipReason) *model.Outcome {
	metrics.CommentsSkipped.WithLabelValues(string(reason)).Inc()
	out.Status = model.StatusSkipped
	out.Reason = reason
	return out
}

// isBot treats deleted accounts as bots
func isBot(author string) bool {
	return author == "" || strings.Contains(strings.ToLower(author), "bot")
}

// prepare returns the lower-cased, quote-free text of the comment
func prepare(c model.Comment) (string, error) {
	if c.Body != "" || c.BodyHTML == "" {
		return text.Prepare(c.Body), nil
	}
	return text.PrepareHTML(c.BodyHTML)
}
