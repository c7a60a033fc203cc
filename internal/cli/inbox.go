package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ppiankov/eggcorn/internal/pipeline"
	"github.com/ppiankov/eggcorn/internal/reply"
	"github.com/ppiankov/eggcorn/internal/worker"
	"github.com/spf13/cobra"
)

var inboxRepliesPath string

// inboxCmd represents the inbox command
var inboxCmd = &cobra.Command{
	Use:   "inbox <messages.jsonl>",
	Short: "Answer inbox messages: STOP requests, bot feedback and other bots",
	Long: `Inbox handles messages sent to the bot:
- "stop" adds the author to the opt-out list and confirms by private message
- "good bot" / "bad bot" is counted and answered with the running tallies
- messages from other bots get a canned answer

Messages are read from a file, one JSON object per line.

Example:
  eggcorn inbox messages.jsonl
  eggcorn inbox messages.jsonl --replies inbox-replies.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runInbox,
}

func init() {
	rootCmd.AddCommand(inboxCmd)

	inboxCmd.Flags().StringVar(&inboxRepliesPath, "replies", "-", "write replies as JSON lines to this path (- for stdout)")
}

func runInbox(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	messages, err := worker.ReadMessagesFromFile(args[0])
	if err != nil {
		return fmt.Errorf("read messages: %w", err)
	}

	out, closeOut, err := openOutput(inboxRepliesPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOut(); closeErr != nil && err == nil {
			err = fmt.Errorf("close replies: %w", closeErr)
		}
	}()

	b, err := newBot(cfg, pipeline.NewWriterPublisher(out), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var optedOut, feedback, bots, failed int
	for _, msg := range messages {
		if ctx.Err() != nil {
			break
		}

		res, err := b.pipeline.HandleMessage(ctx, msg)
		if err != nil {
			// One bad message must not block the rest of the inbox
			failed++
			logger.Warn("handle message", "message", msg.ID, "error", err)
			continue
		}

		if res.OptedOut {
			optedOut++
		}
		if res.Kind == string(reply.KindGoodBot) || res.Kind == string(reply.KindBadBot) {
			feedback++
		}
		if res.BotReply {
			bots++
		}
	}

	w := cmd.ErrOrStderr()
	_, _ = fmt.Fprintf(w, "\n  Messages:   %d\n", len(messages))
	_, _ = fmt.Fprintf(w, "  Opted out:  %d\n", optedOut)
	_, _ = fmt.Fprintf(w, "  Feedback:   %d\n", feedback)
	_, _ = fmt.Fprintf(w, "  Bots:       %d\n", bots)
	_, _ = fmt.Fprintf(w, "  Failed:     %d\n\n", failed)

	return ctx.Err()
}
