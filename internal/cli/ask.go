package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tmahmud/uttor/internal/chat"
	"github.com/tmahmud/uttor/internal/corpus"
	"github.com/tmahmud/uttor/internal/logging"
	"github.com/tmahmud/uttor/internal/respond"
	"github.com/tmahmud/uttor/internal/voice"
)

var (
	askTopic      string
	askDifficulty string
	askTop        int
	askListen     string
	askSpeak      string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the best answer",
	Long: `Ask runs one question through the retrieval pipeline: the database is
filtered by topic (and optionally difficulty), candidates are ranked by
lexical overlap, and the top match is returned if it clears the
confidence threshold. Otherwise a topic-specific fallback is printed.

Example:
  uttor ask "স্কুলে ভর্তির বয়স কত?" --topic শিক্ষা
  uttor ask "জ্বর হলে কী করব?" --topic স্বাস্থ্য --difficulty সহজ
  uttor ask "ভর্তি" --topic শিক্ষা --top 3
  uttor ask --topic শিক্ষা --listen question.wav --speak answer.mp3`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVarP(&askTopic, "topic", "t", "", "topic to search within (required)")
	askCmd.Flags().StringVarP(&askDifficulty, "difficulty", "d", "", "optional difficulty filter")
	askCmd.Flags().IntVar(&askTop, "top", 1, "show the top N candidate answers")
	askCmd.Flags().StringVar(&askListen, "listen", "", "transcribe the question from an audio file")
	askCmd.Flags().StringVar(&askSpeak, "speak", "", "write the spoken answer to an audio file")

	_ = askCmd.MarkFlagRequired("topic")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	query := strings.TrimSpace(strings.Join(args, " "))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Optional voice input replaces the positional question
	var speech *voice.Handler
	if askListen != "" || askSpeak != "" {
		cfg.Voice.Enabled = true
		speech = voice.NewHandler(cfg.Voice, log)
	}
	if askListen != "" {
		transcribed, err := speech.Transcribe(ctx, askListen)
		if err != nil {
			return fmt.Errorf("voice input: %w", err)
		}
		query = transcribed
		fmt.Printf("প্রশ্ন: %s\n\n", query)
	}

	if query == "" {
		return fmt.Errorf("no question given (pass it as an argument or via --listen)")
	}

	store, err := corpus.Load(cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("load faq database: %w", err)
	}
	bot := chat.NewBot(store, cfg, log)

	answerColor := color.New(color.FgGreen)
	fallbackColor := color.New(color.FgYellow)
	if !cfg.Output.Color {
		color.NoColor = true
	}

	// Diagnostic multi-result display
	if askTop > 1 {
		results, isFallback := bot.AnswerQuestion(query, askTopic, askDifficulty, askTop)
		if isFallback {
			fallbackColor.Println(respond.Fallback(askTopic))
			return nil
		}
		answerColor.Println(respond.FormatMultiple(results, askTop))
		return nil
	}

	answer := bot.GenerateAnswer(query, askTopic, askDifficulty)
	if answer.Fallback {
		fallbackColor.Println(answer.Text)
	} else {
		answerColor.Println(answer.Text)
	}

	if askSpeak != "" {
		if err := speech.Synthesize(ctx, answer.Text, askSpeak); err != nil {
			// Voice output is best-effort; the text answer already stands
			log.Warn().Err(err).Msg("voice output failed")
		} else if cfg.Output.Verbose {
			fmt.Printf("✓ Wrote audio: %s\n", askSpeak)
		}
	}

	return nil
}
