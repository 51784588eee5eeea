package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tmahmud/uttor/internal/chat"
	"github.com/tmahmud/uttor/internal/corpus"
	"github.com/tmahmud/uttor/internal/logging"
	"github.com/tmahmud/uttor/internal/model"
)

// maxMenuAttempts bounds the re-prompt loop for invalid menu input
const maxMenuAttempts = 5

// chatCmd represents the interactive chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question/answer session",
	Long: `Chat opens an interactive session: pick a topic from the menu, choose
an optional difficulty, then ask questions in Bangla. Type "topic" to
switch topics or "exit" to quit.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	if !cfg.Output.Color {
		color.NoColor = true
	}

	store, err := corpus.Load(cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("load faq database: %w", err)
	}
	bot := chat.NewBot(store, cfg, log)

	reader := bufio.NewReader(os.Stdin)

	color.Cyan("স্বাগতম! Uttor চালু হয়েছে (%d টি FAQ লোড হয়েছে)।", store.Count())
	fmt.Println(`প্রশ্ন লিখুন, "topic" লিখে বিষয় বদলান, "exit" লিখে বের হন।`)
	fmt.Println()

	for {
		topic, err := chooseTopic(reader)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		difficulty, err := chooseDifficulty(reader)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switchTopic, err := questionLoop(reader, bot, topic, difficulty)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !switchTopic {
			color.Cyan("ধন্যবাদ! আবার আসবেন।")
			return nil
		}
	}
}

// chooseTopic shows the topic menu and reads a selection, re-prompting a
// bounded number of times on invalid input.
func chooseTopic(reader *bufio.Reader) (string, error) {
	topics := model.TopicNames()

	fmt.Println("বিষয় নির্বাচন করুন:")
	for i, topic := range topics {
		fmt.Printf("  %d. %s (%s)\n", i+1, topic, model.Topics[topic])
	}

	for attempt := 0; attempt < maxMenuAttempts; attempt++ {
		choice, err := prompt(reader, "পছন্দ")
		if err != nil {
			return "", err
		}

		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(topics) {
			return topics[n-1], nil
		}
		// Typing the topic name directly also works
		if model.ValidTopic(choice) {
			return choice, nil
		}

		color.Red("অবৈধ পছন্দ। ১ থেকে %d এর মধ্যে একটি সংখ্যা দিন।", len(topics))
	}

	return "", fmt.Errorf("too many invalid menu selections")
}

// chooseDifficulty shows the optional difficulty menu; empty or "all"
// means no filter.
func chooseDifficulty(reader *bufio.Reader) (string, error) {
	levels := model.DifficultyNames()

	fmt.Println("স্তর নির্বাচন করুন (ঐচ্ছিক, ফাঁকা রাখলে সব):")
	for i, level := range levels {
		fmt.Printf("  %d. %s (%s)\n", i+1, level, model.Difficulties[level])
	}

	for attempt := 0; attempt < maxMenuAttempts; attempt++ {
		choice, err := prompt(reader, "স্তর")
		if err != nil {
			return "", err
		}

		if choice == "" || strings.EqualFold(choice, "all") || choice == "সব" {
			return "", nil
		}
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(levels) {
			return levels[n-1], nil
		}
		if model.ValidDifficulty(choice) {
			return choice, nil
		}

		color.Red("অবৈধ স্তর। আবার চেষ্টা করুন।")
	}

	return "", fmt.Errorf("too many invalid menu selections")
}

// questionLoop answers questions until the user exits or asks to switch
// topic. Returns true when the user wants a new topic.
func questionLoop(reader *bufio.Reader, bot *chat.Bot, topic, difficulty string) (bool, error) {
	answerColor := color.New(color.FgGreen)
	fallbackColor := color.New(color.FgYellow)

	fmt.Println()
	color.Cyan("বিষয়: %s — প্রশ্ন করুন।", topic)

	for {
		query, err := prompt(reader, "প্রশ্ন")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(query) {
		case "":
			continue
		case "exit", "quit", "প্রস্থান":
			return false, nil
		case "topic", "বিষয়":
			return true, nil
		}

		answer := bot.GenerateAnswer(query, topic, difficulty)
		fmt.Println()
		if answer.Fallback {
			fallbackColor.Println(answer.Text)
		} else {
			answerColor.Println(answer.Text)
		}
		fmt.Println()
	}
}

// prompt reads one trimmed line of input
func prompt(reader *bufio.Reader, message string) (string, error) {
	fmt.Printf("%s: ", message)
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
