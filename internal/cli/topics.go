package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmahmud/uttor/internal/chat"
	"github.com/tmahmud/uttor/internal/corpus"
	"github.com/tmahmud/uttor/internal/logging"
	"github.com/tmahmud/uttor/internal/model"
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics, difficulty levels and record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		log := logging.New(cfg.Log.Level, cfg.Log.Format)

		store, err := corpus.Load(cfg.Database.Path, log)
		if err != nil {
			return fmt.Errorf("load faq database: %w", err)
		}

		stats := chat.NewBot(store, cfg, log).Stats()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tGLOSS\tFAQS")
		for _, topic := range stats.Topics {
			fmt.Fprintf(w, "%s\t%s\t%s\n", topic, model.Topics[topic], strconv.Itoa(stats.PerTopic[topic]))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("Total FAQs: %d\n", stats.TotalFAQs)

		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DIFFICULTY\tGLOSS")
		for _, level := range stats.Difficulties {
			fmt.Fprintf(w, "%s\t%s\n", level, model.Difficulties[level])
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
