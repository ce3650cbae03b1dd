package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sqlviz/internal/catalog"
	"github.com/san-kum/sqlviz/internal/config"
	"github.com/san-kum/sqlviz/internal/explain"
	"github.com/san-kum/sqlviz/internal/export"
	"github.com/san-kum/sqlviz/internal/markup"
	"github.com/san-kum/sqlviz/internal/render"
	"github.com/san-kum/sqlviz/internal/storage"
	"github.com/san-kum/sqlviz/internal/tui"
)

var (
	configFile string
	dataDir    string
	exampleIdx int
	stepIdx    int
)

// main registers commands and flags, launching the interactive walkthrough
// when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sqlviz",
		Short: "visual SQL walkthroughs in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(catalog.Default(), loadConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default from config)")

	topicsCmd := &cobra.Command{
		Use:   "topics",
		Short: "list topics",
		RunE:  listTopics,
	}

	showCmd := &cobra.Command{
		Use:   "show [topic]",
		Short: "print a walkthrough",
		Args:  cobra.ExactArgs(1),
		RunE:  showWalkthrough,
	}
	showCmd.Flags().IntVar(&exampleIdx, "example", 0, "example index")

	explainCmd := &cobra.Command{
		Use:   "explain [query]",
		Short: "ask the explanation service about a query",
		Args:  cobra.ExactArgs(1),
		RunE:  explainQuery,
	}

	historyCmd := &cobra.Command{
		Use:   "history [id]",
		Short: "list or show saved explanations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showHistory,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [topic]",
		Short: "plot result-set size across steps",
		Args:  cobra.ExactArgs(1),
		RunE:  plotStats,
	}
	statsCmd.Flags().IntVar(&exampleIdx, "example", 0, "example index")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [topic]",
		Short: "export an example's steps to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().IntVar(&exampleIdx, "example", 0, "example index")

	exportHTMLCmd := &cobra.Command{
		Use:   "export-html [topic]",
		Short: "export a walkthrough as a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, ex, err := pickExample(args[0])
			if err != nil {
				return err
			}
			fmt.Print(export.WalkthroughHTML(topic, ex))
			return nil
		},
	}
	exportHTMLCmd.Flags().IntVar(&exampleIdx, "example", 0, "example index")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [topic] [table]",
		Short: "export one result table to CSV",
		Args:  cobra.ExactArgs(2),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().IntVar(&exampleIdx, "example", 0, "example index")
	exportCSVCmd.Flags().IntVar(&stepIdx, "step", 0, "step index")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "check catalog authoring invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := catalog.Validate(catalog.Default())
			if len(errs) == 0 {
				fmt.Println("catalog ok")
				return nil
			}
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "  %v\n", err)
			}
			return fmt.Errorf("%d invariant violations", len(errs))
		},
	}

	rootCmd.AddCommand(topicsCmd, showCmd, explainCmd, historyCmd, statsCmd, exportJSONCmd, exportHTMLCmd, exportCSVCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
			cfg = config.FromEnv()
		} else {
			cfg = loaded
		}
	} else {
		cfg = config.FromEnv()
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg
}

func pickExample(topicName string) (catalog.Topic, catalog.Example, error) {
	topic, ok := catalog.Default().ByName(topicName)
	if !ok {
		return catalog.Topic{}, catalog.Example{}, fmt.Errorf("unknown topic: %s (see 'sqlviz topics')", topicName)
	}
	if exampleIdx < 0 || exampleIdx >= len(topic.Examples) {
		return catalog.Topic{}, catalog.Example{}, fmt.Errorf("topic %s has %d examples, index %d out of range",
			topic.Name, len(topic.Examples), exampleIdx)
	}
	return topic, topic.Examples[exampleIdx], nil
}

func listTopics(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOPIC\tEXAMPLES\tDESCRIPTION")
	for _, topic := range catalog.Default() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", topic.Name, len(topic.Examples), topic.Description)
	}
	return w.Flush()
}

func showWalkthrough(cmd *cobra.Command, args []string) error {
	topic, ex, err := pickExample(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n", topic.Name, ex.Title)
	fmt.Printf("syntax: %s\n\n", topic.Syntax)
	for i, step := range ex.Steps {
		fmt.Println(render.Step(i, step, 100))
		fmt.Println()
	}
	return nil
}

func explainQuery(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := explain.New(cfg.Service.URL, cfg.Service.APIKey, time.Duration(cfg.Service.TimeoutSeconds)*time.Second)

	text, err := client.Explain(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(markup.RenderTerminal(markup.FormatAIResponse(text), 100))

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil // printing succeeded; history is best-effort
	}
	if id, err := st.Save(args[0], text); err == nil {
		fmt.Printf("\nsaved to history: %s\n", id)
	}
	return nil
}

func showHistory(cmd *cobra.Command, args []string) error {
	st := storage.New(loadConfig().DataDir)

	if len(args) == 1 {
		entry, err := st.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("id:    %s\ntime:  %s\nquery: %s\n\n%s\n",
			entry.ID,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Query,
			markup.RenderTerminal(markup.FormatAIResponse(entry.Explanation), 100))
		return nil
	}

	entries, err := st.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no saved explanations")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tQUERY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Timestamp.Format("2006-01-02 15:04:05"), e.Query)
	}
	return w.Flush()
}

func plotStats(cmd *cobra.Command, args []string) error {
	topic, ex, err := pickExample(args[0])
	if err != nil {
		return err
	}

	data := make([]float64, len(ex.Steps))
	for i, step := range ex.Steps {
		rows := 0
		for _, t := range step.Tables {
			if len(t.Rows) > rows {
				rows = len(t.Rows)
			}
		}
		data[i] = float64(rows)
	}

	fmt.Printf("%s — %s\n\n", topic.Name, ex.Title)
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("result rows per step"),
	)
	fmt.Println(graph)
	return nil
}

type stepExport struct {
	Explanation string        `json:"explanation"`
	Query       string        `json:"query"`
	Tables      []tableExport `json:"tables"`
}

type tableExport struct {
	Name    string           `json:"name"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func exportJSON(cmd *cobra.Command, args []string) error {
	topic, ex, err := pickExample(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Topic   string       `json:"topic"`
		Example string       `json:"example"`
		Steps   []stepExport `json:"steps"`
	}{Topic: topic.Name, Example: ex.Title}

	for _, step := range ex.Steps {
		se := stepExport{Explanation: step.Explanation, Query: step.Query}
		for _, t := range step.Tables {
			te := tableExport{Name: t.Name, Columns: catalog.DeriveColumns(t)}
			for _, r := range t.Rows {
				rowOut := make(map[string]any, len(r.Cells))
				for k, v := range r.Cells {
					rowOut[k] = v
				}
				te.Rows = append(te.Rows, rowOut)
			}
			se.Tables = append(se.Tables, te)
		}
		out.Steps = append(out.Steps, se)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, ex, err := pickExample(args[0])
	if err != nil {
		return err
	}
	if stepIdx < 0 || stepIdx >= len(ex.Steps) {
		return fmt.Errorf("example has %d steps, index %d out of range", len(ex.Steps), stepIdx)
	}

	var tbl *catalog.Table
	for i := range ex.Steps[stepIdx].Tables {
		if ex.Steps[stepIdx].Tables[i].Name == args[1] {
			tbl = &ex.Steps[stepIdx].Tables[i]
		}
	}
	if tbl == nil {
		return fmt.Errorf("no table %q in step %d", args[1], stepIdx)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	cols := catalog.DeriveColumns(*tbl)
	if err := w.Write(cols); err != nil {
		return err
	}
	for _, r := range tbl.Rows {
		record := make([]string, len(cols))
		for i, col := range cols {
			record[i] = render.Cell(r.Cells[col])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
