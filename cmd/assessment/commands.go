package main

import (
	"fmt"
	"io"
	"mindfulness-service/internal/pkg/assessment"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// answerFile is the on-disk shape accepted by `score --file`.
type answerFile struct {
	QuestionnaireID string `yaml:"questionnaire_id"`
	Responses       []*int `yaml:"responses"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in questionnaires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeDefinitionTable(cmd.OutOrStdout(), assessment.DefaultEngine().Definitions())
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <questionnaire-id>",
		Short: "Print the questions and severity bands of a questionnaire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			definition, err := assessment.DefaultEngine().Definition(assessment.QuestionnaireID(args[0]))
			if err != nil {
				return err
			}
			return writeDefinition(cmd.OutOrStdout(), definition)
		},
	}
}

func newScoreCmd() *cobra.Command {
	var (
		questionnaireID string
		rawResponses    string
		answersPath     string
		format          string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a response vector",
		Example: "  assessment score --questionnaire phq-9 --responses 0,1,2,1,0,0,1,2,0\n" +
			"  assessment score --file answers.yaml --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				id        = assessment.QuestionnaireID(questionnaireID)
				responses []*int
				err       error
			)

			switch {
			case answersPath != "":
				answers, err := readAnswerFile(answersPath)
				if err != nil {
					return err
				}
				if id == "" {
					id = assessment.QuestionnaireID(answers.QuestionnaireID)
				}
				responses = answers.Responses
			case rawResponses != "":
				responses, err = parseResponses(rawResponses)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --responses or --file is required")
			}

			if id == "" {
				return fmt.Errorf("--questionnaire is required")
			}

			result, err := assessment.Score(id, responses)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), format, result)
		},
	}

	cmd.Flags().StringVarP(&questionnaireID, "questionnaire", "q", "", "questionnaire id (phq-9, gad-7, ghq-12)")
	cmd.Flags().StringVarP(&rawResponses, "responses", "r", "", "comma separated answers, leave a position empty for an unanswered item")
	cmd.Flags().StringVarP(&answersPath, "file", "f", "", "YAML file with questionnaire_id and responses")
	cmd.Flags().StringVar(&format, "format", formatYAML, "output format: yaml or json")
	return cmd
}

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every built-in questionnaire definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return encode(cmd.OutOrStdout(), format, assessment.BuiltinDefinitions())
		},
	}

	cmd.Flags().StringVar(&format, "format", formatYAML, "output format: yaml or json")
	return cmd
}

// parseResponses turns "0,1,,3" into a response vector. Empty positions stay
// nil so the engine reports them as unanswered.
func parseResponses(raw string) ([]*int, error) {
	parts := strings.Split(raw, ",")
	responses := make([]*int, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			responses = append(responses, nil)
			continue
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("response %d: %q is not a number", i+1, part)
		}
		responses = append(responses, &value)
	}
	return responses, nil
}

func readAnswerFile(path string) (*answerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var answers answerFile
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return &answers, nil
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeDefinitionTable(w io.Writer, definitions []*assessment.QuestionnaireDefinition) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tQUESTIONS\tMAX SCORE")
	for _, definition := range definitions {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", definition.ID, definition.Title, definition.QuestionCount(), definition.MaxScore())
	}
	return tw.Flush()
}

func writeDefinition(w io.Writer, definition *assessment.QuestionnaireDefinition) error {
	fmt.Fprintf(w, "%s (%s)\n%s\n\n", definition.Title, definition.ID, definition.Description)
	for i, question := range definition.Questions {
		fmt.Fprintf(w, "%2d. %s\n", i+1, question)
	}

	fmt.Fprintln(w, "\nAnswers:")
	for _, option := range assessment.AnswerOptions {
		fmt.Fprintf(w, "  %d  %s\n", option.Value, option.Label)
	}

	fmt.Fprintln(w, "\nSeverity:")
	lower := 0
	for _, band := range definition.SeverityBands {
		if band.Unbounded {
			fmt.Fprintf(w, "  %d+\t%s\n", lower, band.Label)
			continue
		}
		fmt.Fprintf(w, "  %d-%d\t%s\n", lower, band.UpperBound, band.Label)
		lower = band.UpperBound + 1
	}
	return nil
}
