// Package assessment scores the PHQ-9, GAD-7 and GHQ-12 screening
// questionnaires and classifies the total into a severity band.
//
// Scoring is a pure computation over an immutable definition table, so an
// Engine can be shared by any number of goroutines.
package assessment

import (
	"fmt"
	"math"
)

// Result is the classified outcome of one completed response vector.
type Result struct {
	QuestionnaireID QuestionnaireID `json:"questionnaire_id" yaml:"questionnaire_id"`
	TotalScore      int             `json:"total_score" yaml:"total_score"`
	MaxScore        int             `json:"max_score" yaml:"max_score"`
	Severity        string          `json:"severity" yaml:"severity"`
	Interpretation  string          `json:"interpretation" yaml:"interpretation"`
	WellnessScore   int             `json:"wellness_score" yaml:"wellness_score"`
	Crisis          bool            `json:"crisis" yaml:"crisis"`
}

type Engine struct {
	order       []QuestionnaireID
	definitions map[QuestionnaireID]*QuestionnaireDefinition
}

var defaultEngine = mustNewEngine(BuiltinDefinitions()...)

// NewEngine validates every definition and indexes it by id.
func NewEngine(definitions ...*QuestionnaireDefinition) (*Engine, error) {
	engine := &Engine{
		order:       make([]QuestionnaireID, 0, len(definitions)),
		definitions: make(map[QuestionnaireID]*QuestionnaireDefinition, len(definitions)),
	}
	for _, definition := range definitions {
		if err := definition.Validate(); err != nil {
			return nil, err
		}
		if _, exists := engine.definitions[definition.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidDefinition, definition.ID)
		}
		engine.order = append(engine.order, definition.ID)
		engine.definitions[definition.ID] = definition.Clone()
	}
	return engine, nil
}

func mustNewEngine(definitions ...*QuestionnaireDefinition) *Engine {
	engine, err := NewEngine(definitions...)
	if err != nil {
		panic(err)
	}
	return engine
}

// DefaultEngine returns the engine loaded with the built-in questionnaires.
func DefaultEngine() *Engine {
	return defaultEngine
}

// Score is shorthand for DefaultEngine().Score.
func Score(id QuestionnaireID, responses []*int) (*Result, error) {
	return defaultEngine.Score(id, responses)
}

// Definitions returns copies of the registered questionnaires; callers may
// modify them without affecting scoring.
func (e *Engine) Definitions() []*QuestionnaireDefinition {
	definitions := make([]*QuestionnaireDefinition, 0, len(e.order))
	for _, id := range e.order {
		definitions = append(definitions, e.definitions[id].Clone())
	}
	return definitions
}

func (e *Engine) Definition(id QuestionnaireID) (*QuestionnaireDefinition, error) {
	definition, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	return definition.Clone(), nil
}

func (e *Engine) lookup(id QuestionnaireID) (*QuestionnaireDefinition, error) {
	definition, ok := e.definitions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuestionnaireID, id)
	}
	return definition, nil
}

// Score sums a fully answered response vector and classifies it. A nil
// element marks an unanswered item.
func (e *Engine) Score(id QuestionnaireID, responses []*int) (*Result, error) {
	definition, err := e.lookup(id)
	if err != nil {
		return nil, err
	}

	if len(responses) != definition.QuestionCount() {
		return nil, fmt.Errorf("%w: %s expects %d responses, got %d",
			ErrIncompleteResponses, id, definition.QuestionCount(), len(responses))
	}

	total := 0
	for i, response := range responses {
		if response == nil {
			return nil, fmt.Errorf("%w: item %d is not answered", ErrIncompleteResponses, i+1)
		}
		if *response < MinResponse || *response > MaxResponse {
			return nil, fmt.Errorf("%w: item %d has value %d", ErrResponseOutOfRange, i+1, *response)
		}
		total += *response
	}

	band := resolveSeverity(definition.SeverityBands, total)
	maxScore := definition.MaxScore()

	return &Result{
		QuestionnaireID: id,
		TotalScore:      total,
		MaxScore:        maxScore,
		Severity:        band.Label,
		Interpretation:  definition.Interpretations[band.Label],
		WellnessScore:   WellnessScore(total, maxScore),
		Crisis:          definition.IsMostSevere(band.Label),
	}, nil
}

// resolveSeverity returns the first band whose upper bound is at least score.
// Validated tables always end with an unbounded band, so the scan is total.
func resolveSeverity(bands []SeverityBand, score int) SeverityBand {
	for _, band := range bands {
		if band.Unbounded || score <= band.UpperBound {
			return band
		}
	}
	return bands[len(bands)-1]
}

// WellnessScore maps a total onto 0..100 where 100 means no symptoms, using
// the questionnaire's own maximum as the denominator.
func WellnessScore(totalScore, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(100 - float64(totalScore)/float64(maxScore)*100))
}

// Validate checks that the band table partitions [0, MaxScore] and that
// every band has an interpretation.
func (d *QuestionnaireDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDefinition)
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("%w: %s has no questions", ErrInvalidDefinition, d.ID)
	}
	if len(d.SeverityBands) == 0 {
		return fmt.Errorf("%w: %s has no severity bands", ErrInvalidDefinition, d.ID)
	}

	lower := 0
	for i, band := range d.SeverityBands {
		last := i == len(d.SeverityBands)-1
		if band.Unbounded != last {
			return fmt.Errorf("%w: %s band %q must be the only unbounded band and come last", ErrInvalidDefinition, d.ID, band.Label)
		}
		if _, ok := d.Interpretations[band.Label]; !ok {
			return fmt.Errorf("%w: %s band %q has no interpretation", ErrInvalidDefinition, d.ID, band.Label)
		}
		if last {
			if lower > d.MaxScore() {
				return fmt.Errorf("%w: %s top band %q is unreachable", ErrInvalidDefinition, d.ID, band.Label)
			}
			break
		}
		if band.UpperBound < lower {
			return fmt.Errorf("%w: %s band %q overlaps or is empty", ErrInvalidDefinition, d.ID, band.Label)
		}
		lower = band.UpperBound + 1
	}
	return nil
}

// Responses converts plain values into a fully answered response vector.
func Responses(values ...int) []*int {
	responses := make([]*int, len(values))
	for i := range values {
		value := values[i]
		responses[i] = &value
	}
	return responses
}
