package assessment

// QuestionnaireID identifies one of the supported screening questionnaires.
type QuestionnaireID string

const (
	PHQ9  QuestionnaireID = "phq-9"
	GAD7  QuestionnaireID = "gad-7"
	GHQ12 QuestionnaireID = "ghq-12"
)

const (
	MinResponse = 0
	MaxResponse = 3
)

// SeverityBand is one row of a severity table. UpperBound is inclusive and
// ignored when Unbounded is set, which only the last band of a table may be.
type SeverityBand struct {
	Label      string `json:"label" yaml:"label"`
	UpperBound int    `json:"upper_bound,omitempty" yaml:"upper_bound,omitempty"`
	Unbounded  bool   `json:"unbounded,omitempty" yaml:"unbounded,omitempty"`
}

type AnswerOption struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// QuestionnaireDefinition is the data-driven description of a questionnaire.
// The number of questions fixes the expected response vector length.
type QuestionnaireDefinition struct {
	ID              QuestionnaireID   `json:"id" yaml:"id"`
	Title           string            `json:"title" yaml:"title"`
	Description     string            `json:"description" yaml:"description"`
	Questions       []string          `json:"questions" yaml:"questions"`
	SeverityBands   []SeverityBand    `json:"severity_bands" yaml:"severity_bands"`
	Interpretations map[string]string `json:"interpretations" yaml:"interpretations"`
}

// AnswerOptions is the four-point Likert scale shared by every questionnaire.
var AnswerOptions = []AnswerOption{
	{Label: "Not at all", Value: 0},
	{Label: "Several days", Value: 1},
	{Label: "More than half the days", Value: 2},
	{Label: "Nearly every day", Value: 3},
}

func (d *QuestionnaireDefinition) QuestionCount() int {
	return len(d.Questions)
}

// MaxScore is the highest total a fully answered vector can reach.
func (d *QuestionnaireDefinition) MaxScore() int {
	return MaxResponse * len(d.Questions)
}

// MostSevereBand returns the open-ended top band of the table.
func (d *QuestionnaireDefinition) MostSevereBand() SeverityBand {
	return d.SeverityBands[len(d.SeverityBands)-1]
}

// SeverityRank returns the zero based position of label in the band table,
// or -1 when the label does not belong to this questionnaire.
func (d *QuestionnaireDefinition) SeverityRank(label string) int {
	for i, band := range d.SeverityBands {
		if band.Label == label {
			return i
		}
	}
	return -1
}

func (d *QuestionnaireDefinition) IsMostSevere(label string) bool {
	return label == d.MostSevereBand().Label
}

// Clone returns a deep copy that shares no slices or maps with d.
func (d *QuestionnaireDefinition) Clone() *QuestionnaireDefinition {
	clone := *d
	clone.Questions = append([]string(nil), d.Questions...)
	clone.SeverityBands = append([]SeverityBand(nil), d.SeverityBands...)
	if d.Interpretations != nil {
		clone.Interpretations = make(map[string]string, len(d.Interpretations))
		for label, text := range d.Interpretations {
			clone.Interpretations[label] = text
		}
	}
	return &clone
}

var phq9 = &QuestionnaireDefinition{
	ID:          PHQ9,
	Title:       "PHQ-9 Depression Test",
	Description: "The Patient Health Questionnaire (PHQ-9) is a concise, self-administered questionnaire for screening, diagnosing, monitoring, and measuring the severity of depression.",
	Questions: []string{
		"Little interest or pleasure in doing things",
		"Feeling down, depressed, or hopeless",
		"Trouble falling or staying asleep, or sleeping too much",
		"Feeling tired or having little energy",
		"Poor appetite or overeating",
		"Feeling bad about yourself — or that you are a failure",
		"Trouble concentrating on things",
		"Moving or speaking slowly or being fidgety/restless",
		"Thoughts that you would be better off dead or of hurting yourself",
	},
	SeverityBands: []SeverityBand{
		{Label: "minimal", UpperBound: 4},
		{Label: "mild", UpperBound: 9},
		{Label: "moderate", UpperBound: 14},
		{Label: "moderately severe", UpperBound: 19},
		{Label: "severe", Unbounded: true},
	},
	Interpretations: map[string]string{
		"minimal":           "Your score suggests you may be experiencing minimal or no symptoms of depression. Continue to monitor your mood and practice self-care.",
		"mild":              "Your score suggests you may be experiencing mild depression. It could be beneficial to explore self-help resources and consider talking to a peer supporter.",
		"moderate":          "Your score suggests moderate depression. It is advisable to book an appointment with a professional counselor to discuss your feelings.",
		"moderately severe": "Your score suggests moderately severe depression. It is highly recommended to seek professional help. Please consider booking a session with a counselor.",
		"severe":            "Your score indicates severe depression. It is very important to get help right away. Please use the crisis alert feature or contact a helpline immediately.",
	},
}

var gad7 = &QuestionnaireDefinition{
	ID:          GAD7,
	Title:       "GAD-7 Anxiety Test",
	Description: "The Generalized Anxiety Disorder 7-item (GAD-7) scale is a self-administered questionnaire used to screen for and measure the severity of generalized anxiety disorder.",
	Questions: []string{
		"Feeling nervous, anxious, or on edge",
		"Not being able to stop or control worrying",
		"Worrying too much about different things",
		"Trouble relaxing",
		"Being so restless that it is hard to sit still",
		"Becoming easily annoyed or irritable",
		"Feeling afraid as if something awful might happen",
	},
	SeverityBands: []SeverityBand{
		{Label: "minimal", UpperBound: 4},
		{Label: "mild", UpperBound: 9},
		{Label: "moderate", UpperBound: 14},
		{Label: "severe", Unbounded: true},
	},
	Interpretations: map[string]string{
		"minimal":  "Your score suggests minimal or no anxiety. This is a great sign! Keep up with your positive coping strategies.",
		"mild":     "Your score indicates mild anxiety. Self-help resources like breathing exercises and mindfulness can be very effective.",
		"moderate": "Your score suggests moderate anxiety. This may be impacting your daily life. Speaking with a counselor can provide you with strategies to manage these feelings.",
		"severe":   "Your score indicates severe anxiety. It is highly recommended that you speak with a mental health professional. Please consider booking an appointment or using the crisis support resources.",
	},
}

var ghq12 = &QuestionnaireDefinition{
	ID:          GHQ12,
	Title:       "GHQ-12 General Health Questionnaire",
	Description: "The General Health Questionnaire (GHQ-12) is a screening tool used to detect common mental health problems. It focuses on the respondent's general well-being over the past few weeks.",
	Questions: []string{
		"Been able to concentrate on whatever you’re doing?",
		"Lost much sleep over worry?",
		"Felt that you are playing a useful part in things?",
		"Felt capable of making decisions about things?",
		"Felt constantly under strain?",
		"Felt you couldn’t overcome your difficulties?",
		"Been able to enjoy your normal day-to-day activities?",
		"Been able to face up to your problems?",
		"Been feeling unhappy and depressed?",
		"Been losing confidence in yourself?",
		"Been thinking of yourself as a worthless person?",
		"Felt reasonably happy, all things considered?",
	},
	SeverityBands: []SeverityBand{
		{Label: "healthy", UpperBound: 12},
		{Label: "some-distress", UpperBound: 20},
		{Label: "significant-distress", Unbounded: true},
	},
	Interpretations: map[string]string{
		"healthy":              "Your score suggests you are in a good state of psychological well-being. Continue to nurture your mental health.",
		"some-distress":        "Your score suggests you may be experiencing some psychological distress. This is a good time to focus on self-care and connect with your support system.",
		"significant-distress": "Your score indicates a significant level of psychological distress. It is strongly recommended to speak with a professional counselor to address these challenges.",
	},
}

// BuiltinDefinitions returns fresh copies of the supported questionnaires in
// display order.
func BuiltinDefinitions() []*QuestionnaireDefinition {
	return []*QuestionnaireDefinition{phq9.Clone(), gad7.Clone(), ghq12.Clone()}
}
