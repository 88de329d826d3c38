package assessment

type Helpline struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

// CrisisHelplines is shown together with the crisis alert whenever a result
// lands in the most severe band of its questionnaire.
var CrisisHelplines = []Helpline{
	{Name: "Campus Security", Number: "+91 12345 67890"},
	{Name: "National Suicide Prevention Helpline", Number: "1800-599-0019"},
	{Name: "Mental Health Helpline", Number: "080-46110007"},
}
