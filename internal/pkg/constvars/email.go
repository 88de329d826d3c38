package constvars

const (
	EmailCrisisAlertSubjectFormat = "[MINDFULNESS] Crisis alert: %s scored %s on %s"
	EmailCrisisAlertBodyFormat    = "<html><body><p>A student submitted an assessment whose result falls in the most severe band.</p><ul><li><strong>Student:</strong> %s (%s)</li><li><strong>Questionnaire:</strong> %s</li><li><strong>Total score:</strong> %d</li><li><strong>Severity:</strong> %s</li><li><strong>Submitted at:</strong> %s</li></ul><p>Please reach out to the student as soon as possible.</p></body></html>"
)

const (
	MailerHeaderMessageType     = "message_type"
	MailerHeaderRequeueStrategy = "requeue_strategy"
	MailerMessageTypeJSON       = "JSON"
	MailerRequeueStrategyDrop   = "DROP"
)
