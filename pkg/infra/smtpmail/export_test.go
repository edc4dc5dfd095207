package smtpmail

// Export unexported functions for testing
var (
	BuildSubjectForTest = buildSubject
	BuildBodyForTest    = buildBody
)
